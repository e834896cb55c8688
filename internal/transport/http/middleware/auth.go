package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cfiestas6/go-rest-shop/internal/auth"
	"github.com/cfiestas6/go-rest-shop/internal/metrics"
	"github.com/gin-gonic/gin"
)

// errAuthFailed is the one message every rejection returns; whether the token
// was missing, malformed, forged, or expired is never distinguishable from
// the outside.
const errAuthFailed = "Auth failed."

// Auth validates a Bearer token and sets "userID" and "email" in the gin
// context. The specific failure cause is logged at debug level only.
func Auth(tokens *auth.TokenService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			reject(c, logger, "missing or non-bearer authorization header")
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")
		if rawToken == "" {
			reject(c, logger, "empty bearer token")
			return
		}

		claims, err := tokens.Verify(rawToken)
		if err != nil {
			reject(c, logger, err.Error())
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func reject(c *gin.Context, logger *slog.Logger, cause string) {
	logger.DebugContext(c.Request.Context(), "auth rejected", "cause", cause)
	metrics.AuthRejectedTotal.Inc()
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": errAuthFailed})
}
