package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/cfiestas6/go-rest-shop/internal/usecase"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUsecase *usecase.OrderUsecase
	logger       *slog.Logger
}

func NewOrderHandler(orderUsecase *usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger.With("component", "order_handler")}
}

type createOrderRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type orderResponse struct {
	ID       string           `json:"_id"`
	Quantity int              `json:"quantity"`
	Product  *productResponse `json:"product,omitempty"`
	Request  *requestLink     `json:"request,omitempty"`
}

type listOrdersResponse struct {
	Count  int             `json:"count"`
	Orders []orderResponse `json:"orders"`
}

func toOrderResponse(o *domain.Order, withLink bool) orderResponse {
	resp := orderResponse{
		ID:       o.ID,
		Quantity: o.Quantity,
	}
	if o.Product != nil {
		resp.Product = &productResponse{
			ID:    o.Product.ID,
			Name:  o.Product.Name,
			Price: o.Product.Price,
		}
	}
	if withLink {
		resp.Request = &requestLink{Method: http.MethodGet, Endpoint: "/orders/" + o.ID}
	}
	return resp
}

// GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list orders", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := listOrdersResponse{
		Count:  len(orders),
		Orders: make([]orderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o, true))
	}
	c.JSON(http.StatusOK, resp)
}

// POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUsecase.Create(c.Request.Context(), usecase.CreateOrderInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgProductNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create order", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": msgOrderCreated,
		"order": gin.H{
			"_id":       order.ID,
			"productId": order.ProductID,
			"quantity":  order.Quantity,
			"request":   requestLink{Method: http.MethodGet, Endpoint: "/orders/" + order.ID},
		},
	})
}

// GET /orders/:orderId
func (h *OrderHandler) GetByID(c *gin.Context) {
	id := c.Param("orderId")

	order, err := h.orderUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgOrderNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get order", "order_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order, false))
}

// DELETE /orders/:orderId
func (h *OrderHandler) Delete(c *gin.Context) {
	id := c.Param("orderId")

	if err := h.orderUsecase.Delete(c.Request.Context(), id); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "delete order", "order_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgOrderDeleted,
		"request": requestLink{Method: http.MethodPost, Endpoint: "/orders"},
	})
}
