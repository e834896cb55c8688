package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cfiestas6/go-rest-shop/internal/domain"
	"github.com/cfiestas6/go-rest-shop/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productUsecase *usecase.ProductUsecase
	logger         *slog.Logger
}

func NewProductHandler(productUsecase *usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger.With("component", "product_handler")}
}

// requestLink points the client at a follow-up request for the resource.
type requestLink struct {
	Method   string `json:"method"`
	Endpoint string `json:"endpoint"`
}

type createProductRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

type productResponse struct {
	ID      string       `json:"_id"`
	Name    string       `json:"name"`
	Price   float64      `json:"price"`
	Request *requestLink `json:"request,omitempty"`
}

type listProductsResponse struct {
	Count    int               `json:"count"`
	Products []productResponse `json:"products"`
}

// updateOp mirrors the {propName, value} patch items the API has always taken.
type updateOp struct {
	PropName string `json:"propName" binding:"required,oneof=name price"`
	Value    any    `json:"value" binding:"required"`
}

// GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := listProductsResponse{
		Count:    len(products),
		Products: make([]productResponse, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, productResponse{
			ID:      p.ID,
			Name:    p.Name,
			Price:   p.Price,
			Request: &requestLink{Method: http.MethodGet, Endpoint: "/products/" + p.ID},
		})
	}
	c.JSON(http.StatusOK, resp)
}

// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), usecase.CreateProductInput{
		Name:  req.Name,
		Price: *req.Price,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": msgProductCreated,
		"product": productResponse{
			ID:      product.ID,
			Name:    product.Name,
			Price:   product.Price,
			Request: &requestLink{Method: http.MethodGet, Endpoint: "/products/" + product.ID},
		},
	})
}

// GET /products/:productId
func (h *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("productId")

	product, err := h.productUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgProductNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get product", "product_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, productResponse{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	})
}

// PATCH /products/:productId
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("productId")

	var ops []updateOp
	if err := c.ShouldBindJSON(&ops); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var update domain.ProductUpdate
	for _, op := range ops {
		switch op.PropName {
		case "name":
			name, ok := op.Value.(string)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name must be a string"})
				return
			}
			update.Name = &name
		case "price":
			price, ok := op.Value.(float64)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number"})
				return
			}
			update.Price = &price
		}
	}

	if err := h.productUsecase.Update(c.Request.Context(), id, update); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgProductNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "update product", "product_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgProductUpdated,
		"request": requestLink{Method: http.MethodGet, Endpoint: "/products/" + id},
	})
}

// DELETE /products/:productId
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("productId")

	if err := h.productUsecase.Delete(c.Request.Context(), id); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "delete product", "product_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msgProductDeleted,
		"request": requestLink{Method: http.MethodPost, Endpoint: "/products"},
	})
}
