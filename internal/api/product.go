package api

import (
	"github.com/labstack/echo/v4"

	"shop-service/internal/entity"
	"shop-service/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct creates a new product --> POST /products/
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	req := entity.ProductCreate{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(422, map[string]string{"error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(422, map[string]string{"error": "Invalid request payload"})
	}

	createdProduct, err := h.productService.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]interface{}{
		"name":  createdProduct.Name,
		"price": createdProduct.Price,
	})
}

// ListProducts lists all products --> GET /products/
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, products)
}
