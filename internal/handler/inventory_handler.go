package handler

import (
	"encoding/json"
	"strconv"
	"strings"

	"inventory-api/internal/middleware"
	"inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// AddProduct creates a product
// POST /api/products
func (h *InventoryHandler) AddProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(c, err)
	}

	product, err := h.service.AddProduct(c.UserContext(), &req, middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":       "Product added successfully",
		"productId": product.ID,
	})
}

// GetProducts lists one page of products. Missing or non-numeric page/limit
// fall back to the defaults.
// GET /api/products?page=1&limit=10
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	page := leadingInt(c.Query("page"), service.DefaultPage)
	limit := leadingInt(c.Query("limit"), service.DefaultLimit)

	result, err := h.service.ListProducts(c.UserContext(), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}

type quantityRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

// UpdateQuantity sets a product's quantity
// PUT /api/products/:id/quantity
func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	var req quantityRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	product, err := h.service.UpdateQuantity(c.UserContext(), c.Params("id"), req.Quantity, middleware.UserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg":     "Product quantity updated successfully",
		"product": product,
	})
}

// leadingInt reads the integer prefix of s ("2.5" -> 2, "5abc" -> 5). Inputs
// with no leading digits, or whose digits overflow an int, yield def.
func leadingInt(s string, def int) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return def
	}
	return n
}
