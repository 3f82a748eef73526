package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"inventory-api/internal/model"
	"inventory-api/internal/repository"
	"inventory-api/pkg/validator"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// StockNotifier receives product change events. *ws.Hub implements it.
type StockNotifier interface {
	Publish(event interface{})
}

type InventoryService interface {
	AddProduct(ctx context.Context, req *CreateProductRequest, userID string) (*model.Product, error)
	ListProducts(ctx context.Context, page, limit int) (*model.ProductPage, error)
	UpdateQuantity(ctx context.Context, productID string, quantity json.RawMessage, userID string) (*model.Product, error)
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"notblank"`
	Type        string  `json:"type" validate:"notblank"`
	SKU         string  `json:"sku" validate:"notblank"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// StockEvent is what websocket subscribers receive.
type StockEvent struct {
	Type    string         `json:"type"`
	Action  string         `json:"action"`
	Product *model.Product `json:"product"`
	UserID  string         `json:"user_id"`
}

type inventoryService struct {
	productRepo repository.ProductRepository
	notifier    StockNotifier
}

// NewInventoryService wires the service. notifier may be nil.
func NewInventoryService(pRepo repository.ProductRepository, notifier StockNotifier) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		notifier:    notifier,
	}
}

func (s *inventoryService) AddProduct(ctx context.Context, req *CreateProductRequest, userID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs[0].Message())
	}

	sku := strings.TrimSpace(req.SKU)
	existing, err := s.productRepo.FindBySKU(ctx, sku)
	switch {
	case err == nil && existing != nil:
		return nil, ErrSKUExists
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	product := &model.Product{
		Name:        req.Name,
		Type:        req.Type,
		SKU:         sku,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}

	// The unique index settles concurrent creates that both passed the lookup.
	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSKUExists
		}
		return nil, err
	}

	s.publish("product_created", product, userID)
	return product, nil
}

func (s *inventoryService) ListProducts(ctx context.Context, page, limit int) (*model.ProductPage, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	total, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	// pages whose offset does not fit in an int are past the end anyway
	if page-1 <= math.MaxInt/limit {
		products, err = s.productRepo.FindPage(ctx, (page-1)*limit, limit)
		if err != nil {
			return nil, err
		}
		if products == nil {
			products = []model.Product{}
		}
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &model.ProductPage{
		Products:      products,
		CurrentPage:   page,
		TotalPages:    int(totalPages),
		TotalProducts: total,
	}, nil
}

// UpdateQuantity validates quantity before touching the store. A malformed
// productID is reported exactly like a missing product.
func (s *inventoryService) UpdateQuantity(ctx context.Context, productID string, quantity json.RawMessage, userID string) (*model.Product, error) {
	q, err := parseQuantity(quantity)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	product, err := s.productRepo.UpdateQuantity(ctx, id, q, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.publish("quantity_updated", product, userID)
	return product, nil
}

func (s *inventoryService) publish(action string, product *model.Product, userID string) {
	if s.notifier == nil {
		return
	}
	snapshot := *product
	s.notifier.Publish(StockEvent{
		Type:    "stock_update",
		Action:  action,
		Product: &snapshot,
		UserID:  userID,
	})
}

// parseQuantity accepts JSON numbers with no fractional part (5 and 5.0 both
// mean 5). Strings, null, booleans, fractions and out-of-range values fail.
func parseQuantity(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, ErrInvalidQuantity
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, ErrInvalidQuantity
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, ErrInvalidQuantity
	}

	if i, err := n.Int64(); err == nil {
		if i < math.MinInt || i > math.MaxInt {
			return 0, ErrInvalidQuantity
		}
		return int(i), nil
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, ErrInvalidQuantity
	}
	return int(f), nil
}
