package server

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

var (
	ErrUnknownProduct = errors.New("order references an unknown product")
	ErrTotalMismatch  = errors.New("order total does not match item prices")
)

// Store backs the stub API with an in-memory product set and the orders it
// has accepted. Everything lives for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[string]int
	orders   map[string]domain.Order
}

// NewStore creates a store over the given product set.
func NewStore(products []domain.Product) *Store {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Store{
		products: products,
		byID:     byID,
		orders:   make(map[string]domain.Order),
	}
}

// Products returns the product set in seed order.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// PlaceOrder checks the order against the product set, records it and issues
// an order id. Every item must exist and the claimed total must equal the sum
// of item prices, priceless items counting as 0.
func (s *Store) PlaceOrder(order domain.Order) (*domain.OrderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, id := range order.Items {
		i, ok := s.byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, id)
		}
		total += s.products[i].PriceValue()
	}

	if math.Abs(total-order.Total) > 1e-9 {
		return nil, fmt.Errorf("%w: expected %g, got %g", ErrTotalMismatch, total, order.Total)
	}

	id := uuid.New().String()
	s.orders[id] = order

	return &domain.OrderResponse{ID: id, Total: total}, nil
}

// OrdersCount reports how many orders the store has accepted.
func (s *Store) OrdersCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// SampleProducts seeds the stub with a small catalog, including one product
// that is not for sale.
func SampleProducts() []domain.Product {
	price := func(v float64) *float64 { return &v }

	return []domain.Product{
		{
			ID:          "854cef69-976d-4c2a-a18c-2aa45046c390",
			Title:       "Mug of focus",
			Category:    "other",
			Price:       price(750),
			Image:       "/5_Dots.svg",
			Description: "Keeps the attention where the work is.",
		},
		{
			ID:          "c101ab44-ed99-4a54-990d-47aa2bb4e7d9",
			Title:       "Backend anti-stress ball",
			Category:    "soft-skill",
			Price:       price(1000),
			Image:       "/Shell.svg",
			Description: "Squeeze on every failed deploy.",
		},
		{
			ID:          "b06cde61-912f-4663-9751-09956c0eed67",
			Title:       "Extra hour in the day",
			Category:    "additional",
			Price:       nil,
			Image:       "/Butterfly.svg",
			Description: "Would solve everything. Not for sale.",
		},
		{
			ID:          "412bcf81-7e75-4e70-bdb9-d3c73c9803b7",
			Title:       "Framework of the week",
			Category:    "hard-skill",
			Price:       price(2500),
			Image:       "/Polygon.svg",
			Description: "Fresh today, legacy by Friday.",
		},
		{
			ID:          "1c521d84-c48d-48fa-8cfb-9d911fa515fd",
			Title:       "Rubber duck, senior grade",
			Category:    "hard-skill",
			Price:       price(1450),
			Image:       "/Mithosis.svg",
			Description: "Has seen every bug you are about to explain to it.",
		},
	}
}
