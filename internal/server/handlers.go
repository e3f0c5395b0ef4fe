package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/middleware"
)

// OrderRequest is the order endpoint's payload.
type OrderRequest struct {
	Payment string   `json:"payment" validate:"required,oneof=cash card"`
	Email   string   `json:"email" validate:"required"`
	Phone   string   `json:"phone" validate:"required"`
	Address string   `json:"address" validate:"required"`
	Items   []string `json:"items" validate:"required,min=1"`
	Total   float64  `json:"total" validate:"gte=0"`
}

// ProductListResponse wraps the product listing.
type ProductListResponse struct {
	Items []domain.Product `json:"items"`
}

// Handler serves the stub product/order API.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a Handler over the store.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the two API endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/product/", h.ListProducts)
	r.Post("/order/", h.CreateOrder)
}

// ListProducts returns the full product set in seed order.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Items: h.store.Products(),
	})
}

// CreateOrder validates and records an order, answering with the issued id.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order := domain.Order{
		Payment: domain.PaymentMethod(req.Payment),
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Items:   req.Items,
		Total:   req.Total,
	}

	resp, err := h.store.PlaceOrder(order)
	if err != nil {
		if errors.Is(err, ErrUnknownProduct) || errors.Is(err, ErrTotalMismatch) {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.Error("Failed to place order", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	h.logger.Info("Order placed",
		zap.String("order_id", resp.ID),
		zap.Float64("total", resp.Total),
		zap.Int("items", len(req.Items)),
	)
	middleware.RespondWithJSON(w, http.StatusOK, resp)
}
