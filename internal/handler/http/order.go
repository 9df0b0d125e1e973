package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/it23631960/pearl-logistics-admin/internal/models"
)

// OrderService exposes the enriched order collection and the detail view
type OrderService interface {
	// LoadEnrichedOrders runs one aggregation pass and returns the collection
	LoadEnrichedOrders(ctx context.Context) ([]models.EnrichedOrder, error)
	// OpenOrder opens the detail view for the given order
	OpenOrder(orderID int64) (*models.EnrichedOrder, error)
	// CloseOrder closes the detail view
	CloseOrder()
}

// StatusService mutates a single order's status
type StatusService interface {
	SetOrderStatus(ctx context.Context, orderID int64, status string) error
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc      OrderService
	status   StatusService
	validate *validatorv10.Validate
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService, status StatusService, validate *validatorv10.Validate) *OrderHandler {
	return &OrderHandler{
		svc:      svc,
		status:   status,
		validate: validate,
	}
}

// ListOrders returns the enriched order collection
// 200 — collection assembled;
// 401 — unauthorized;
// 502 — store backend is unavailable;
// 500 — internal error.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := oh.svc.LoadEnrichedOrders(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, models.ErrOrdersUnavailable), errors.Is(err, models.ErrUsersUnavailable):
				http.Error(w, "store backend is unavailable", http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(orders); err != nil {
			return
		}
	}
}

// ViewOrder opens the detail view for one order
// 200 — order found and selected;
// 400 — malformed order id;
// 404 — order is not in the collection.
func (oh *OrderHandler) ViewOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
		if err != nil {
			http.Error(w, "bad order id", http.StatusBadRequest)
			return
		}

		order, err := oh.svc.OpenOrder(orderID)
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				http.Error(w, "order not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(order); err != nil {
			return
		}
	}
}

// CloseOrderView closes the detail view
// 204 — selection cleared.
func (oh *OrderHandler) CloseOrderView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		oh.svc.CloseOrder()
		w.WriteHeader(http.StatusNoContent)
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

// UpdateOrderStatus sets the status of one order
// 200 — backend confirmed, local state patched;
// 400 — malformed request;
// 404 — order not found;
// 422 — status is not in the allowed set, nothing was sent to the backend;
// 502 — backend rejected or is unreachable, local state untouched.
func (oh *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
		if err != nil {
			http.Error(w, "bad order id", http.StatusBadRequest)
			return
		}

		var statusReq updateStatusRequest

		if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := oh.validate.Struct(statusReq); err != nil {
			http.Error(w, "invalid order status", http.StatusUnprocessableEntity)
			return
		}

		if err := oh.status.SetOrderStatus(r.Context(), orderID, statusReq.Status); err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidOrderStatus):
				http.Error(w, "invalid order status", http.StatusUnprocessableEntity)
			case errors.Is(err, models.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				http.Error(w, "status update failed", http.StatusBadGateway)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
