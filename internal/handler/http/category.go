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

// CategoryService passes category management through to the backend
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Delete(ctx context.Context, categoryID int64) error
}

// CategoryHandler represents HTTP handler for category-related requests
type CategoryHandler struct {
	svc      CategoryService
	validate *validatorv10.Validate
}

// NewCategoryHandler creates new CategoryHandler instance
func NewCategoryHandler(svc CategoryService, validate *validatorv10.Validate) *CategoryHandler {
	return &CategoryHandler{
		svc:      svc,
		validate: validate,
	}
}

// ListCategories returns all product categories
// 200 — collection returned;
// 502 — store backend is unavailable.
func (ch *CategoryHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := ch.svc.List(r.Context())
		if err != nil {
			http.Error(w, "store backend is unavailable", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(categories); err != nil {
			return
		}
	}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateCategory adds a new product category
// 201 — category created;
// 400 — malformed request or empty name;
// 502 — store backend is unavailable.
func (ch *CategoryHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var categoryReq createCategoryRequest

		if err := json.NewDecoder(r.Body).Decode(&categoryReq); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ch.validate.Struct(categoryReq); err != nil {
			http.Error(w, "category name is required", http.StatusBadRequest)
			return
		}

		category, err := ch.svc.Create(r.Context(), categoryReq.Name)
		if err != nil {
			if errors.Is(err, models.ErrEmptyCategoryName) {
				http.Error(w, "category name is required", http.StatusBadRequest)
				return
			}
			http.Error(w, "store backend is unavailable", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(category); err != nil {
			return
		}
	}
}

// DeleteCategory removes a product category
// 204 — category deleted;
// 400 — malformed category id;
// 502 — store backend is unavailable.
func (ch *CategoryHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
		if err != nil {
			http.Error(w, "bad category id", http.StatusBadRequest)
			return
		}

		if err := ch.svc.Delete(r.Context(), categoryID); err != nil {
			http.Error(w, "store backend is unavailable", http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
