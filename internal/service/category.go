package service

import (
	"context"
	"strings"

	"github.com/it23631960/pearl-logistics-admin/internal/models"
)

// CategoryClient is the category surface of the store backend
type CategoryClient interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategoryService passes category management through to the backend
type CategoryService struct {
	client CategoryClient
}

// NewCategoryService creates new CategoryService instance
func NewCategoryService(client CategoryClient) *CategoryService {
	return &CategoryService{client: client}
}

// List returns all product categories
func (cs *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return cs.client.ListCategories(ctx)
}

// Create adds a new category. The name is trimmed and must not be empty.
func (cs *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrEmptyCategoryName
	}
	return cs.client.CreateCategory(ctx, name)
}

// Delete removes a category
func (cs *CategoryService) Delete(ctx context.Context, categoryID int64) error {
	return cs.client.DeleteCategory(ctx, categoryID)
}
