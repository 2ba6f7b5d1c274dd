package services

import (
	"context"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
)

// CategorySvcFacade defines operations for category data
type CategorySvcFacade interface {
	// GetCategoryByID retrieves a specific category by its unique identifier.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves every category.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category permanently.
	DeleteCategory(ctx context.Context, categoryID string) error
}
