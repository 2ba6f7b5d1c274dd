package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	"github.com/budgetbuddy/budget_buddy_app/internal/models"
	"github.com/budgetbuddy/budget_buddy_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, icon_name, color_hex, is_default, created_at, last_updated_at`

func scanCategory(row pgx.Row) (models.Category, error) {
	var cat models.Category
	err := row.Scan(
		&cat.CategoryID,
		&cat.Name,
		&cat.IconName,
		&cat.ColorHex,
		&cat.IsDefault,
		&cat.CreatedAt,
		&cat.LastUpdatedAt,
	)
	return cat, err
}

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.IconName,
		modelCat.ColorHex,
		modelCat.IsDefault,
		modelCat.CreatedAt,
		modelCat.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, modelCat.CategoryID)
		}
		return fmt.Errorf("failed to save category %s: %w", modelCat.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its identifier.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	modelCat, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	domainCat := mapping.ToDomainCategory(modelCat)
	return &domainCat, nil
}

// ListCategories retrieves all categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return mapping.ToDomainCategorySlice(modelCategories), nil
}

// UpdateCategory updates an existing category's details.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		UPDATE categories
		SET name = $2, icon_name = $3, color_hex = $4, last_updated_at = $5
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.IconName,
		modelCat.ColorHex,
		modelCat.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", modelCat.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category permanently.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
