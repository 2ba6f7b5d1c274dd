package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	"github.com/budgetbuddy/budget_buddy_app/internal/models"
	"github.com/budgetbuddy/budget_buddy_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxSavingGoalRepository struct {
	BaseRepository
}

// newPgxSavingGoalRepository creates a new repository for saving goal data.
func newPgxSavingGoalRepository(pool *pgxpool.Pool) portsrepo.SavingGoalRepositoryFacade {
	return &PgxSavingGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SavingGoalRepositoryFacade = (*PgxSavingGoalRepository)(nil)

const goalColumns = `goal_id, name, goal_amount, current_amount, icon_name, color_hex, description, is_archived, created_at, last_updated_at`

func scanSavingGoal(row pgx.Row) (models.SavingGoal, error) {
	var goal models.SavingGoal
	err := row.Scan(
		&goal.GoalID,
		&goal.Name,
		&goal.GoalAmount,
		&goal.CurrentAmount,
		&goal.IconName,
		&goal.ColorHex,
		&goal.Description,
		&goal.IsArchived,
		&goal.CreatedAt,
		&goal.LastUpdatedAt,
	)
	return goal, err
}

// SaveGoal inserts a new saving goal.
func (r *PgxSavingGoalRepository) SaveGoal(ctx context.Context, goal domain.SavingGoal) error {
	modelGoal := mapping.ToModelSavingGoal(goal)

	query := `
		INSERT INTO saving_goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelGoal.GoalID,
		modelGoal.Name,
		modelGoal.GoalAmount,
		modelGoal.CurrentAmount,
		modelGoal.IconName,
		modelGoal.ColorHex,
		modelGoal.Description,
		modelGoal.IsArchived,
		modelGoal.CreatedAt,
		modelGoal.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: saving goal with ID %s already exists", apperrors.ErrDuplicate, modelGoal.GoalID)
		}
		return fmt.Errorf("failed to save saving goal %s: %w", modelGoal.GoalID, err)
	}
	return nil
}

// FindGoalByID retrieves a saving goal by its identifier.
func (r *PgxSavingGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.SavingGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM saving_goals WHERE goal_id = $1;`

	modelGoal, err := scanSavingGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find saving goal by ID %s: %w", goalID, err)
	}

	domainGoal := mapping.ToDomainSavingGoal(modelGoal)
	return &domainGoal, nil
}

// ListGoals retrieves every saving goal, archived ones included.
func (r *PgxSavingGoalRepository) ListGoals(ctx context.Context) ([]domain.SavingGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM saving_goals ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query saving goals: %w", err)
	}
	defer rows.Close()

	modelGoals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SavingGoal, error) {
		return scanSavingGoal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan saving goals: %w", err)
	}

	return mapping.ToDomainSavingGoalSlice(modelGoals), nil
}

// UpdateGoal updates an existing saving goal's details. CurrentAmount is
// deliberately not touched here, that column belongs to the reconciler.
func (r *PgxSavingGoalRepository) UpdateGoal(ctx context.Context, goal domain.SavingGoal) error {
	modelGoal := mapping.ToModelSavingGoal(goal)

	query := `
		UPDATE saving_goals
		SET name = $2, goal_amount = $3, icon_name = $4, color_hex = $5,
		    description = $6, is_archived = $7, last_updated_at = $8
		WHERE goal_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelGoal.GoalID,
		modelGoal.Name,
		modelGoal.GoalAmount,
		modelGoal.IconName,
		modelGoal.ColorHex,
		modelGoal.Description,
		modelGoal.IsArchived,
		modelGoal.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update saving goal %s: %w", modelGoal.GoalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateGoalCurrentAmount writes the reconciler's recomputed amount.
func (r *PgxSavingGoalRepository) UpdateGoalCurrentAmount(ctx context.Context, goalID string, amount decimal.Decimal, now time.Time) error {
	query := `
		UPDATE saving_goals
		SET current_amount = $2, last_updated_at = $3
		WHERE goal_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, goalID, amount, now)
	if err != nil {
		return fmt.Errorf("failed to update current amount for saving goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGoal removes a saving goal permanently.
func (r *PgxSavingGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	query := `DELETE FROM saving_goals WHERE goal_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete saving goal %s: %w", goalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
