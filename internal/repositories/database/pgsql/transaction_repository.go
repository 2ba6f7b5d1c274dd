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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, template_id, type, amount, description, date, frequency, is_recurring_template, category_id, source_account_id, destination_account_id, saving_goal_id, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.TemplateID,
		&txn.Type,
		&txn.Amount,
		&txn.Description,
		&txn.Date,
		&txn.Frequency,
		&txn.IsRecurringTemplate,
		&txn.CategoryID,
		&txn.SourceAccountID,
		&txn.DestinationAccountID,
		&txn.SavingGoalID,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
	return txn, err
}

func transactionArgs(txn models.Transaction) []any {
	return []any{
		txn.TransactionID,
		txn.TemplateID,
		txn.Type,
		txn.Amount,
		txn.Description,
		txn.Date,
		txn.Frequency,
		txn.IsRecurringTemplate,
		txn.CategoryID,
		txn.SourceAccountID,
		txn.DestinationAccountID,
		txn.SavingGoalID,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	}
}

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	_, err := r.Pool.Exec(ctx, insertTransactionQuery, transactionArgs(modelTxn)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// SaveTransactions persists a batch of new transactions in one round trip.
// The recurrence engine uses this for backfills.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(insertTransactionQuery, transactionArgs(mapping.ToModelTransaction(txn))...)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range txns {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save transaction batch (item %d of %d): %w", i+1, len(txns), err)
		}
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves the whole ledger ordered newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// UpdateTransaction updates an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET template_id = $2, type = $3, amount = $4, description = $5, date = $6,
		    frequency = $7, is_recurring_template = $8, category_id = $9,
		    source_account_id = $10, destination_account_id = $11,
		    saving_goal_id = $12, last_updated_at = $13
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.TemplateID,
		modelTxn.Type,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.Date,
		modelTxn.Frequency,
		modelTxn.IsRecurringTemplate,
		modelTxn.CategoryID,
		modelTxn.SourceAccountID,
		modelTxn.DestinationAccountID,
		modelTxn.SavingGoalID,
		modelTxn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", modelTxn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction permanently.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
