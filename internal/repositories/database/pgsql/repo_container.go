package pgsql

import (
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		SavingGoalRepo:   newPgxSavingGoalRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		RuntimeStateRepo: newPgxRuntimeStateRepository(dbPool),
	}
}
