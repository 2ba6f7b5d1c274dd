package services

import (
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
)

// NewServiceContainer initializes all services with their repository
// dependencies. The saving goal service doubles as the goal reconciler, so it
// is built first and shared with every service that mutates the ledger.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	goalSvc := NewSavingGoalService(repos.SavingGoalRepo, repos.TransactionRepo)

	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		SavingGoal:  goalSvc,
		Transaction: NewTransactionService(repos.TransactionRepo, goalSvc),
		Settings:    NewSettingsService(repos.SettingsRepo),
		Reporting:   NewReportingService(repos.AccountRepo, repos.TransactionRepo),
		Recurrence:  NewRecurrenceService(repos.TransactionRepo, repos.RuntimeStateRepo, goalSvc),
		CarryOver:   NewCarryOverService(repos.SettingsRepo, repos.AccountRepo, repos.TransactionRepo),
		DataRepair:  NewDataRepairService(repos.TransactionRepo, repos.RuntimeStateRepo),
	}
}
