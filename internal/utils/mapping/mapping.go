package mapping

import (
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/budgetbuddy/budget_buddy_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		AccountType:    models.AccountType(d.AccountType),
		InitialBalance: d.InitialBalance,
		IconName:       d.IconName,
		ColorHex:       d.ColorHex,
		IsArchived:     d.IsArchived,
		IsDefault:      d.IsDefault,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		InitialBalance: m.InitialBalance,
		IconName:       m.IconName,
		ColorHex:       m.ColorHex,
		IsArchived:     m.IsArchived,
		IsDefault:      m.IsDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		IconName:   d.IconName,
		ColorHex:   d.ColorHex,
		IsDefault:  d.IsDefault,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		IconName:   m.IconName,
		ColorHex:   m.ColorHex,
		IsDefault:  m.IsDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainCategorySlice converts a slice of model Categories to a slice of domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

// ToModelSavingGoal converts a domain SavingGoal to a model SavingGoal
func ToModelSavingGoal(d domain.SavingGoal) models.SavingGoal {
	return models.SavingGoal{
		GoalID:        d.GoalID,
		Name:          d.Name,
		GoalAmount:    d.GoalAmount,
		CurrentAmount: d.CurrentAmount,
		IconName:      d.IconName,
		ColorHex:      d.ColorHex,
		Description:   d.Description,
		IsArchived:    d.IsArchived,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainSavingGoal converts a model SavingGoal to a domain SavingGoal
func ToDomainSavingGoal(m models.SavingGoal) domain.SavingGoal {
	return domain.SavingGoal{
		GoalID:        m.GoalID,
		Name:          m.Name,
		GoalAmount:    m.GoalAmount,
		CurrentAmount: m.CurrentAmount,
		IconName:      m.IconName,
		ColorHex:      m.ColorHex,
		Description:   m.Description,
		IsArchived:    m.IsArchived,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainSavingGoalSlice converts a slice of model SavingGoals to a slice of domain SavingGoals
func ToDomainSavingGoalSlice(ms []models.SavingGoal) []domain.SavingGoal {
	ds := make([]domain.SavingGoal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSavingGoal(m)
	}
	return ds
}

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		TemplateID:           d.TemplateID,
		Type:                 models.TransactionType(d.Type),
		Amount:               d.Amount,
		Description:          d.Description,
		Date:                 d.Date,
		Frequency:            models.TransactionFrequency(d.Frequency),
		IsRecurringTemplate:  d.IsRecurringTemplate,
		CategoryID:           d.CategoryID,
		SourceAccountID:      d.SourceAccountID,
		DestinationAccountID: d.DestinationAccountID,
		SavingGoalID:         d.SavingGoalID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		TemplateID:           m.TemplateID,
		Type:                 domain.TransactionType(m.Type),
		Amount:               m.Amount,
		Description:          m.Description,
		Date:                 m.Date,
		Frequency:            domain.TransactionFrequency(m.Frequency),
		IsRecurringTemplate:  m.IsRecurringTemplate,
		CategoryID:           m.CategoryID,
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
		SavingGoalID:         m.SavingGoalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelSettings converts domain Settings to model Settings
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		SettingsID:          d.SettingsID,
		CarryOverEnabled:    d.CarryOverEnabled,
		CarryOverToAccount:  d.CarryOverToAccount,
		CarryOverAccountID:  d.CarryOverAccountID,
		PreferredPeriodView: string(d.PreferredPeriodView),
		CurrencyCode:        d.CurrencyCode,
		LanguageCode:        d.LanguageCode,
		OnboardingCompleted: d.OnboardingCompleted,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainSettings converts model Settings to domain Settings
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		SettingsID:          m.SettingsID,
		CarryOverEnabled:    m.CarryOverEnabled,
		CarryOverToAccount:  m.CarryOverToAccount,
		CarryOverAccountID:  m.CarryOverAccountID,
		PreferredPeriodView: domain.PeriodType(m.PreferredPeriodView),
		CurrencyCode:        m.CurrencyCode,
		LanguageCode:        m.LanguageCode,
		OnboardingCompleted: m.OnboardingCompleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
