// Package finance holds the pure calculation rules of the engine: balance
// folding, net worth, period filtering and bucketing. Everything here is a
// side-effect-free function over an in-memory snapshot of the ledger.
package finance

import (
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedEffect returns the effect a transaction has on the balance of the
// given account:
//
//	income            +amount to the destination account
//	expense           -amount from the source account
//	transfer          -amount from source, +amount to destination
//	savingDeposit     -amount from the source account (the goal side is tracked separately)
//	savingWithdrawal  +amount to the destination account
//
// Transactions that do not reference the account yield zero. References to
// accounts absent from the caller's snapshot are simply never matched, so
// dangling references are ignored rather than treated as errors.
func SignedEffect(txn domain.Transaction, accountID string) decimal.Decimal {
	effect := decimal.Zero

	switch txn.Type {
	case domain.Income:
		if txn.DestinationAccountID == accountID {
			effect = effect.Add(txn.Amount)
		}
	case domain.Expense:
		if txn.SourceAccountID == accountID {
			effect = effect.Sub(txn.Amount)
		}
	case domain.Transfer:
		if txn.SourceAccountID == accountID {
			effect = effect.Sub(txn.Amount)
		}
		if txn.DestinationAccountID == accountID {
			effect = effect.Add(txn.Amount)
		}
	case domain.SavingDeposit:
		if txn.SourceAccountID == accountID {
			effect = effect.Sub(txn.Amount)
		}
	case domain.SavingWithdrawal:
		if txn.DestinationAccountID == accountID {
			effect = effect.Add(txn.Amount)
		}
	}

	return effect
}

// AccountBalance folds the signed effect of every transaction over the
// account's initial balance.
func AccountBalance(account domain.Account, transactions []domain.Transaction) decimal.Decimal {
	balance := account.InitialBalance
	for _, txn := range transactions {
		balance = balance.Add(SignedEffect(txn, account.AccountID))
	}
	return balance
}

// NetWorth sums AccountBalance over all non-archived accounts. Archived
// accounts drop out of the sum without their transactions being touched.
func NetWorth(accounts []domain.Account, transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		if account.IsArchived {
			continue
		}
		total = total.Add(AccountBalance(account, transactions))
	}
	return total
}

// GoalAmount recomputes a saving goal's accumulated amount from the ledger:
// +amount for deposits into the goal, -amount for withdrawals from it, all
// other transactions ignored.
func GoalAmount(goal domain.SavingGoal, transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.SavingGoalID != goal.GoalID {
			continue
		}
		switch txn.Type {
		case domain.SavingDeposit:
			total = total.Add(txn.Amount)
		case domain.SavingWithdrawal:
			total = total.Sub(txn.Amount)
		}
	}
	return total
}
