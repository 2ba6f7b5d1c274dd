package domain

// TransactionType classifies the direction and nature of a transaction.
// Amounts are always stored as positive magnitudes; the sign applied to an
// account balance is derived from the type plus which account reference is set.
type TransactionType string

const (
	Income           TransactionType = "income"
	Expense          TransactionType = "expense"
	Transfer         TransactionType = "transfer"
	SavingDeposit    TransactionType = "savingDeposit"
	SavingWithdrawal TransactionType = "savingWithdrawal"
)

// TransactionFrequency describes how often a recurring template repeats.
// FrequencyNone marks one-off transactions and generated occurrences.
type TransactionFrequency string

const (
	FrequencyNone        TransactionFrequency = "none"
	FrequencyWeekly      TransactionFrequency = "weekly"
	FrequencyMonthly     TransactionFrequency = "monthly"
	FrequencyQuarterly   TransactionFrequency = "quarterly"
	FrequencyFourMonthly TransactionFrequency = "fourMonthly"
	FrequencySixMonthly  TransactionFrequency = "sixMonthly"
	FrequencyYearly      TransactionFrequency = "yearly"
)

// AccountType defines the kind of account a user holds.
type AccountType string

const (
	Checking AccountType = "checking"
	Savings  AccountType = "savings"
	Cash     AccountType = "cash"
	Other    AccountType = "other"
)

// PeriodType selects the calendar granularity for filtering and summaries.
type PeriodType string

const (
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
)
