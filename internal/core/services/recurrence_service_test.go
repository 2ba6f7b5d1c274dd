package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RuntimeStateRepository ---
type MockRuntimeStateRepository struct {
	mock.Mock
}

func (m *MockRuntimeStateRepository) GetLastRecurrenceRunAt(ctx context.Context) (time.Time, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Bool(1), args.Error(2)
}

func (m *MockRuntimeStateRepository) SetLastRecurrenceRunAt(ctx context.Context, at time.Time) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *MockRuntimeStateRepository) GetDataFixVersion(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRuntimeStateRepository) SetDataFixVersion(ctx context.Context, version int) error {
	args := m.Called(ctx, version)
	return args.Error(0)
}

// --- Test Suite ---
type RecurrenceServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockRuntimeRepo *MockRuntimeStateRepository
	mockReconciler  *MockGoalReconciler
	service         portssvc.RecurrenceSvc
}

func (suite *RecurrenceServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockRuntimeRepo = new(MockRuntimeStateRepository)
	suite.mockReconciler = new(MockGoalReconciler)
	suite.service = services.NewRecurrenceService(suite.mockTxnRepo, suite.mockRuntimeRepo, suite.mockReconciler)
}

func (suite *RecurrenceServiceTestSuite) neverRan() {
	suite.mockRuntimeRepo.On("GetLastRecurrenceRunAt", mock.Anything).Return(time.Time{}, false, nil).Once()
}

func monthlyTemplate(start time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:       uuid.NewString(),
		Type:                domain.Expense,
		Amount:              decimal.NewFromInt(15),
		Description:         "Streaming subscription",
		Date:                start,
		Frequency:           domain.FrequencyMonthly,
		IsRecurringTemplate: true,
		CategoryID:          uuid.NewString(),
		SourceAccountID:     uuid.NewString(),
	}
}

// --- Test Cases ---

func (suite *RecurrenceServiceTestSuite) TestRun_BackfillsMissedMonths() {
	ctx := context.Background()
	template := monthlyTemplate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 4, 15, 10, 30, 0, 0, time.UTC)

	suite.neverRan()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{template}, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		if len(txns) != 3 {
			return false
		}
		wantDates := []time.Time{
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		}
		for i, txn := range txns {
			if !txn.Date.Equal(wantDates[i]) ||
				txn.TemplateID != template.TransactionID ||
				txn.IsRecurringTemplate ||
				txn.Frequency != domain.FrequencyNone ||
				!txn.Amount.Equal(template.Amount) {
				return false
			}
		}
		return true
	})).Return(nil).Once()
	suite.mockReconciler.On("RecalculateAll", ctx).Return(nil).Once()
	suite.mockRuntimeRepo.On("SetLastRecurrenceRunAt", ctx, time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)).Return(nil).Once()

	created, err := suite.service.Run(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(3, created)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockRuntimeRepo.AssertExpectations(suite.T())
	suite.mockReconciler.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestRun_ExistingOccurrencesNotDuplicated() {
	ctx := context.Background()
	template := monthlyTemplate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	existing := func(date time.Time) domain.Transaction {
		return domain.Transaction{
			TransactionID:   uuid.NewString(),
			TemplateID:      template.TransactionID,
			Type:            template.Type,
			Amount:          template.Amount,
			Date:            date,
			Frequency:       domain.FrequencyNone,
			CategoryID:      template.CategoryID,
			SourceAccountID: template.SourceAccountID,
		}
	}
	ledger := []domain.Transaction{
		template,
		existing(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		existing(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	suite.neverRan()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()
	// Only the hole in the middle gets filled.
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 && txns[0].Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()
	suite.mockReconciler.On("RecalculateAll", ctx).Return(nil).Once()
	suite.mockRuntimeRepo.On("SetLastRecurrenceRunAt", ctx, mock.AnythingOfType("time.Time")).Return(nil).Once()

	created, err := suite.service.Run(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, created)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestRun_FullyCaughtUpCreatesNothing() {
	ctx := context.Background()
	template := monthlyTemplate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	suite.neverRan()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{template}, nil).Once()
	suite.mockReconciler.On("RecalculateAll", ctx).Return(nil).Once()
	suite.mockRuntimeRepo.On("SetLastRecurrenceRunAt", ctx, mock.AnythingOfType("time.Time")).Return(nil).Once()

	created, err := suite.service.Run(ctx, now)

	suite.Require().NoError(err)
	suite.Zero(created)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

func (suite *RecurrenceServiceTestSuite) TestRun_ThrottledWhenAlreadyRanToday() {
	ctx := context.Background()
	now := time.Date(2024, 4, 15, 18, 0, 0, 0, time.UTC)

	suite.mockRuntimeRepo.On("GetLastRecurrenceRunAt", ctx).
		Return(time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC), true, nil).Once()

	created, err := suite.service.Run(ctx, now)

	suite.Require().NoError(err)
	suite.Zero(created)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything)
}

func (suite *RecurrenceServiceTestSuite) TestRun_ThrottleReadFailureProceeds() {
	ctx := context.Background()
	now := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	suite.mockRuntimeRepo.On("GetLastRecurrenceRunAt", ctx).
		Return(time.Time{}, false, context.DeadlineExceeded).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
	suite.mockReconciler.On("RecalculateAll", ctx).Return(nil).Once()
	suite.mockRuntimeRepo.On("SetLastRecurrenceRunAt", ctx, mock.AnythingOfType("time.Time")).Return(nil).Once()

	created, err := suite.service.Run(ctx, now)

	suite.Require().NoError(err)
	suite.Zero(created)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestRun_EndOfMonthTemplateClampsDay() {
	ctx := context.Background()
	template := monthlyTemplate(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	// The cursor walks month by month, so once Jan 31 clamps to Feb 29 the
	// schedule stays on the 29th; it does not snap back to the 31st.
	suite.neverRan()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{template}, nil).Once()
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 2 &&
			txns[0].Date.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) &&
			txns[1].Date.Equal(time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()
	suite.mockReconciler.On("RecalculateAll", ctx).Return(nil).Once()
	suite.mockRuntimeRepo.On("SetLastRecurrenceRunAt", ctx, mock.AnythingOfType("time.Time")).Return(nil).Once()

	created, err := suite.service.Run(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(2, created)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *RecurrenceServiceTestSuite) TestRun_NonRecurringTemplateIgnored() {
	ctx := context.Background()
	template := monthlyTemplate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	template.Frequency = domain.FrequencyNone
	now := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	suite.neverRan()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{template}, nil).Once()
	suite.mockReconciler.On("RecalculateAll", ctx).Return(nil).Once()
	suite.mockRuntimeRepo.On("SetLastRecurrenceRunAt", ctx, mock.AnythingOfType("time.Time")).Return(nil).Once()

	created, err := suite.service.Run(ctx, now)

	suite.Require().NoError(err)
	suite.Zero(created)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestRecurrenceService(t *testing.T) {
	suite.Run(t, new(RecurrenceServiceTestSuite))
}
