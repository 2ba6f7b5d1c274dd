package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) ArchiveAccount(ctx context.Context, accountID string, now time.Time) error {
	args := m.Called(ctx, accountID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite ---
type CarryOverServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	mockAccountRepo  *MockAccountRepository
	mockTxnRepo      *MockTransactionRepository
	service          portssvc.CarryOverSvc

	accountID     string
	referenceDate time.Time
}

func (suite *CarryOverServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewCarryOverService(suite.mockSettingsRepo, suite.mockAccountRepo, suite.mockTxnRepo)

	suite.accountID = uuid.NewString()
	suite.referenceDate = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
}

func (suite *CarryOverServiceTestSuite) enabledSettings() *domain.Settings {
	return &domain.Settings{
		SettingsID:         uuid.NewString(),
		CarryOverEnabled:   true,
		CarryOverToAccount: true,
		CarryOverAccountID: suite.accountID,
	}
}

func (suite *CarryOverServiceTestSuite) ledgerTxn(txnType domain.TransactionType, amount int64, date time.Time) domain.Transaction {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          txnType,
		Amount:        decimal.NewFromInt(amount),
		Date:          date,
		Frequency:     domain.FrequencyNone,
		CategoryID:    uuid.NewString(),
	}
	if txnType == domain.Income {
		txn.DestinationAccountID = suite.accountID
	} else {
		txn.SourceAccountID = suite.accountID
	}
	return txn
}

// --- Test Cases ---

func (suite *CarryOverServiceTestSuite) TestApplyIfNeeded_PositiveNetCreatesIncome() {
	ctx := context.Background()
	april := func(day int) time.Time { return time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC) }
	ledger := []domain.Transaction{
		suite.ledgerTxn(domain.Income, 2000, april(1)),
		suite.ledgerTxn(domain.Expense, 1200, april(15)),
		// Outside the previous month, must not count.
		suite.ledgerTxn(domain.Income, 999, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)),
		// Transfers and savings moves never affect the net.
		suite.ledgerTxn(domain.SavingDeposit, 500, april(20)),
	}

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(suite.enabledSettings(), nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).
		Return(&domain.Account{AccountID: suite.accountID}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Income &&
			t.Description == services.CarryOverDescription &&
			t.Amount.Equal(decimal.NewFromInt(800)) &&
			t.Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) &&
			t.DestinationAccountID == suite.accountID &&
			t.Frequency == domain.FrequencyNone
	})).Return(nil).Once()

	applied, err := suite.service.ApplyIfNeeded(ctx, suite.referenceDate)

	suite.Require().NoError(err)
	suite.True(applied)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *CarryOverServiceTestSuite) TestApplyIfNeeded_AlreadyAppliedThisMonth() {
	ctx := context.Background()
	existingCarryOver := domain.Transaction{
		TransactionID:        uuid.NewString(),
		Type:                 domain.Income,
		Amount:               decimal.NewFromInt(800),
		Description:          services.CarryOverDescription,
		Date:                 time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		DestinationAccountID: suite.accountID,
	}

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(suite.enabledSettings(), nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{existingCarryOver}, nil).Once()

	applied, err := suite.service.ApplyIfNeeded(ctx, suite.referenceDate)

	suite.Require().NoError(err)
	suite.False(applied)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *CarryOverServiceTestSuite) TestApplyIfNeeded_NegativeNetSkips() {
	ctx := context.Background()
	ledger := []domain.Transaction{
		suite.ledgerTxn(domain.Income, 100, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
		suite.ledgerTxn(domain.Expense, 400, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(suite.enabledSettings(), nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).
		Return(&domain.Account{AccountID: suite.accountID}, nil).Once()

	applied, err := suite.service.ApplyIfNeeded(ctx, suite.referenceDate)

	suite.Require().NoError(err)
	suite.False(applied)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *CarryOverServiceTestSuite) TestApplyIfNeeded_ZeroNetSkips() {
	ctx := context.Background()
	ledger := []domain.Transaction{
		suite.ledgerTxn(domain.Income, 250, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
		suite.ledgerTxn(domain.Expense, 250, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(suite.enabledSettings(), nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).
		Return(&domain.Account{AccountID: suite.accountID}, nil).Once()

	applied, err := suite.service.ApplyIfNeeded(ctx, suite.referenceDate)

	suite.Require().NoError(err)
	suite.False(applied)
}

func (suite *CarryOverServiceTestSuite) TestApplyIfNeeded_NoSettingsRecordDisables() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	applied, err := suite.service.ApplyIfNeeded(ctx, suite.referenceDate)

	suite.Require().NoError(err)
	suite.False(applied)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything)
}

func (suite *CarryOverServiceTestSuite) TestApplyIfNeeded_DisabledFlagSkips() {
	ctx := context.Background()
	settings := suite.enabledSettings()
	settings.CarryOverEnabled = false

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(settings, nil).Once()

	applied, err := suite.service.ApplyIfNeeded(ctx, suite.referenceDate)

	suite.Require().NoError(err)
	suite.False(applied)
}

func (suite *CarryOverServiceTestSuite) TestApplyIfNeeded_NoTargetAccountSkips() {
	ctx := context.Background()
	settings := suite.enabledSettings()
	settings.CarryOverAccountID = ""

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(settings, nil).Once()

	applied, err := suite.service.ApplyIfNeeded(ctx, suite.referenceDate)

	suite.Require().NoError(err)
	suite.False(applied)
}

func (suite *CarryOverServiceTestSuite) TestApplyIfNeeded_MissingTargetAccountSkips() {
	ctx := context.Background()
	ledger := []domain.Transaction{
		suite.ledgerTxn(domain.Income, 500, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockSettingsRepo.On("GetSettings", ctx).Return(suite.enabledSettings(), nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(nil, apperrors.ErrNotFound).Once()

	applied, err := suite.service.ApplyIfNeeded(ctx, suite.referenceDate)

	suite.Require().NoError(err)
	suite.False(applied)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestCarryOverService(t *testing.T) {
	suite.Run(t, new(CarryOverServiceTestSuite))
}
