package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock GoalReconciler ---
type MockGoalReconciler struct {
	mock.Mock
}

func (m *MockGoalReconciler) RecalculateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockTransactionRepository
	mockReconciler *MockGoalReconciler
	service        portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockReconciler = new(MockGoalReconciler)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockReconciler)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Expense_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:            domain.Expense,
		Amount:          decimal.NewFromInt(42),
		Description:     "Groceries",
		Date:            time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		CategoryID:      categoryID,
		SourceAccountID: accountID,
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Expense &&
			t.Amount.Equal(req.Amount) &&
			t.SourceAccountID == accountID &&
			t.Frequency == domain.FrequencyNone &&
			t.TransactionID != ""
	})).Return(nil).Once()
	suite.mockReconciler.On("RecalculateAll", ctx).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Expense, txn.Type)
	suite.Equal(domain.FrequencyNone, txn.Frequency)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockReconciler.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IncomeWithoutDestination_Fails() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:       domain.Income,
		Amount:     decimal.NewFromInt(1000),
		Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CategoryID: uuid.NewString(),
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IncomeWithSourceAccount_Fails() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:                 domain.Income,
		Amount:               decimal.NewFromInt(1000),
		Date:                 time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CategoryID:           uuid.NewString(),
		SourceAccountID:      uuid.NewString(),
		DestinationAccountID: uuid.NewString(),
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TransferSameAccount_Fails() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:                 domain.Transfer,
		Amount:               decimal.NewFromInt(50),
		Date:                 time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		SourceAccountID:      accountID,
		DestinationAccountID: accountID,
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount_Fails() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:            domain.Expense,
		Amount:          decimal.Zero,
		Date:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CategoryID:      uuid.NewString(),
		SourceAccountID: uuid.NewString(),
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SavingDepositWithoutGoal_Fails() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:            domain.SavingDeposit,
		Amount:          decimal.NewFromInt(25),
		Date:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		SourceAccountID: uuid.NewString(),
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ReconcileFailure_Surfaces() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:            domain.Expense,
		Amount:          decimal.NewFromInt(10),
		Date:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		CategoryID:      uuid.NewString(),
		SourceAccountID: uuid.NewString(),
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockReconciler.On("RecalculateAll", ctx).Return(expectedErr).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_InvalidResult_Fails() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID:   transactionID,
		Type:            domain.Expense,
		Amount:          decimal.NewFromInt(30),
		Date:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Frequency:       domain.FrequencyNone,
		CategoryID:      uuid.NewString(),
		SourceAccountID: uuid.NewString(),
	}
	negative := decimal.NewFromInt(-5)

	suite.mockRepo.On("FindTransactionByID", ctx, transactionID).Return(existing, nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, transactionID, dto.UpdateTransactionRequest{Amount: &negative})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Reconciles() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockRepo.On("DeleteTransaction", ctx, transactionID).Return(nil).Once()
	suite.mockReconciler.On("RecalculateAll", ctx).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockReconciler.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransactionByID(ctx, transactionID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
