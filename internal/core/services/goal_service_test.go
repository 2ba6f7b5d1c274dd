package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Mock SavingGoalRepository ---
type MockSavingGoalRepository struct {
	mock.Mock
}

func (m *MockSavingGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.SavingGoal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavingGoal), args.Error(1)
}

func (m *MockSavingGoalRepository) ListGoals(ctx context.Context) ([]domain.SavingGoal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavingGoal), args.Error(1)
}

func (m *MockSavingGoalRepository) SaveGoal(ctx context.Context, goal domain.SavingGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockSavingGoalRepository) UpdateGoal(ctx context.Context, goal domain.SavingGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockSavingGoalRepository) UpdateGoalCurrentAmount(ctx context.Context, goalID string, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, goalID, amount, now)
	return args.Error(0)
}

func (m *MockSavingGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	args := m.Called(ctx, goalID)
	return args.Error(0)
}

// --- Test Suite ---
type SavingGoalServiceTestSuite struct {
	suite.Suite
	mockGoalRepo *MockSavingGoalRepository
	mockTxnRepo  *MockTransactionRepository
	service      portssvc.SavingGoalSvcFacade
}

func (suite *SavingGoalServiceTestSuite) SetupTest() {
	suite.mockGoalRepo = new(MockSavingGoalRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewSavingGoalService(suite.mockGoalRepo, suite.mockTxnRepo)
}

func goalMove(goalID string, txnType domain.TransactionType, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            txnType,
		Amount:          decimal.NewFromInt(amount),
		Date:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Frequency:       domain.FrequencyNone,
		SavingGoalID:    goalID,
		SourceAccountID: uuid.NewString(),
	}
}

// --- Test Cases ---

func (suite *SavingGoalServiceTestSuite) TestRecalculateAll_DepositsMinusWithdrawals() {
	ctx := context.Background()
	goalID := uuid.NewString()
	goal := domain.SavingGoal{
		GoalID:        goalID,
		Name:          "Vacation",
		GoalAmount:    decimal.NewFromInt(1000),
		CurrentAmount: decimal.Zero,
	}
	ledger := []domain.Transaction{
		goalMove(goalID, domain.SavingDeposit, 100),
		goalMove(goalID, domain.SavingDeposit, 50),
		goalMove(goalID, domain.SavingWithdrawal, 30),
		// Moves against another goal do not count.
		goalMove(uuid.NewString(), domain.SavingDeposit, 999),
	}

	suite.mockGoalRepo.On("ListGoals", ctx).Return([]domain.SavingGoal{goal}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()
	suite.mockGoalRepo.On("UpdateGoalCurrentAmount", ctx, goalID, decimal.NewFromInt(120), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.RecalculateAll(ctx)

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *SavingGoalServiceTestSuite) TestRecalculateAll_SkipsUnchangedGoals() {
	ctx := context.Background()
	goalID := uuid.NewString()
	goal := domain.SavingGoal{
		GoalID:        goalID,
		Name:          "Emergency fund",
		GoalAmount:    decimal.NewFromInt(5000),
		CurrentAmount: decimal.NewFromInt(70),
	}
	ledger := []domain.Transaction{
		goalMove(goalID, domain.SavingDeposit, 100),
		goalMove(goalID, domain.SavingWithdrawal, 30),
	}

	suite.mockGoalRepo.On("ListGoals", ctx).Return([]domain.SavingGoal{goal}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(ledger, nil).Once()

	err := suite.service.RecalculateAll(ctx)

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertNotCalled(suite.T(), "UpdateGoalCurrentAmount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SavingGoalServiceTestSuite) TestRecalculateAll_NoTransactionsYieldsZero() {
	ctx := context.Background()
	goalID := uuid.NewString()
	goal := domain.SavingGoal{
		GoalID:        goalID,
		Name:          "New bike",
		GoalAmount:    decimal.NewFromInt(800),
		CurrentAmount: decimal.NewFromInt(250),
	}

	suite.mockGoalRepo.On("ListGoals", ctx).Return([]domain.SavingGoal{goal}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
	suite.mockGoalRepo.On("UpdateGoalCurrentAmount", ctx, goalID, decimal.Zero, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.RecalculateAll(ctx)

	suite.Require().NoError(err)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *SavingGoalServiceTestSuite) TestRecalculateAll_ListGoalsError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockGoalRepo.On("ListGoals", ctx).Return(nil, expectedErr).Once()

	err := suite.service.RecalculateAll(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func (suite *SavingGoalServiceTestSuite) TestCreateGoal_StartsAtZero() {
	ctx := context.Background()
	req := dto.CreateSavingGoalRequest{
		Name:       "Vacation",
		GoalAmount: decimal.NewFromInt(1500),
	}

	suite.mockGoalRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.SavingGoal) bool {
		return g.Name == req.Name && g.GoalAmount.Equal(req.GoalAmount) && g.CurrentAmount.IsZero() && g.GoalID != ""
	})).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	suite.True(goal.CurrentAmount.IsZero())
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

func (suite *SavingGoalServiceTestSuite) TestUpdateGoal_PartialUpdate() {
	ctx := context.Background()
	goalID := uuid.NewString()
	existing := &domain.SavingGoal{
		GoalID:        goalID,
		Name:          "Vacation",
		GoalAmount:    decimal.NewFromInt(1500),
		CurrentAmount: decimal.NewFromInt(200),
	}
	newName := "Summer vacation"

	suite.mockGoalRepo.On("FindGoalByID", ctx, goalID).Return(existing, nil).Once()
	suite.mockGoalRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.SavingGoal) bool {
		return g.Name == newName && g.GoalAmount.Equal(existing.GoalAmount)
	})).Return(nil).Once()

	goal, err := suite.service.UpdateGoal(ctx, goalID, dto.UpdateSavingGoalRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, goal.Name)
	suite.mockGoalRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestSavingGoalService(t *testing.T) {
	suite.Run(t, new(SavingGoalServiceTestSuite))
}
