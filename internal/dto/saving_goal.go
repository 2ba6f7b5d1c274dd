package dto

import (
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSavingGoalRequest defines the data needed to create a new saving goal.
type CreateSavingGoalRequest struct {
	Name        string          `json:"name" binding:"required"`
	GoalAmount  decimal.Decimal `json:"goalAmount" binding:"required"`
	IconName    string          `json:"iconName"`
	ColorHex    string          `json:"colorHex"`
	Description string          `json:"description"`
}

// UpdateSavingGoalRequest defines the data allowed for updating a saving goal.
// CurrentAmount is deliberately absent: it is owned by the goal reconciler.
type UpdateSavingGoalRequest struct {
	Name        *string          `json:"name"`
	GoalAmount  *decimal.Decimal `json:"goalAmount"`
	IconName    *string          `json:"iconName"`
	ColorHex    *string          `json:"colorHex"`
	Description *string          `json:"description"`
	IsArchived  *bool            `json:"isArchived"`
}

// SavingGoalResponse defines the data returned for a saving goal.
type SavingGoalResponse struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	GoalAmount    decimal.Decimal `json:"goalAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	IconName      string          `json:"iconName"`
	ColorHex      string          `json:"colorHex"`
	Description   string          `json:"description"`
	IsArchived    bool            `json:"isArchived"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToSavingGoalResponse converts a domain.SavingGoal to SavingGoalResponse DTO
func ToSavingGoalResponse(goal *domain.SavingGoal) SavingGoalResponse {
	return SavingGoalResponse{
		GoalID:        goal.GoalID,
		Name:          goal.Name,
		GoalAmount:    goal.GoalAmount,
		CurrentAmount: goal.CurrentAmount,
		IconName:      goal.IconName,
		ColorHex:      goal.ColorHex,
		Description:   goal.Description,
		IsArchived:    goal.IsArchived,
		CreatedAt:     goal.CreatedAt,
		LastUpdatedAt: goal.LastUpdatedAt,
	}
}

// ToListSavingGoalResponse converts a slice of domain.SavingGoal to DTOs
func ToListSavingGoalResponse(goals []domain.SavingGoal) []SavingGoalResponse {
	res := make([]SavingGoalResponse, len(goals))
	for i, goal := range goals {
		res[i] = ToSavingGoalResponse(&goal)
	}
	return res
}
