package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
	"github.com/budgetbuddy/budget_buddy_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// savingGoalHandler handles HTTP requests related to saving goals.
type savingGoalHandler struct {
	goalService portssvc.SavingGoalSvcFacade
}

// newSavingGoalHandler creates a new savingGoalHandler.
func newSavingGoalHandler(gs portssvc.SavingGoalSvcFacade) *savingGoalHandler {
	return &savingGoalHandler{
		goalService: gs,
	}
}

// registerSavingGoalRoutes registers routes related to saving goals.
func registerSavingGoalRoutes(rg *gin.RouterGroup, goalService portssvc.SavingGoalSvcFacade) {
	h := newSavingGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:goalID", h.getGoal)
		goals.PUT("/:goalID", h.updateGoal)
		goals.DELETE("/:goalID", h.deleteGoal)
	}
}

func (h *savingGoalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSavingGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create saving goal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create saving goal"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSavingGoalResponse(goal))
}

func (h *savingGoalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	goal, err := h.goalService.GetGoalByID(c.Request.Context(), goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Saving goal not found"})
		} else {
			logger.Error("Failed to get saving goal", slog.String("goal_id", goalID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve saving goal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingGoalResponse(goal))
}

func (h *savingGoalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list saving goals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list saving goals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSavingGoalResponse(goals))
}

func (h *savingGoalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	var req dto.UpdateSavingGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), goalID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Saving goal not found"})
		} else {
			logger.Error("Failed to update saving goal", slog.String("goal_id", goalID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update saving goal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingGoalResponse(goal))
}

func (h *savingGoalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	if err := h.goalService.DeleteGoal(c.Request.Context(), goalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Saving goal not found"})
		} else {
			logger.Error("Failed to delete saving goal", slog.String("goal_id", goalID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete saving goal"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
