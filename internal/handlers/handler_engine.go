package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
	"github.com/budgetbuddy/budget_buddy_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// engineHandler exposes manual triggers for the background engines. The
// same runs happen automatically at startup; these endpoints let a client
// force a catch-up without restarting the process.
type engineHandler struct {
	recurrenceService portssvc.RecurrenceSvc
	carryOverService  portssvc.CarryOverSvc
}

// newEngineHandler creates a new engineHandler.
func newEngineHandler(rs portssvc.RecurrenceSvc, cs portssvc.CarryOverSvc) *engineHandler {
	return &engineHandler{
		recurrenceService: rs,
		carryOverService:  cs,
	}
}

// registerEngineRoutes registers the manual engine trigger routes. The
// triggers are rate limited per IP since each run scans the whole ledger.
func registerEngineRoutes(rg *gin.RouterGroup, recurrenceService portssvc.RecurrenceSvc, carryOverService portssvc.CarryOverSvc) {
	h := newEngineHandler(recurrenceService, carryOverService)

	rate, _ := limiter.NewRateFromFormatted("10-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	engine := rg.Group("/engine", middleware.RateLimit(ipLimiter))
	{
		engine.POST("/recurrence", h.runRecurrence)
		engine.POST("/carryover", h.runCarryOver)
	}
}

func (h *engineHandler) runRecurrence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	created, err := h.recurrenceService.Run(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Manual recurrence run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Recurrence run failed"})
		return
	}

	c.JSON(http.StatusOK, dto.EngineRunResponse{Ran: true, Created: created})
}

func (h *engineHandler) runCarryOver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	applied, err := h.carryOverService.ApplyIfNeeded(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Manual carry-over run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Carry-over run failed"})
		return
	}

	created := 0
	if applied {
		created = 1
	}
	c.JSON(http.StatusOK, dto.EngineRunResponse{Ran: applied, Created: created})
}
