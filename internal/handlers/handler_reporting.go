package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/apperrors"
	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
	"github.com/budgetbuddy/budget_buddy_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler exposes the derived numbers: balances, net worth and
// period breakdowns.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/accounts/:accountID/balance", h.getAccountBalance)
		reports.GET("/networth", h.getNetWorth)
		reports.GET("/transactions", h.getPeriodTransactions)
		reports.GET("/totals", h.getTotals)
		reports.GET("/summaries", h.getPeriodSummaries)
	}
}

// parsePeriod reads the period query param, defaulting to month.
func parsePeriod(c *gin.Context) (domain.PeriodType, bool) {
	switch period := c.DefaultQuery("period", string(domain.PeriodMonth)); domain.PeriodType(period) {
	case domain.PeriodWeek, domain.PeriodMonth, domain.PeriodYear:
		return domain.PeriodType(period), true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be one of week, month, year"})
		return "", false
	}
}

// parseReferenceDate reads the date query param (2006-01-02), defaulting to today.
func parseReferenceDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must use the format YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func (h *reportingHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	balance, err := h.reportingService.GetAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to compute account balance", slog.String("account_id", accountID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute account balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{AccountID: accountID, Balance: balance})
}

func (h *reportingHandler) getNetWorth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	netWorth, err := h.reportingService.GetNetWorth(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute net worth", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute net worth"})
		return
	}

	c.JSON(http.StatusOK, dto.NetWorthResponse{NetWorth: netWorth})
}

func (h *reportingHandler) getPeriodTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := parsePeriod(c)
	if !ok {
		return
	}
	referenceDate, ok := parseReferenceDate(c)
	if !ok {
		return
	}

	txns, err := h.reportingService.GetPeriodTransactions(c.Request.Context(), period, referenceDate)
	if err != nil {
		logger.Error("Failed to list period transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list period transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

func (h *reportingHandler) getTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := parsePeriod(c)
	if !ok {
		return
	}
	referenceDate, ok := parseReferenceDate(c)
	if !ok {
		return
	}

	income, expense, err := h.reportingService.GetTotals(c.Request.Context(), period, referenceDate)
	if err != nil {
		logger.Error("Failed to compute period totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute period totals"})
		return
	}

	c.JSON(http.StatusOK, dto.TotalsResponse{
		Period:  period,
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	})
}

func (h *reportingHandler) getPeriodSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return
		}
		year = parsed
	}

	summaries, err := h.reportingService.GetPeriodSummaries(c.Request.Context(), period, year)
	if err != nil {
		logger.Error("Failed to compute period summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute period summaries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPeriodSummaryResponse(summaries))
}
