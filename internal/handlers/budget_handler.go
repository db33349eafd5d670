package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService    services.BudgetServicer
	householdService services.HouseholdServicer
	auditService     services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, householdService services.HouseholdServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, householdService: householdService, auditService: auditService}
}

// UpsertBudgetRequest represents the request payload for setting a budget.
// Writing an existing (category, month) pair overwrites the amount.
type UpsertBudgetRequest struct {
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Month      string `json:"month" binding:"required,month_key"`
	Amount     int64  `json:"amount" binding:"min=0"`
}

// UpsertBudget sets the budget for a category and month.
// @Summary     Set a budget
// @Description Create or overwrite the budget for a category and month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       household_id query string false "Explicitly requested household"
// @Param       request body UpsertBudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Budget written"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [put]
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	resolved, err := resolveHousehold(c, h.householdService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	userID := resolved.Member.UserID
	budget, err := h.budgetService.UpsertBudget(userID, resolved.Household.ID, req.CategoryID, req.Month, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, resolved.Household.ID, "UPSERT_BUDGET", "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"category_id": req.CategoryID, "month": req.Month, "amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetBudgets lists the active household's budgets for a month.
// @Summary     List budgets
// @Description List the active household's budgets for a month with categories resolved
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       household_id query string false "Explicitly requested household"
// @Param       month        query string false "Month key (YYYY-MM, default current month)"
// @Success     200 {object} map[string][]models.Budget "Budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No household"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	resolved, err := resolveHousehold(c, h.householdService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetMonthBudgets(resolved.Member.UserID, resolved.Household.ID, monthOrCurrent(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}
