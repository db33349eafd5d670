package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService   services.AccountServicer
	householdService services.HouseholdServicer
	auditService     services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, householdService services.HouseholdServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, householdService: householdService, auditService: auditService}
}

// CreateAccountRequest represents the request payload for creating an account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required,min=1,max=100"`
	Type           models.AccountType `json:"type" binding:"required,account_type"`
	IsShared       bool               `json:"is_shared"`
	InitialBalance int64              `json:"initial_balance"`
	OwnerMemberID  *string            `json:"owner_member_id" binding:"omitempty,uuid"`
}

// CreateAccount handles the creation of a new account.
// @Summary     Create an account
// @Description Create a new account in the active household
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       household_id query string false "Explicitly requested household"
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No household"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	resolved, err := resolveHousehold(c, h.householdService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	userID := resolved.Member.UserID
	account, err := h.accountService.CreateAccount(
		userID, resolved.Household.ID, req.Name, req.Type, req.IsShared, req.InitialBalance, req.OwnerMemberID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, resolved.Household.ID, "CREATE_ACCOUNT", "account", account.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": req.Type})

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts lists the active household's accounts with derived balances.
// @Summary     List accounts
// @Description List the active household's accounts, each with its derived current balance
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       household_id query string false "Explicitly requested household"
// @Success     200 {object} map[string][]services.AccountWithBalance "Accounts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No household"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	resolved, err := resolveHousehold(c, h.householdService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.accountService.GetHouseholdAccounts(resolved.Member.UserID, resolved.Household.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetAccount handles retrieving a specific account.
// @Summary     Get account by ID
// @Description Get a specific account by ID
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account "Account details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}
