package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

// HouseholdHandler handles household lifecycle, membership, and the
// invite/join workflow.
type HouseholdHandler struct {
	householdService services.HouseholdServicer
	auditService     services.AuditServicer
}

// NewHouseholdHandler creates a new HouseholdHandler.
func NewHouseholdHandler(householdService services.HouseholdServicer, auditService services.AuditServicer) *HouseholdHandler {
	return &HouseholdHandler{householdService: householdService, auditService: auditService}
}

// CreateHouseholdRequest represents the request payload for creating a household.
type CreateHouseholdRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=100"`
}

// JoinHouseholdRequest represents the request payload for joining a household.
type JoinHouseholdRequest struct {
	InviteCode  string `json:"invite_code" binding:"required,len=8"`
	DisplayName string `json:"display_name" binding:"required,min=1,max=100"`
}

// SwitchHouseholdRequest represents the request payload for switching the
// preferred household.
type SwitchHouseholdRequest struct {
	HouseholdID string `json:"household_id" binding:"required,uuid"`
}

// UpdateSettingsRequest represents the request payload for updating household settings.
type UpdateSettingsRequest struct {
	Currency  string `json:"currency" binding:"required,iso4217"`
	Locale    string `json:"locale" binding:"required,min=2,max=16"`
	ShowCents bool   `json:"show_cents"`
}

// CreateHousehold handles household creation.
// @Summary     Create a household
// @Description Create a household with the caller as owner; seeds default categories
// @Tags        households
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateHouseholdRequest true "Household details"
// @Success     201 {object} models.Household "Household created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /households [post]
func (h *HouseholdHandler) CreateHousehold(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	household, err := h.householdService.CreateHousehold(userID, req.Name, req.DisplayName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, household.ID, "CREATE_HOUSEHOLD", "household", household.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"household": household})
}

// JoinHousehold handles joining a household by invite code.
// @Summary     Join a household
// @Description Join an existing household using its invite code
// @Tags        households
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body JoinHouseholdRequest true "Invite code and display name"
// @Success     200 {object} models.Household "Household joined"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Invalid invite code"
// @Failure     409 {object} ErrorResponse "Already a member"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /households/join [post]
func (h *HouseholdHandler) JoinHousehold(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req JoinHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	household, err := h.householdService.JoinHousehold(userID, req.InviteCode, req.DisplayName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, household.ID, "JOIN_HOUSEHOLD", "household", household.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"household": household})
}

// GetContext resolves and returns the caller's active household context.
// @Summary     Get household context
// @Description Resolve the active household, membership, and the list of households for switching
// @Tags        households
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       household_id query string false "Explicitly requested household"
// @Success     200 {object} services.ResolvedHousehold "Resolved context"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User belongs to no household"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /context [get]
func (h *HouseholdHandler) GetContext(c *gin.Context) {
	resolved, err := resolveHousehold(c, h.householdService)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// SwitchHousehold persists the caller's preferred household in a cookie.
// @Summary     Switch active household
// @Description Persist the preferred household for subsequent requests
// @Tags        households
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SwitchHouseholdRequest true "Household to switch to"
// @Success     200 {object} services.ResolvedHousehold "New context"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not a member of the household"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /households/switch [post]
func (h *HouseholdHandler) SwitchHousehold(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SwitchHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.householdService.RequireMember(userID, req.HouseholdID); err != nil {
		respondWithError(c, err)
		return
	}

	const thirtyDays = 30 * 24 * 60 * 60
	c.SetCookie(householdCookie, req.HouseholdID, thirtyDays, "/", "", false, true)

	resolved, err := h.householdService.ResolveActive(userID, req.HouseholdID, "")
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// GetMembers lists the members of the active household.
// @Summary     List household members
// @Description List members of a household ordered by display name
// @Tags        households
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Household ID"
// @Success     200 {object} map[string][]models.Member "Members"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Household not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /households/{id}/members [get]
func (h *HouseholdHandler) GetMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	members, err := h.householdService.GetMembers(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// UpdateSettings updates the household display settings.
// @Summary     Update household settings
// @Description Update currency, locale, and cent display for a household
// @Tags        households
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Household ID"
// @Param       request body UpdateSettingsRequest true "New settings"
// @Success     200 {object} models.Household "Updated household"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Household not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /households/{id}/settings [put]
func (h *HouseholdHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	householdID := c.Param("id")
	household, err := h.householdService.UpdateSettings(userID, householdID, models.HouseholdSettings{
		Currency:  req.Currency,
		Locale:    req.Locale,
		ShowCents: req.ShowCents,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, householdID, "UPDATE_SETTINGS", "household", householdID, c.ClientIP(),
		map[string]interface{}{"currency": req.Currency, "locale": req.Locale})

	c.JSON(http.StatusOK, gin.H{"household": household})
}
