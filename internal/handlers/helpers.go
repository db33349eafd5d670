package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/dashboard"
	"hearth/internal/logger"
	"hearth/internal/services"
)

// householdCookie persists the user's preferred household between requests.
const householdCookie = "hearth_household"

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	return userID.(string), nil
}

// resolveHousehold determines the active household for this request.
// Precedence: explicit household_id query parameter, then the preference
// cookie, then the caller's first membership by join order.
func resolveHousehold(c *gin.Context, households services.HouseholdServicer) (*services.ResolvedHousehold, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	preferred, _ := c.Cookie(householdCookie)
	return households.ResolveActive(userID, c.Query("household_id"), preferred)
}

// monthOrCurrent returns the month query parameter, defaulting to the
// current calendar month.
func monthOrCurrent(c *gin.Context) string {
	if m := c.Query("month"); m != "" {
		return m
	}
	return time.Now().Format(dashboard.MonthKeyLayout)
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
