package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/invite"
	"hearth/internal/models"
)

// inviteCodeRetries is how many times household creation re-rolls the invite
// code after a unique-constraint conflict. With a 32^8 keyspace a single
// retry is already rare.
const inviteCodeRetries = 3

// defaultCategories is the set seeded into every new household.
var defaultCategories = []models.Category{
	{Name: "Groceries", Type: models.CategoryTypeExpense, Icon: "shopping-cart", Color: "#22c55e", IsDefault: true},
	{Name: "Housing", Type: models.CategoryTypeExpense, Icon: "home", Color: "#3b82f6", IsDefault: true},
	{Name: "Utilities", Type: models.CategoryTypeExpense, Icon: "zap", Color: "#eab308", IsDefault: true},
	{Name: "Transport", Type: models.CategoryTypeExpense, Icon: "car", Color: "#f97316", IsDefault: true},
	{Name: "Dining Out", Type: models.CategoryTypeExpense, Icon: "utensils", Color: "#ef4444", IsDefault: true},
	{Name: "Entertainment", Type: models.CategoryTypeExpense, Icon: "film", Color: "#a855f7", IsDefault: true},
	{Name: "Health", Type: models.CategoryTypeExpense, Icon: "heart", Color: "#ec4899", IsDefault: true},
	{Name: "Other", Type: models.CategoryTypeExpense, Icon: "more-horizontal", Color: "#6b7280", IsDefault: true},
	{Name: "Salary", Type: models.CategoryTypeIncome, Icon: "briefcase", Color: "#14b8a6", IsDefault: true},
	{Name: "Other Income", Type: models.CategoryTypeIncome, Icon: "plus-circle", Color: "#64748b", IsDefault: true},
}

// householdService handles household lifecycle and membership resolution.
type householdService struct {
	db *gorm.DB
}

// NewHouseholdService creates a new HouseholdServicer.
func NewHouseholdService(db *gorm.DB) HouseholdServicer {
	return &householdService{db: db}
}

// CreateHousehold creates a household with the caller as owner and seeds the
// default categories. All three writes commit in one transaction, so a
// household can never exist without its owner membership or default set.
func (s *householdService) CreateHousehold(userID, name, displayName string) (*models.Household, error) {
	if name == "" || displayName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "household name and display name are required")
	}

	var created *models.Household
	var lastErr error
	for attempt := 0; attempt <= inviteCodeRetries; attempt++ {
		code, err := invite.NewCode()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		household := &models.Household{
			Name:       name,
			InviteCode: code,
			Settings:   models.HouseholdSettings{Currency: "EUR", Locale: "de-DE", ShowCents: true},
		}

		lastErr = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(household).Error; err != nil {
				return err
			}

			owner := &models.Member{
				HouseholdID: household.ID,
				UserID:      userID,
				DisplayName: displayName,
				Role:        models.RoleOwner,
			}
			if err := tx.Create(owner).Error; err != nil {
				return err
			}

			return seedDefaultCategories(tx, household.ID)
		})
		if lastErr == nil {
			created = household
			break
		}
		if !errors.Is(lastErr, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, lastErr)
		}
		// Invite code collision: roll a new code and retry.
	}
	if created == nil {
		return nil, apperrors.Wrap(apperrors.ErrInviteCodeConflict, lastErr)
	}
	return created, nil
}

// JoinHousehold resolves a user-supplied invite code to a household and adds
// the caller as a member. The code comparison is case-insensitive; a
// duplicate membership surfaces as ErrAlreadyMember, never as a generic
// store failure.
func (s *householdService) JoinHousehold(userID, inviteCode, displayName string) (*models.Household, error) {
	code := invite.Normalize(inviteCode)
	if code == "" || displayName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invite code and display name are required")
	}

	var household models.Household
	if err := s.db.Where("invite_code = ?", code).First(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidInviteCode
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	member := &models.Member{
		HouseholdID: household.ID,
		UserID:      userID,
		DisplayName: displayName,
		Role:        models.RoleMember,
	}
	if err := s.db.Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &household, nil
}

// ResolveActive determines which of the caller's households is active for
// this request. Precedence: explicit request parameter, then persisted
// preference, then the first membership by join order. A hint that does not
// match any membership is silently ignored, never an error.
func (s *householdService) ResolveActive(userID, requestedID, preferredID string) (*ResolvedHousehold, error) {
	var memberships []models.Member
	if err := s.db.Preload("Household").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&memberships).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(memberships) == 0 {
		return nil, apperrors.ErrNoHousehold
	}

	active := &memberships[0]
	for _, hint := range []string{requestedID, preferredID} {
		if hint == "" {
			continue
		}
		if m := findMembership(memberships, hint); m != nil {
			active = m
			break
		}
	}

	households := make([]models.Household, 0, len(memberships))
	for _, m := range memberships {
		if m.Household != nil {
			households = append(households, *m.Household)
		}
	}

	return &ResolvedHousehold{
		Household:   active.Household,
		Member:      active,
		Memberships: memberships,
		Households:  households,
	}, nil
}

func findMembership(memberships []models.Member, householdID string) *models.Member {
	for i := range memberships {
		if memberships[i].HouseholdID == householdID {
			return &memberships[i]
		}
	}
	return nil
}

// RequireMember returns the caller's membership in the household, or
// ErrHouseholdNotFound. Every household-scoped read and write goes through
// this check.
func (s *householdService) RequireMember(userID, householdID string) (*models.Member, error) {
	var member models.Member
	if err := s.db.Where("household_id = ? AND user_id = ?", householdID, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHouseholdNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &member, nil
}

// GetMembers lists a household's members ordered by display name.
func (s *householdService) GetMembers(userID, householdID string) ([]models.Member, error) {
	if _, err := s.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	var members []models.Member
	if err := s.db.Where("household_id = ?", householdID).
		Order("display_name ASC").
		Find(&members).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return members, nil
}

// UpdateSettings replaces the household's display settings.
func (s *householdService) UpdateSettings(userID, householdID string, settings models.HouseholdSettings) (*models.Household, error) {
	if _, err := s.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	var household models.Household
	if err := s.db.First(&household, "id = ?", householdID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHouseholdNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&household).Updates(map[string]interface{}{
		"settings_currency":   settings.Currency,
		"settings_locale":     settings.Locale,
		"settings_show_cents": settings.ShowCents,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	household.Settings = settings
	return &household, nil
}

func seedDefaultCategories(tx *gorm.DB, householdID string) error {
	for _, c := range defaultCategories {
		category := c
		category.HouseholdID = householdID
		if err := tx.Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
