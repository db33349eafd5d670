package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db         *gorm.DB
	households HouseholdServicer
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB, households HouseholdServicer) AccountServicer {
	return &accountService{db: db, households: households}
}

// CreateAccount creates an account in the household.
func (s *accountService) CreateAccount(
	userID, householdID, name string,
	accountType models.AccountType,
	isShared bool,
	initialBalance int64,
	ownerID *string,
) (*models.Account, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if _, err := s.households.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	account := &models.Account{
		HouseholdID:    householdID,
		Name:           name,
		Type:           accountType,
		IsShared:       isShared,
		InitialBalance: initialBalance,
		OwnerID:        ownerID,
	}
	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// GetHouseholdAccounts lists a household's accounts with derived balances.
// The balance is computed, never stored: initial_balance plus the sum of
// transaction amounts on the account.
func (s *accountService) GetHouseholdAccounts(userID, householdID string) ([]AccountWithBalance, error) {
	if _, err := s.households.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err := s.db.Where("household_id = ?", householdID).
		Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := make([]AccountWithBalance, 0, len(accounts))
	for _, account := range accounts {
		var sum int64
		err := s.db.Model(&models.Transaction{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("account_id = ?", account.ID).
			Scan(&sum).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result = append(result, AccountWithBalance{
			Account: account,
			Balance: account.InitialBalance + sum,
		})
	}
	return result, nil
}

// GetAccountByID returns an account if the caller belongs to its household.
func (s *accountService) GetAccountByID(userID, accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if _, err := s.households.RequireMember(userID, account.HouseholdID); err != nil {
		return nil, apperrors.ErrAccountNotFound
	}
	return &account, nil
}
