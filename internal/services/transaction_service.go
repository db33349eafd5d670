package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db         *gorm.DB
	households HouseholdServicer
	accounts   AccountServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, households HouseholdServicer, accounts AccountServicer) TransactionServicer {
	return &transactionService{db: db, households: households, accounts: accounts}
}

// CreateTransaction records an entry against an account and category. The
// stored amount is signed to match the category type — negative for expense
// categories, positive for income — regardless of the sign the caller sent.
func (s *transactionService) CreateTransaction(
	userID, householdID, accountID, categoryID, memberID string,
	amount int64,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if amount == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be non-zero")
	}
	if _, err := s.households.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetAccountByID(userID, accountID)
	if err != nil {
		return nil, err
	}
	if account.HouseholdID != householdID {
		return nil, apperrors.ErrAccountNotFound
	}

	var category models.Category
	if err := s.db.Where("id = ? AND household_id = ?", categoryID, householdID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var member models.Member
	if err := s.db.Where("id = ? AND household_id = ?", memberID, householdID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		HouseholdID: householdID,
		AccountID:   accountID,
		CategoryID:  &category.ID,
		MemberID:    memberID,
		Amount:      signedAmount(amount, category.Type),
		Description: description,
		Date:        date,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	transaction.Category = &category
	return transaction, nil
}

// signedAmount forces the sign convention at the write boundary: expense
// categories store negative amounts, income categories positive.
func signedAmount(amount int64, categoryType models.CategoryType) int64 {
	if amount < 0 {
		amount = -amount
	}
	if categoryType == models.CategoryTypeExpense {
		return -amount
	}
	return amount
}

// GetHouseholdTransactions retrieves a paginated, filtered list of the
// household's transactions with category, member, and account joins
// resolved, newest first.
func (s *transactionService) GetHouseholdTransactions(
	userID, householdID string,
	page pagination.PageRequest,
	filter TransactionFilter,
) (*pagination.PageResponse[models.Transaction], error) {
	if _, err := s.households.RequireMember(userID, householdID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("household_id = ?", householdID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Preload("Category").Preload("Member").Preload("Account").
		Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date < ?", *f.ToDate)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.MemberID != nil {
		q = q.Where("member_id = ?", *f.MemberID)
	}
	if f.AccountID != nil {
		q = q.Where("account_id = ?", *f.AccountID)
	}
	return q
}

// GetTransactionByID retrieves a transaction if the caller belongs to its household.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Category").First(&transaction, "id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if _, err := s.households.RequireMember(userID, transaction.HouseholdID); err != nil {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction. Account balances are derived, so
// no balance bookkeeping is needed.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
