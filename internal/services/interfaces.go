package services

import (
	"time"

	"hearth/internal/dashboard"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// ResolvedHousehold is the outcome of active-household resolution: the chosen
// household and membership, plus the caller's full ordered membership list
// for household-switching UI.
type ResolvedHousehold struct {
	Household   *models.Household  `json:"household"`
	Member      *models.Member     `json:"member"`
	Memberships []models.Member    `json:"memberships"`
	Households  []models.Household `json:"households"`
}

// HouseholdServicer defines the contract for household lifecycle, membership
// resolution, and the invite/join workflow.
type HouseholdServicer interface {
	CreateHousehold(userID, name, displayName string) (*models.Household, error)
	JoinHousehold(userID, inviteCode, displayName string) (*models.Household, error)
	ResolveActive(userID, requestedID, preferredID string) (*ResolvedHousehold, error)
	RequireMember(userID, householdID string) (*models.Member, error)
	GetMembers(userID, householdID string) ([]models.Member, error)
	UpdateSettings(userID, householdID string, settings models.HouseholdSettings) (*models.Household, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	GetHouseholdCategories(userID, householdID string) ([]models.Category, error)
	UpdateCategory(userID, categoryID, name, icon, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// AccountWithBalance pairs an account with its derived current balance:
// initial balance plus the sum of all transaction amounts on the account.
type AccountWithBalance struct {
	models.Account
	Balance int64 `json:"balance"`
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(userID, householdID, name string, accountType models.AccountType, isShared bool, initialBalance int64, ownerID *string) (*models.Account, error)
	GetHouseholdAccounts(userID, householdID string) ([]AccountWithBalance, error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	CategoryID *string
	MemberID   *string
	AccountID  *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID, householdID, accountID, categoryID, memberID string, amount int64, description string, date time.Time) (*models.Transaction, error)
	GetHouseholdTransactions(userID, householdID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	UpsertBudget(userID, householdID, categoryID, month string, amount int64) (*models.Budget, error)
	GetMonthBudgets(userID, householdID, month string) ([]models.Budget, error)
}

// DashboardView bundles every derived view the dashboard renders for one
// household and month, computed from a single snapshot of rows.
type DashboardView struct {
	Month              string                      `json:"month"`
	Overview           dashboard.Overview          `json:"overview"`
	CategorySpending   []dashboard.CategorySpending `json:"category_spending"`
	TopSpending        []dashboard.CategorySpending `json:"top_spending"`
	Trend              []dashboard.TrendPoint      `json:"trend"`
	Stats              dashboard.Stats             `json:"stats"`
	RecentTransactions []models.Transaction        `json:"recent_transactions"`
}

// DashboardServicer defines the contract for assembling dashboard views.
type DashboardServicer interface {
	GetDashboard(userID, householdID, month string) (*DashboardView, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, householdID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
