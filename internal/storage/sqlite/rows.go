package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/dormshare/internal/models"
)

const (
	usersTable         = "users"
	householdsTable    = "households"
	expensesTable      = "expenses"
	splitsTable        = "splits"
	choresTable        = "chores"
	groceryItemsTable  = "grocery_items"
	guestLogsTable     = "guest_logs"
	announcementsTable = "announcements"
)

// Row types mirror table columns for goqu. Money is TEXT so decimals survive
// the round trip exactly; nullable foreign keys use sql.Null* so an empty ID
// is stored as NULL.

type userRow struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	DisplayName  string         `db:"display_name"`
	PasswordHash string         `db:"password_hash"`
	HouseholdID  sql.NullString `db:"household_id"`
	CreatedAt    int64          `db:"created_at"`
	UpdatedAt    int64          `db:"updated_at"`
}

func userToRow(u *models.User) userRow {
	return userRow{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		HouseholdID:  nullString(u.HouseholdID),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:           r.ID,
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		PasswordHash: r.PasswordHash,
		HouseholdID:  r.HouseholdID.String,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type householdRow struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	InviteCode string `db:"invite_code"`
	CreatedAt  int64  `db:"created_at"`
}

func (r householdRow) toModel() *models.Household {
	return &models.Household{
		ID:         r.ID,
		Name:       r.Name,
		InviteCode: r.InviteCode,
		CreatedAt:  r.CreatedAt,
	}
}

type expenseRow struct {
	ID          string `db:"id"`
	HouseholdID string `db:"household_id"`
	Title       string `db:"title"`
	Amount      string `db:"amount"`
	PaidBy      string `db:"paid_by"`
	PaidAt      int64  `db:"paid_at"`
	CreatedAt   int64  `db:"created_at"`
}

func expenseToRow(e *models.Expense) expenseRow {
	return expenseRow{
		ID:          e.ID,
		HouseholdID: e.HouseholdID,
		Title:       e.Title,
		Amount:      e.Amount.StringFixed(2),
		PaidBy:      e.PaidBy,
		PaidAt:      e.PaidAt,
		CreatedAt:   e.CreatedAt,
	}
}

func (r expenseRow) toModel() (*models.Expense, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q on expense %s: %w", r.Amount, r.ID, err)
	}
	return &models.Expense{
		ID:          r.ID,
		HouseholdID: r.HouseholdID,
		Title:       r.Title,
		Amount:      amount,
		PaidBy:      r.PaidBy,
		PaidAt:      r.PaidAt,
		CreatedAt:   r.CreatedAt,
	}, nil
}

type splitRow struct {
	ID         string         `db:"id"`
	ExpenseID  string         `db:"expense_id"`
	OwedBy     string         `db:"owed_by"`
	AmountOwed string         `db:"amount_owed"`
	IsSettled  bool           `db:"is_settled"`
	SettledAt  sql.NullInt64  `db:"settled_at"`
	SettledBy  sql.NullString `db:"settled_by"`
}

func splitToRow(s *models.Split) splitRow {
	return splitRow{
		ID:         s.ID,
		ExpenseID:  s.ExpenseID,
		OwedBy:     s.OwedBy,
		AmountOwed: s.AmountOwed.StringFixed(2),
		IsSettled:  s.IsSettled,
		SettledAt:  nullInt64(s.SettledAt),
		SettledBy:  nullString(s.SettledBy),
	}
}

func (r splitRow) toModel() (*models.Split, error) {
	amount, err := decimal.NewFromString(r.AmountOwed)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q on split %s: %w", r.AmountOwed, r.ID, err)
	}
	return &models.Split{
		ID:         r.ID,
		ExpenseID:  r.ExpenseID,
		OwedBy:     r.OwedBy,
		AmountOwed: amount,
		IsSettled:  r.IsSettled,
		SettledAt:  r.SettledAt.Int64,
		SettledBy:  r.SettledBy.String,
	}, nil
}

// splitLineRow is the flattened splits ⨝ expenses projection.
type splitLineRow struct {
	ID           string         `db:"id"`
	ExpenseID    string         `db:"expense_id"`
	OwedBy       string         `db:"owed_by"`
	AmountOwed   string         `db:"amount_owed"`
	IsSettled    bool           `db:"is_settled"`
	SettledAt    sql.NullInt64  `db:"settled_at"`
	SettledBy    sql.NullString `db:"settled_by"`
	HouseholdID  string         `db:"household_id"`
	ExpenseTitle string         `db:"expense_title"`
	PaidBy       string         `db:"paid_by"`
	PaidAt       int64          `db:"paid_at"`
}

func (r splitLineRow) toModel() (*models.SplitLine, error) {
	split, err := splitRow{
		ID:         r.ID,
		ExpenseID:  r.ExpenseID,
		OwedBy:     r.OwedBy,
		AmountOwed: r.AmountOwed,
		IsSettled:  r.IsSettled,
		SettledAt:  r.SettledAt,
		SettledBy:  r.SettledBy,
	}.toModel()
	if err != nil {
		return nil, err
	}
	return &models.SplitLine{
		Split:        *split,
		HouseholdID:  r.HouseholdID,
		ExpenseTitle: r.ExpenseTitle,
		PaidBy:       r.PaidBy,
		PaidAt:       r.PaidAt,
	}, nil
}

type choreRow struct {
	ID          string         `db:"id"`
	HouseholdID string         `db:"household_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	AssignedTo  sql.NullString `db:"assigned_to"`
	CreatedBy   sql.NullString `db:"created_by"`
	DueDate     int64          `db:"due_date"`
	IsCompleted bool           `db:"is_completed"`
	CreatedAt   int64          `db:"created_at"`
}

func choreToRow(c *models.Chore) choreRow {
	return choreRow{
		ID:          c.ID,
		HouseholdID: c.HouseholdID,
		Title:       c.Title,
		Description: c.Description,
		AssignedTo:  nullString(c.AssignedTo),
		CreatedBy:   nullString(c.CreatedBy),
		DueDate:     c.DueDate,
		IsCompleted: c.IsCompleted,
		CreatedAt:   c.CreatedAt,
	}
}

func (r choreRow) toModel() *models.Chore {
	return &models.Chore{
		ID:          r.ID,
		HouseholdID: r.HouseholdID,
		Title:       r.Title,
		Description: r.Description,
		AssignedTo:  r.AssignedTo.String,
		CreatedBy:   r.CreatedBy.String,
		DueDate:     r.DueDate,
		IsCompleted: r.IsCompleted,
		CreatedAt:   r.CreatedAt,
	}
}

type groceryItemRow struct {
	ID          string         `db:"id"`
	HouseholdID string         `db:"household_id"`
	ItemName    string         `db:"item_name"`
	Quantity    string         `db:"quantity"`
	AddedBy     sql.NullString `db:"added_by"`
	IsPurchased bool           `db:"is_purchased"`
	CreatedAt   int64          `db:"created_at"`
}

func groceryItemToRow(g *models.GroceryItem) groceryItemRow {
	return groceryItemRow{
		ID:          g.ID,
		HouseholdID: g.HouseholdID,
		ItemName:    g.ItemName,
		Quantity:    g.Quantity,
		AddedBy:     nullString(g.AddedBy),
		IsPurchased: g.IsPurchased,
		CreatedAt:   g.CreatedAt,
	}
}

func (r groceryItemRow) toModel() *models.GroceryItem {
	return &models.GroceryItem{
		ID:          r.ID,
		HouseholdID: r.HouseholdID,
		ItemName:    r.ItemName,
		Quantity:    r.Quantity,
		AddedBy:     r.AddedBy.String,
		IsPurchased: r.IsPurchased,
		CreatedAt:   r.CreatedAt,
	}
}

type guestLogRow struct {
	ID          string `db:"id"`
	HouseholdID string `db:"household_id"`
	GuestName   string `db:"guest_name"`
	HostedBy    string `db:"hosted_by"`
	ArrivalAt   int64  `db:"arrival_at"`
	DepartureAt int64  `db:"departure_at"`
}

func (r guestLogRow) toModel() *models.GuestLog {
	return &models.GuestLog{
		ID:          r.ID,
		HouseholdID: r.HouseholdID,
		GuestName:   r.GuestName,
		HostedBy:    r.HostedBy,
		ArrivalAt:   r.ArrivalAt,
		DepartureAt: r.DepartureAt,
	}
}

type announcementRow struct {
	ID          string         `db:"id"`
	HouseholdID string         `db:"household_id"`
	Title       string         `db:"title"`
	Message     string         `db:"message"`
	PostedBy    sql.NullString `db:"posted_by"`
	CreatedAt   int64          `db:"created_at"`
	UpdatedAt   int64          `db:"updated_at"`
}

func (r announcementRow) toModel() *models.Announcement {
	return &models.Announcement{
		ID:          r.ID,
		HouseholdID: r.HouseholdID,
		Title:       r.Title,
		Message:     r.Message,
		PostedBy:    r.PostedBy.String,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: n != 0}
}
