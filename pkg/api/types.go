package api

// User is a registered account as shown to household members.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	HouseholdID string `json:"householdId,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// Household is a group of roommates.
type Household struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	InviteCode string `json:"inviteCode"`
	CreatedAt  int64  `json:"createdAt"`
}

// Expense is a shared cost paid by one member.
type Expense struct {
	ID          string `json:"id"`
	HouseholdID string `json:"householdId"`
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	PaidBy      string `json:"paidBy"`
	PaidAt      int64  `json:"paidAt"`
	CreatedAt   int64  `json:"createdAt"`
}

// Split is one participant's share of an expense.
type Split struct {
	ID         string `json:"id"`
	ExpenseID  string `json:"expenseId"`
	OwedBy     string `json:"owedBy"`
	AmountOwed string `json:"amountOwed"`
	IsSettled  bool   `json:"isSettled"`
	SettledAt  int64  `json:"settledAt,omitempty"`
	SettledBy  string `json:"settledBy,omitempty"`
}

// SplitLine is a split with the parent expense details needed to display it.
type SplitLine struct {
	Split
	ExpenseTitle string `json:"expenseTitle"`
	PaidBy       string `json:"paidBy"`
	PaidAt       int64  `json:"paidAt"`
}

// Balance is the caller's net position across unsettled splits.
type Balance struct {
	OwedToYou string `json:"owedToYou"`
	YouOwe    string `json:"youOwe"`
	Net       string `json:"net"`
	Message   string `json:"message"`
}

// Chore is a household task.
type Chore struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assignedTo,omitempty"`
	CreatedBy   string `json:"createdBy,omitempty"`
	DueDate     int64  `json:"dueDate"`
	IsCompleted bool   `json:"isCompleted"`
	CreatedAt   int64  `json:"createdAt"`
}

// GroceryItem is an entry on the shopping list.
type GroceryItem struct {
	ID          string `json:"id"`
	ItemName    string `json:"itemName"`
	Quantity    string `json:"quantity,omitempty"`
	AddedBy     string `json:"addedBy,omitempty"`
	IsPurchased bool   `json:"isPurchased"`
	CreatedAt   int64  `json:"createdAt"`
}

// Guest is a logged visit.
type Guest struct {
	ID          string `json:"id"`
	GuestName   string `json:"guestName"`
	HostedBy    string `json:"hostedBy"`
	ArrivalAt   int64  `json:"arrivalAt"`
	DepartureAt int64  `json:"departureAt"`
}

// Announcement is a message to the whole household.
type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	PostedBy  string `json:"postedBy,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}
