package api

type RecordExpenseRequest struct {
	Title          string   `json:"title"`
	Amount         string   `json:"amount"`
	ParticipantIDs []string `json:"participantIds"`
}

type RecordExpenseResponse struct {
	Expense *Expense `json:"expense"`
	Splits  []*Split `json:"splits"`
}

type GetExpenseRequest struct {
	ExpenseID string `json:"expenseId"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
	Splits  []*Split `json:"splits"`
}

type ListExpensesRequest struct {
	// Limit caps the result; zero returns every expense.
	Limit int `json:"limit,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type SettleSplitRequest struct {
	SplitID string `json:"splitId"`
}

type SettleSplitResponse struct {
	Split *Split `json:"split"`
}

type GetBalanceRequest struct{}

type GetBalanceResponse struct {
	Balance *Balance `json:"balance"`
}

type GetOverviewRequest struct{}

type GetOverviewResponse struct {
	Balance   *Balance     `json:"balance"`
	TotalPaid string       `json:"totalPaid"`
	Debts     []*SplitLine `json:"debts"`
	Credits   []*SplitLine `json:"credits"`
	Settled   []*SplitLine `json:"settled"`
}
