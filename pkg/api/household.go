package api

type CreateHouseholdRequest struct {
	Name string `json:"name"`
}

type CreateHouseholdResponse struct {
	Household *Household `json:"household"`
}

type JoinHouseholdRequest struct {
	InviteCode string `json:"inviteCode"`
}

type JoinHouseholdResponse struct {
	Household *Household `json:"household"`
}

type LeaveHouseholdRequest struct{}

type LeaveHouseholdResponse struct{}

type GetHouseholdRequest struct{}

// GetHouseholdResponse has a nil Household when the caller has not joined one.
type GetHouseholdResponse struct {
	Household *Household `json:"household,omitempty"`
	Members   []*User    `json:"members"`
}

type RenameHouseholdRequest struct {
	Name string `json:"name"`
}

type RenameHouseholdResponse struct {
	Household *Household `json:"household"`
}

type GetDashboardRequest struct{}

// GetDashboardResponse is the home screen.
type GetDashboardResponse struct {
	MyPendingChores    []*Chore      `json:"myPendingChores"`
	MyUnsettledDebts   []*SplitLine  `json:"myUnsettledDebts"`
	PendingChoreCount  int           `json:"pendingChoreCount"`
	GroceryItemCount   int           `json:"groceryItemCount"`
	UpcomingChores     []*Chore      `json:"upcomingChores"`
	RecentExpenses     []*Expense    `json:"recentExpenses"`
	LatestAnnouncement *Announcement `json:"latestAnnouncement,omitempty"`
	Balance            *Balance      `json:"balance"`
}
