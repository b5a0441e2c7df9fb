package api

type CreateChoreRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assignedTo,omitempty"`
	// DueDate is any Unix time on the due day.
	DueDate int64 `json:"dueDate"`
}

type CreateChoreResponse struct {
	Chore *Chore `json:"chore"`
}

type ListChoresRequest struct {
	// Mine restricts the list to chores assigned to the caller.
	Mine bool `json:"mine,omitempty"`
}

type ListChoresResponse struct {
	Chores []*Chore `json:"chores"`
}

type CompleteChoreRequest struct {
	ChoreID string `json:"choreId"`
}

type CompleteChoreResponse struct {
	Chore *Chore `json:"chore"`
}

type AddGroceryItemRequest struct {
	ItemName string `json:"itemName"`
	Quantity string `json:"quantity,omitempty"`
}

type AddGroceryItemResponse struct {
	Item *GroceryItem `json:"item"`
}

type ListGroceryItemsRequest struct{}

type ListGroceryItemsResponse struct {
	Items []*GroceryItem `json:"items"`
}

type MarkGroceryPurchasedRequest struct {
	ItemID string `json:"itemId"`
}

type MarkGroceryPurchasedResponse struct{}

type RemoveGroceryItemRequest struct {
	ItemID string `json:"itemId"`
}

type RemoveGroceryItemResponse struct{}

type LogGuestRequest struct {
	GuestName   string `json:"guestName"`
	ArrivalAt   int64  `json:"arrivalAt"`
	DepartureAt int64  `json:"departureAt"`
}

type LogGuestResponse struct {
	Guest *Guest `json:"guest"`
}

type ListUpcomingGuestsRequest struct{}

type ListUpcomingGuestsResponse struct {
	Guests []*Guest `json:"guests"`
}

type UpdateGuestRequest struct {
	GuestID     string `json:"guestId"`
	GuestName   string `json:"guestName"`
	ArrivalAt   int64  `json:"arrivalAt"`
	DepartureAt int64  `json:"departureAt"`
}

type UpdateGuestResponse struct {
	Guest *Guest `json:"guest"`
}

type PostAnnouncementRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type PostAnnouncementResponse struct {
	Announcement *Announcement `json:"announcement"`
}

type ListAnnouncementsRequest struct {
	Limit int `json:"limit,omitempty"`
}

type ListAnnouncementsResponse struct {
	Announcements []*Announcement `json:"announcements"`
}

type UpdateAnnouncementRequest struct {
	AnnouncementID string `json:"announcementId"`
	Title          string `json:"title"`
	Message        string `json:"message"`
}

type UpdateAnnouncementResponse struct {
	Announcement *Announcement `json:"announcement"`
}

type DeleteAnnouncementRequest struct {
	AnnouncementID string `json:"announcementId"`
}

type DeleteAnnouncementResponse struct{}
