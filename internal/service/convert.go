package service

import (
	"github.com/mmynk/dormshare/internal/calculator"
	"github.com/mmynk/dormshare/internal/ledger"
	"github.com/mmynk/dormshare/internal/models"
	"github.com/mmynk/dormshare/pkg/api"
)

func toUser(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.Name(),
		HouseholdID: u.HouseholdID,
		CreatedAt:   u.CreatedAt,
	}
}

func toUsers(users []*models.User) []*api.User {
	out := make([]*api.User, len(users))
	for i, u := range users {
		out[i] = toUser(u)
	}
	return out
}

func toHousehold(h *models.Household) *api.Household {
	return &api.Household{
		ID:         h.ID,
		Name:       h.Name,
		InviteCode: h.InviteCode,
		CreatedAt:  h.CreatedAt,
	}
}

func toExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		ID:          e.ID,
		HouseholdID: e.HouseholdID,
		Title:       e.Title,
		Amount:      e.Amount.StringFixed(2),
		PaidBy:      e.PaidBy,
		PaidAt:      e.PaidAt,
		CreatedAt:   e.CreatedAt,
	}
}

func toExpenses(expenses []*models.Expense) []*api.Expense {
	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toExpense(e)
	}
	return out
}

func toSplit(s *models.Split) *api.Split {
	return &api.Split{
		ID:         s.ID,
		ExpenseID:  s.ExpenseID,
		OwedBy:     s.OwedBy,
		AmountOwed: s.AmountOwed.StringFixed(2),
		IsSettled:  s.IsSettled,
		SettledAt:  s.SettledAt,
		SettledBy:  s.SettledBy,
	}
}

func toSplits(splits []*models.Split) []*api.Split {
	out := make([]*api.Split, len(splits))
	for i, s := range splits {
		out[i] = toSplit(s)
	}
	return out
}

func toSplitLines(lines []*models.SplitLine) []*api.SplitLine {
	out := make([]*api.SplitLine, len(lines))
	for i, l := range lines {
		out[i] = &api.SplitLine{
			Split:        *toSplit(&l.Split),
			ExpenseTitle: l.ExpenseTitle,
			PaidBy:       l.PaidBy,
			PaidAt:       l.PaidAt,
		}
	}
	return out
}

func toBalance(b calculator.Balance) *api.Balance {
	return &api.Balance{
		OwedToYou: b.OwedToUser.StringFixed(2),
		YouOwe:    b.OwedByUser.StringFixed(2),
		Net:       b.Net.StringFixed(2),
		Message:   ledger.BalanceMessage(b.Net),
	}
}

func toChores(chores []*models.Chore) []*api.Chore {
	out := make([]*api.Chore, len(chores))
	for i, c := range chores {
		out[i] = toChore(c)
	}
	return out
}

func toChore(c *models.Chore) *api.Chore {
	return &api.Chore{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		AssignedTo:  c.AssignedTo,
		CreatedBy:   c.CreatedBy,
		DueDate:     c.DueDate,
		IsCompleted: c.IsCompleted,
		CreatedAt:   c.CreatedAt,
	}
}

func toGroceryItem(g *models.GroceryItem) *api.GroceryItem {
	return &api.GroceryItem{
		ID:          g.ID,
		ItemName:    g.ItemName,
		Quantity:    g.Quantity,
		AddedBy:     g.AddedBy,
		IsPurchased: g.IsPurchased,
		CreatedAt:   g.CreatedAt,
	}
}

func toGuest(g *models.GuestLog) *api.Guest {
	return &api.Guest{
		ID:          g.ID,
		GuestName:   g.GuestName,
		HostedBy:    g.HostedBy,
		ArrivalAt:   g.ArrivalAt,
		DepartureAt: g.DepartureAt,
	}
}

func toAnnouncement(a *models.Announcement) *api.Announcement {
	return &api.Announcement{
		ID:        a.ID,
		Title:     a.Title,
		Message:   a.Message,
		PostedBy:  a.PostedBy,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
