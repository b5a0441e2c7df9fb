package calculator

import "github.com/shopspring/decimal"

// Entry is the minimal view of a split needed for balance calculations.
type Entry struct {
	PaidBy    string // payer of the parent expense
	OwedBy    string // participant who owes the share
	Amount    decimal.Decimal
	IsSettled bool
}

// Balance is one user's position across unsettled splits.
type Balance struct {
	UserID string

	// OwedToUser is what others still owe on expenses the user paid.
	OwedToUser decimal.Decimal

	// OwedByUser is what the user still owes on expenses others paid.
	OwedByUser decimal.Decimal

	// Net is OwedToUser - OwedByUser. Positive means net creditor.
	Net decimal.Decimal
}

// NetBalance aggregates entries into userID's balance.
//
// Settled entries are ignored. An entry where the payer and the ower are the
// same user is a payer's own share and never counts on either side.
func NetBalance(userID string, entries []Entry) Balance {
	b := Balance{
		UserID:     userID,
		OwedToUser: decimal.Zero,
		OwedByUser: decimal.Zero,
	}

	for _, e := range entries {
		if e.IsSettled || e.PaidBy == e.OwedBy {
			continue
		}
		switch userID {
		case e.PaidBy:
			b.OwedToUser = b.OwedToUser.Add(e.Amount)
		case e.OwedBy:
			b.OwedByUser = b.OwedByUser.Add(e.Amount)
		}
	}

	b.Net = b.OwedToUser.Sub(b.OwedByUser)
	return b
}

// Settled reports whether the balance nets to zero.
func (b Balance) Settled() bool {
	return b.Net.IsZero()
}
