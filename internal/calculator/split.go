package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cent is the smallest money unit the ledger stores.
var Cent = decimal.New(1, -2)

// RemainderPolicy decides who absorbs the rounding remainder of an equal split.
type RemainderPolicy string

const (
	// RemainderToPayer adds the remainder to the payer's share when the payer
	// participates, otherwise to the first participant.
	RemainderToPayer RemainderPolicy = "payer"
	// RemainderToFirst adds the remainder to the first participant's share.
	RemainderToFirst RemainderPolicy = "first"
	// RemainderNone leaves the remainder unassigned, so shares may not sum to
	// the expense amount.
	RemainderNone RemainderPolicy = "none"
)

// ParseRemainderPolicy converts a configuration string into a policy.
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch p := RemainderPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case RemainderToPayer, RemainderToFirst, RemainderNone:
		return p, nil
	case "":
		return RemainderToPayer, nil
	default:
		return "", fmt.Errorf("unknown remainder policy %q", s)
	}
}

// Share is one participant's portion of an amount.
type Share struct {
	UserID string
	Amount decimal.Decimal
}

// Allocate divides amount evenly among participants.
//
// Each share is amount/len(participants) rounded half-up to cents. The
// difference between amount and the sum of rounded shares is then assigned
// according to policy. Duplicate participant IDs are collapsed keeping the
// first occurrence, and the returned shares follow that order.
func Allocate(amount decimal.Decimal, participants []string, payerID string, policy RemainderPolicy) ([]Share, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive, got %s", amount.StringFixed(2))
	}
	users := Unique(participants)
	if len(users) == 0 {
		return nil, fmt.Errorf("must have at least one participant")
	}

	count := decimal.NewFromInt(int64(len(users)))
	each := amount.Div(count).Round(2)
	if !each.IsPositive() {
		return nil, fmt.Errorf("amount %s is too small to split among %d participants", amount.StringFixed(2), len(users))
	}

	shares := make([]Share, len(users))
	for i, u := range users {
		shares[i] = Share{UserID: u, Amount: each}
	}

	remainder := amount.Sub(each.Mul(count))
	if remainder.IsZero() || policy == RemainderNone {
		return shares, nil
	}

	target := 0
	if policy == RemainderToPayer {
		for i, s := range shares {
			if s.UserID == payerID {
				target = i
				break
			}
		}
	}
	shares[target].Amount = shares[target].Amount.Add(remainder)
	if !shares[target].Amount.IsPositive() {
		return nil, fmt.Errorf("amount %s is too small to split among %d participants", amount.StringFixed(2), len(users))
	}

	return shares, nil
}

// Sum adds up share amounts.
func Sum(shares []Share) decimal.Decimal {
	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Amount)
	}
	return total
}

// Unique returns ids with blanks and repeats removed, preserving order.
func Unique(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
