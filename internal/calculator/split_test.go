package calculator

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amounts(shares []Share) []string {
	out := make([]string, len(shares))
	for i, s := range shares {
		out[i] = s.Amount.StringFixed(2)
	}
	return out
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		participants []string
		payer        string
		policy       RemainderPolicy
		want         []string
		wantErr      bool
	}{
		{
			name:         "even three-way split",
			amount:       "900.00",
			participants: []string{"alice", "bob", "carol"},
			payer:        "alice",
			policy:       RemainderToPayer,
			want:         []string{"300.00", "300.00", "300.00"},
		},
		{
			name:         "uneven split keeps discrepancy",
			amount:       "100.00",
			participants: []string{"alice", "bob", "carol"},
			payer:        "alice",
			policy:       RemainderNone,
			want:         []string{"33.33", "33.33", "33.33"},
		},
		{
			name:         "uneven split remainder to payer",
			amount:       "100.00",
			participants: []string{"bob", "alice", "carol"},
			payer:        "alice",
			policy:       RemainderToPayer,
			want:         []string{"33.33", "33.34", "33.33"},
		},
		{
			name:         "payer not participating falls back to first",
			amount:       "100.00",
			participants: []string{"bob", "carol", "dave"},
			payer:        "alice",
			policy:       RemainderToPayer,
			want:         []string{"33.34", "33.33", "33.33"},
		},
		{
			name:         "remainder to first",
			amount:       "100.00",
			participants: []string{"bob", "alice", "carol"},
			payer:        "alice",
			policy:       RemainderToFirst,
			want:         []string{"33.34", "33.33", "33.33"},
		},
		{
			name:         "round half up overshoots and is pulled back",
			amount:       "200.00",
			participants: []string{"alice", "bob", "carol"},
			payer:        "carol",
			policy:       RemainderToPayer,
			want:         []string{"66.67", "66.67", "66.66"},
		},
		{
			name:         "single participant gets everything",
			amount:       "12.34",
			participants: []string{"alice"},
			policy:       RemainderToPayer,
			want:         []string{"12.34"},
		},
		{
			name:         "duplicates collapse",
			amount:       "10.00",
			participants: []string{"alice", "bob", "alice"},
			policy:       RemainderNone,
			want:         []string{"5.00", "5.00"},
		},
		{
			name:         "zero amount",
			amount:       "0.00",
			participants: []string{"alice"},
			wantErr:      true,
		},
		{
			name:         "negative amount",
			amount:       "-5.00",
			participants: []string{"alice"},
			wantErr:      true,
		},
		{
			name:    "no participants",
			amount:  "5.00",
			wantErr: true,
		},
		{
			name:         "share rounds to zero",
			amount:       "0.01",
			participants: []string{"alice", "bob", "carol"},
			wantErr:      true,
		},
		{
			name:         "remainder would empty the share",
			amount:       "0.02",
			participants: []string{"alice", "bob", "carol"},
			policy:       RemainderToFirst,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Allocate(dec(tt.amount), tt.participants, tt.payer, tt.policy)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, amounts(shares))
		})
	}
}

func TestAllocate_PreservesParticipantOrder(t *testing.T) {
	shares, err := Allocate(dec("30.00"), []string{"carol", "alice", "bob"}, "", RemainderNone)
	require.NoError(t, err)

	ids := make([]string, len(shares))
	for i, s := range shares {
		ids[i] = s.UserID
	}
	assert.Equal(t, []string{"carol", "alice", "bob"}, ids)
}

func TestAllocate_SumBounds(t *testing.T) {
	participants := []string{"a", "b", "c", "d", "e", "f", "g"}
	cent := dec("0.01")

	for cents := int64(1); cents <= 2500; cents += 7 {
		amount := decimal.New(cents, -2)
		for n := 1; n <= len(participants); n++ {
			users := participants[:n]
			if amount.LessThan(cent.Mul(decimal.NewFromInt(int64(n)))) {
				continue
			}

			t.Run(fmt.Sprintf("%s/%d", amount.StringFixed(2), n), func(t *testing.T) {
				loose, err := Allocate(amount, users, "a", RemainderNone)
				require.NoError(t, err)
				diff := Sum(loose).Sub(amount).Abs()
				bound := cent.Mul(decimal.NewFromInt(int64(n - 1)))
				assert.True(t, diff.LessThanOrEqual(bound), "diff %s exceeds %s", diff, bound)

				exact, err := Allocate(amount, users, "a", RemainderToPayer)
				if err != nil {
					// Only tiny amounts can fail once the remainder is applied.
					limit := cent.Mul(decimal.NewFromInt(int64(n * (n - 1) / 2)))
					assert.True(t, amount.LessThanOrEqual(limit), "%s failed: %v", amount, err)
					return
				}
				assert.True(t, Sum(exact).Equal(amount), "sum %s != %s", Sum(exact), amount)
				for _, s := range exact {
					assert.True(t, s.Amount.IsPositive())
					assert.True(t, s.Amount.Equal(s.Amount.Round(2)))
				}
			})
		}
	}
}

func TestParseRemainderPolicy(t *testing.T) {
	for in, want := range map[string]RemainderPolicy{
		"":       RemainderToPayer,
		"payer":  RemainderToPayer,
		" FIRST": RemainderToFirst,
		"none":   RemainderNone,
	} {
		got, err := ParseRemainderPolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRemainderPolicy("random")
	assert.Error(t, err)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Unique([]string{"a", "", "b", "a"}))
	assert.Empty(t, Unique(nil))
}
