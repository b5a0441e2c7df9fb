package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetBalance(t *testing.T) {
	// alice paid 600.00 split between bob and carol; bob has settled.
	entries := []Entry{
		{PaidBy: "alice", OwedBy: "bob", Amount: dec("300.00"), IsSettled: true},
		{PaidBy: "alice", OwedBy: "carol", Amount: dec("300.00")},
	}

	tests := []struct {
		user       string
		owedToUser string
		owedByUser string
		net        string
	}{
		{"alice", "300.00", "0.00", "300.00"},
		{"bob", "0.00", "0.00", "0.00"},
		{"carol", "0.00", "300.00", "-300.00"},
		{"dave", "0.00", "0.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			b := NetBalance(tt.user, entries)
			assert.Equal(t, tt.owedToUser, b.OwedToUser.StringFixed(2))
			assert.Equal(t, tt.owedByUser, b.OwedByUser.StringFixed(2))
			assert.Equal(t, tt.net, b.Net.StringFixed(2))
		})
	}
}

func TestNetBalance_PayerOwnShareIgnored(t *testing.T) {
	entries := []Entry{
		{PaidBy: "alice", OwedBy: "alice", Amount: dec("33.34")},
		{PaidBy: "alice", OwedBy: "bob", Amount: dec("33.33")},
		{PaidBy: "alice", OwedBy: "carol", Amount: dec("33.33")},
	}

	alice := NetBalance("alice", entries)
	assert.Equal(t, "66.66", alice.Net.StringFixed(2))
	assert.Equal(t, "0.00", alice.OwedByUser.StringFixed(2))
}

func TestNetBalance_OffsettingDebts(t *testing.T) {
	entries := []Entry{
		{PaidBy: "alice", OwedBy: "bob", Amount: dec("40.00")},
		{PaidBy: "bob", OwedBy: "alice", Amount: dec("25.50")},
	}

	assert.Equal(t, "14.50", NetBalance("alice", entries).Net.StringFixed(2))
	assert.Equal(t, "-14.50", NetBalance("bob", entries).Net.StringFixed(2))
}

func TestNetBalance_AllSettledIsZero(t *testing.T) {
	entries := []Entry{
		{PaidBy: "alice", OwedBy: "bob", Amount: dec("10.00"), IsSettled: true},
		{PaidBy: "bob", OwedBy: "alice", Amount: dec("7.00"), IsSettled: true},
	}

	for _, u := range []string{"alice", "bob"} {
		b := NetBalance(u, entries)
		assert.True(t, b.Settled(), u)
	}
}
