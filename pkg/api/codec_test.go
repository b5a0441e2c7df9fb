package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	var c Codec
	assert.Equal(t, "json", c.Name())

	b, err := c.Marshal(&SplitLine{
		Split:        Split{ID: "s1", AmountOwed: "33.34"},
		ExpenseTitle: "Pizza",
		PaidBy:       "u1",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "s1", "expenseId": "", "owedBy": "", "amountOwed": "33.34", "isSettled": false,
		"expenseTitle": "Pizza", "paidBy": "u1", "paidAt": 0
	}`, string(b))

	var req RecordExpenseRequest
	require.NoError(t, c.Unmarshal([]byte(`{"title":"Rent","amount":"900.00","participantIds":["a","b"]}`), &req))
	assert.Equal(t, RecordExpenseRequest{Title: "Rent", Amount: "900.00", ParticipantIDs: []string{"a", "b"}}, req)

	var empty GetBalanceRequest
	assert.NoError(t, c.Unmarshal(nil, &empty))
	assert.Error(t, c.Unmarshal([]byte("{"), &req))
}
