package client

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

func validForm() *Form {
	f := NewForm()
	f.Type = "expense"
	f.Amount = "120.50"
	f.Category = "food"
	f.PaymentMode = "card"
	f.Description = "groceries"
	return f
}

func TestFormValidate_AcceptsValidInput(t *testing.T) {
	f := validForm()
	assert.True(t, f.Validate())
	assert.Empty(t, f.Errors)

	req := f.CreateRequest()
	assert.Equal(t, "expense", req.Type)
	assert.True(t, req.Amount.Equal(decimal.RequireFromString("120.50")))
}

func TestFormValidate_AmountBounds(t *testing.T) {
	cases := map[string]string{
		"":         "amount is required",
		"abc":      "amount must be a number",
		"0":        "amount must be between 0 and 10,000,000",
		"-5":       "amount must be between 0 and 10,000,000",
		"10000001": "amount must be between 0 and 10,000,000",
	}
	for input, wantErr := range cases {
		f := validForm()
		f.Amount = input
		assert.False(t, f.Validate(), "amount=%q", input)
		assert.Equal(t, wantErr, f.Errors["amount"], "amount=%q", input)
	}

	// the maximum itself is allowed
	f := validForm()
	f.Amount = "10000000"
	assert.True(t, f.Validate())
}

func TestFormValidate_DescriptionLength(t *testing.T) {
	f := validForm()
	f.Description = "ab"
	assert.False(t, f.Validate())
	assert.Contains(t, f.Errors, "description")

	f = validForm()
	f.Description = strings.Repeat("x", 101)
	assert.False(t, f.Validate())
	assert.Contains(t, f.Errors, "description")

	f = validForm()
	f.Description = strings.Repeat("x", 100)
	assert.True(t, f.Validate())
}

func TestFormValidate_CategoryRequired(t *testing.T) {
	f := validForm()
	f.Category = "  "
	assert.False(t, f.Validate())
	assert.Contains(t, f.Errors, "category")
}

func TestFormValidate_CollectsAllFieldErrors(t *testing.T) {
	f := NewForm()
	f.Type = "loan"
	assert.False(t, f.Validate())
	assert.Contains(t, f.Errors, "type")
	assert.Contains(t, f.Errors, "amount")
	assert.Contains(t, f.Errors, "description")
	assert.Contains(t, f.Errors, "category")
}

func TestForm_EditModeLifecycle(t *testing.T) {
	f := NewForm()
	require.Equal(t, FormModeCreate, f.Mode())

	row := transaction.Transaction{
		ID:          "tx-1",
		Type:        "income",
		Amount:      decimal.NewFromInt(500),
		Category:    "salary",
		PaymentMode: "cash",
		Description: "May pay",
	}
	f.BeginEdit(row)

	assert.Equal(t, FormModeEdit, f.Mode())
	assert.Equal(t, "tx-1", f.EditID())
	assert.Equal(t, "500", f.Amount)

	require.True(t, f.Validate())
	req := f.UpdateRequest()
	require.NotNil(t, req.Type)
	assert.Equal(t, "income", *req.Type)
	require.NotNil(t, req.Amount)
	assert.True(t, req.Amount.Equal(decimal.NewFromInt(500)))

	f.Reset()
	assert.Equal(t, FormModeCreate, f.Mode())
	assert.Empty(t, f.EditID())
	assert.Empty(t, f.Amount)
}
