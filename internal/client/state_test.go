package client

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

// fakeBackend is an in-memory stand-in for the server, newest first like
// the real list endpoint.
type fakeBackend struct {
	items   []transaction.Transaction
	nextID  int
	failAll bool
}

func (f *fakeBackend) Create(_ context.Context, req transaction.CreateRequest) (transaction.Transaction, error) {
	if f.failAll {
		return transaction.Transaction{}, errors.New("boom")
	}
	f.nextID++
	t := transaction.Transaction{
		ID:          fmt.Sprintf("tx-%d", f.nextID),
		OwnerID:     "user-a",
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		PaymentMode: req.PaymentMode,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.items = append([]transaction.Transaction{t}, f.items...)
	return t, nil
}

func (f *fakeBackend) List(context.Context) ([]transaction.Transaction, error) {
	if f.failAll {
		return nil, errors.New("boom")
	}
	out := make([]transaction.Transaction, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeBackend) Update(_ context.Context, id string, req transaction.UpdateRequest) (transaction.Transaction, error) {
	if f.failAll {
		return transaction.Transaction{}, errors.New("boom")
	}
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		t := &f.items[i]
		if req.Type != nil {
			t.Type = *req.Type
		}
		if req.Amount != nil {
			t.Amount = *req.Amount
		}
		if req.Category != nil {
			t.Category = *req.Category
		}
		if req.PaymentMode != nil {
			t.PaymentMode = *req.PaymentMode
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		t.UpdatedAt = time.Now()
		return *t, nil
	}
	return transaction.Transaction{}, &APIError{Status: 404, Message: "transaction not found"}
}

func (f *fakeBackend) Delete(_ context.Context, id string) error {
	if f.failAll {
		return errors.New("boom")
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return &APIError{Status: 404, Message: "transaction not found"}
}

func newTestController() (*Controller, *fakeBackend, *[]Notice) {
	backend := &fakeBackend{}
	var notices []Notice
	ct := NewController(backend, func(n Notice) { notices = append(notices, n) })
	return ct, backend, &notices
}

func mustCreate(t *testing.T, ct *Controller, typ, amount, category string) {
	t.Helper()
	require.NoError(t, ct.Create(context.Background(), transaction.CreateRequest{
		Type:        typ,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: "something",
	}))
}

func TestController_LoadComputesSummaryFromFullList(t *testing.T) {
	ct, backend, _ := newTestController()
	ctx := context.Background()

	backend.Create(ctx, transaction.CreateRequest{Type: "income", Amount: decimal.NewFromInt(500)})
	backend.Create(ctx, transaction.CreateRequest{Type: "expense", Amount: decimal.NewFromInt(120)})

	require.NoError(t, ct.Load(ctx))

	assert.Len(t, ct.Transactions(), 2)
	s := ct.Summary()
	assert.True(t, s.Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.Expense.Equal(decimal.NewFromInt(120)))
	assert.True(t, s.Balance.Equal(decimal.NewFromInt(380)))
}

func TestController_BalanceAlwaysEqualsIncomeMinusExpense(t *testing.T) {
	ct, _, _ := newTestController()

	mustCreate(t, ct, "income", "500", "salary")
	mustCreate(t, ct, "expense", "120.25", "food")
	mustCreate(t, ct, "expense", "30", "travel")

	s := ct.Summary()
	assert.True(t, s.Balance.Equal(s.Income.Sub(s.Expense)))
	assert.True(t, s.Balance.Equal(decimal.RequireFromString("349.75")))
}

func TestController_CreatePrependsAndNotifies(t *testing.T) {
	ct, _, notices := newTestController()

	mustCreate(t, ct, "income", "500", "salary")
	mustCreate(t, ct, "expense", "50", "food")

	items := ct.Transactions()
	require.Len(t, items, 2)
	assert.Equal(t, "expense", items[0].Type)

	require.NotEmpty(t, *notices)
	assert.Equal(t, NoticeSuccess, (*notices)[len(*notices)-1].Kind)
}

func TestController_EditFlow(t *testing.T) {
	ct, _, _ := newTestController()
	ctx := context.Background()

	mustCreate(t, ct, "income", "500", "salary")
	id := ct.Transactions()[0].ID

	require.True(t, ct.BeginEdit(id))
	editing, ok := ct.Editing()
	require.True(t, ok)
	assert.Equal(t, id, editing.ID)

	// cancel leaves everything untouched
	ct.CancelEdit()
	_, ok = ct.Editing()
	assert.False(t, ok)

	// edit again and submit a type flip: summary follows
	require.True(t, ct.BeginEdit(id))
	flipped := transaction.TypeExpense
	require.NoError(t, ct.SubmitEdit(ctx, transaction.UpdateRequest{Type: &flipped}))

	_, ok = ct.Editing()
	assert.False(t, ok)

	s := ct.Summary()
	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expense.Equal(decimal.NewFromInt(500)))
}

func TestController_UpdateAmountMovesSummaryDelta(t *testing.T) {
	ct, _, _ := newTestController()
	ctx := context.Background()

	mustCreate(t, ct, "income", "500", "salary")
	mustCreate(t, ct, "expense", "80", "food")
	id := ct.Transactions()[1].ID // the income row

	require.True(t, ct.BeginEdit(id))
	amount := decimal.NewFromInt(700)
	require.NoError(t, ct.SubmitEdit(ctx, transaction.UpdateRequest{Amount: &amount}))

	s := ct.Summary()
	assert.True(t, s.Income.Equal(decimal.NewFromInt(700)))
	assert.True(t, s.Expense.Equal(decimal.NewFromInt(80)))
}

func TestController_DeleteRequiresConfirmation(t *testing.T) {
	ct, backend, _ := newTestController()
	ctx := context.Background()

	mustCreate(t, ct, "expense", "25", "food")
	id := ct.Transactions()[0].ID

	// declined: nothing happens anywhere
	require.NoError(t, ct.Delete(ctx, id, func() bool { return false }))
	assert.Len(t, ct.Transactions(), 1)
	assert.Len(t, backend.items, 1)

	// confirmed: row leaves local state and the backend
	require.NoError(t, ct.Delete(ctx, id, func() bool { return true }))
	assert.Empty(t, ct.Transactions())
	assert.Empty(t, backend.items)
	assert.True(t, ct.Summary().Expense.IsZero())
}

func TestController_FailedMutationKeepsStateAndNotifiesError(t *testing.T) {
	ct, backend, notices := newTestController()
	ctx := context.Background()

	mustCreate(t, ct, "income", "500", "salary")
	backend.failAll = true

	err := ct.Create(ctx, transaction.CreateRequest{Type: "expense", Amount: decimal.NewFromInt(10), Description: "nope"})
	require.Error(t, err)

	// local mirror unchanged, summary unchanged, error notice emitted
	assert.Len(t, ct.Transactions(), 1)
	assert.True(t, ct.Summary().Income.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, NoticeError, (*notices)[len(*notices)-1].Kind)
}
