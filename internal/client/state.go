package client

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

// backend is the slice of the API the controller needs. *API satisfies it;
// tests substitute an in-memory fake.
type backend interface {
	Create(ctx context.Context, req transaction.CreateRequest) (transaction.Transaction, error)
	List(ctx context.Context) ([]transaction.Transaction, error)
	Update(ctx context.Context, id string, req transaction.UpdateRequest) (transaction.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
	NoticeInfo
)

// Notice is a transient message shown after a mutation.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Controller owns the page state: the transaction list (newest first),
// the summary derived from it, and the row being edited, if any. Views
// read this state; only controller actions mutate it.
//
// The summary is always recomputed from the full local list after a
// mutation rather than patched incrementally, so it cannot drift from
// the list it is displayed next to.
type Controller struct {
	api    backend
	notify func(Notice)

	transactions []transaction.Transaction
	summary      transaction.Summary
	editing      *transaction.Transaction
}

// NewController wires the controller to an API client. notify may be nil.
func NewController(api backend, notify func(Notice)) *Controller {
	return &Controller{api: api, notify: notify}
}

// Load fetches the full transaction list and recomputes the summary.
// Called on mount and whenever a full re-sync is wanted.
func (ct *Controller) Load(ctx context.Context) error {
	items, err := ct.api.List(ctx)
	if err != nil {
		ct.emit(NoticeError, "failed to load transactions")
		return err
	}
	ct.transactions = items
	ct.recompute()
	return nil
}

// Create submits a new transaction, prepends the stored record and
// recomputes the summary.
func (ct *Controller) Create(ctx context.Context, req transaction.CreateRequest) error {
	created, err := ct.api.Create(ctx, req)
	if err != nil {
		ct.emit(NoticeError, "failed to add transaction")
		return err
	}

	ct.transactions = append([]transaction.Transaction{created}, ct.transactions...)
	ct.recompute()
	ct.emit(NoticeSuccess, "transaction added")
	return nil
}

// BeginEdit hands the row with the given id to the form. Returns false
// if the row is not in the local list.
func (ct *Controller) BeginEdit(id string) bool {
	for i := range ct.transactions {
		if ct.transactions[i].ID == id {
			row := ct.transactions[i]
			ct.editing = &row
			return true
		}
	}
	return false
}

func (ct *Controller) CancelEdit() {
	ct.editing = nil
}

// SubmitEdit applies the form's update to the row currently being
// edited, replaces it in the local list and recomputes the summary.
func (ct *Controller) SubmitEdit(ctx context.Context, req transaction.UpdateRequest) error {
	if ct.editing == nil {
		ct.emit(NoticeInfo, "nothing is being edited")
		return nil
	}

	updated, err := ct.api.Update(ctx, ct.editing.ID, req)
	if err != nil {
		ct.emit(NoticeError, "failed to update transaction")
		return err
	}

	for i := range ct.transactions {
		if ct.transactions[i].ID == updated.ID {
			ct.transactions[i] = updated
			break
		}
	}
	ct.editing = nil
	ct.recompute()
	ct.emit(NoticeSuccess, "transaction updated")
	return nil
}

// Delete asks for confirmation, requests deletion and removes the row
// from the local list on success.
func (ct *Controller) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		ct.emit(NoticeInfo, "delete cancelled")
		return nil
	}

	if err := ct.api.Delete(ctx, id); err != nil {
		ct.emit(NoticeError, "failed to delete transaction")
		return err
	}

	for i := range ct.transactions {
		if ct.transactions[i].ID == id {
			ct.transactions = append(ct.transactions[:i], ct.transactions[i+1:]...)
			break
		}
	}
	if ct.editing != nil && ct.editing.ID == id {
		ct.editing = nil
	}
	ct.recompute()
	ct.emit(NoticeSuccess, "transaction deleted")
	return nil
}

// Transactions returns a copy of the local list, newest first.
func (ct *Controller) Transactions() []transaction.Transaction {
	out := make([]transaction.Transaction, len(ct.transactions))
	copy(out, ct.transactions)
	return out
}

func (ct *Controller) Summary() transaction.Summary {
	return ct.summary
}

func (ct *Controller) Editing() (transaction.Transaction, bool) {
	if ct.editing == nil {
		return transaction.Transaction{}, false
	}
	return *ct.editing, true
}

func (ct *Controller) recompute() {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range ct.transactions {
		switch t.Type {
		case transaction.TypeIncome:
			income = income.Add(t.Amount)
		case transaction.TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}
	ct.summary = transaction.Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

func (ct *Controller) emit(kind NoticeKind, message string) {
	if ct.notify != nil {
		ct.notify(Notice{Kind: kind, Message: message})
	}
}
