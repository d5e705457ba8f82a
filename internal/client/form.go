package client

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rishab4242/Expense-Tracker-App/internal/transaction"
)

type FormMode int

const (
	FormModeCreate FormMode = iota
	FormModeEdit
)

var maxAmount = decimal.NewFromInt(10_000_000)

// Form is the entry form's state machine: create mode by default, edit
// mode while a row is being edited. Fields hold raw user input;
// Validate turns them into field-level errors or a request payload.
type Form struct {
	mode   FormMode
	editID string

	Type        string
	Amount      string
	Category    string
	PaymentMode string
	Description string

	Errors map[string]string

	amount decimal.Decimal // set by Validate
}

func NewForm() *Form {
	return &Form{Type: transaction.TypeExpense, Errors: map[string]string{}}
}

func (f *Form) Mode() FormMode {
	return f.mode
}

func (f *Form) EditID() string {
	return f.editID
}

// BeginEdit switches to edit mode with the row's current values.
func (f *Form) BeginEdit(t transaction.Transaction) {
	f.mode = FormModeEdit
	f.editID = t.ID
	f.Type = t.Type
	f.Amount = t.Amount.String()
	f.Category = t.Category
	f.PaymentMode = t.PaymentMode
	f.Description = t.Description
	f.Errors = map[string]string{}
}

// Reset returns to create mode with empty fields. Called on submit and
// on explicit cancel.
func (f *Form) Reset() {
	*f = *NewForm()
}

// Validate checks the form client-side; nothing is sent while it fails.
// Rules: type is income or expense, amount is numeric in (0, 10000000],
// description is 3-100 characters, category is selected.
func (f *Form) Validate() bool {
	f.Errors = map[string]string{}

	if transaction.NormalizeType(f.Type) == "" {
		f.Errors["type"] = "type must be income or expense"
	}

	rawAmount := strings.TrimSpace(f.Amount)
	if rawAmount == "" {
		f.Errors["amount"] = "amount is required"
	} else if amount, err := decimal.NewFromString(rawAmount); err != nil {
		f.Errors["amount"] = "amount must be a number"
	} else if !amount.IsPositive() || amount.GreaterThan(maxAmount) {
		f.Errors["amount"] = "amount must be between 0 and 10,000,000"
	} else {
		f.amount = amount
	}

	desc := strings.TrimSpace(f.Description)
	if desc == "" {
		f.Errors["description"] = "description is required"
	} else if len(desc) < 3 || len(desc) > 100 {
		f.Errors["description"] = "description must be 3-100 characters"
	}

	if strings.TrimSpace(f.Category) == "" {
		f.Errors["category"] = "category is required"
	}

	return len(f.Errors) == 0
}

// CreateRequest builds the submission payload. Only meaningful after a
// successful Validate.
func (f *Form) CreateRequest() transaction.CreateRequest {
	return transaction.CreateRequest{
		Type:        transaction.NormalizeType(f.Type),
		Amount:      f.amount,
		Category:    strings.TrimSpace(f.Category),
		PaymentMode: strings.TrimSpace(f.PaymentMode),
		Description: strings.TrimSpace(f.Description),
	}
}

// UpdateRequest builds a full-field replacement from the form, which is
// how the edit flow submits: every mutable field carries the form value.
func (f *Form) UpdateRequest() transaction.UpdateRequest {
	typ := transaction.NormalizeType(f.Type)
	amount := f.amount
	category := strings.TrimSpace(f.Category)
	paymentMode := strings.TrimSpace(f.PaymentMode)
	description := strings.TrimSpace(f.Description)

	return transaction.UpdateRequest{
		Type:        &typ,
		Amount:      &amount,
		Category:    &category,
		PaymentMode: &paymentMode,
		Description: &description,
	}
}

// Render prints the form's fields and any validation errors.
func (f *Form) Render(w io.Writer) {
	title := "Add Transaction"
	if f.mode == FormModeEdit {
		title = "Edit Transaction"
	}
	fmt.Fprintf(w, "── %s ─────────────────────\n", title)
	fmt.Fprintf(w, "  type:        %s\n", f.Type)
	fmt.Fprintf(w, "  amount:      %s\n", f.Amount)
	fmt.Fprintf(w, "  category:    %s\n", f.Category)
	fmt.Fprintf(w, "  paymentMode: %s\n", f.PaymentMode)
	fmt.Fprintf(w, "  description: %s\n", f.Description)

	if len(f.Errors) == 0 {
		return
	}

	fields := make([]string, 0, len(f.Errors))
	for field := range f.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(w, "  ! %s: %s\n", field, f.Errors[field])
	}
}
