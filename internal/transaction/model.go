package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single income or expense record. OwnerID is always the
// authenticated caller; it is never taken from a request body.
type Transaction struct {
	ID          string          `db:"id" json:"id"`
	OwnerID     string          `db:"owner_id" json:"ownerId"`
	Type        string          `db:"type" json:"type"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Category    string          `db:"category" json:"category,omitempty"`
	PaymentMode string          `db:"payment_mode" json:"paymentMode,omitempty"`
	Description string          `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

type CreateRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	PaymentMode string          `json:"paymentMode"`
	Description string          `json:"description"`
}

// UpdateRequest carries a partial replacement: nil fields keep their
// stored values. Owner, id and created_at are never touched.
type UpdateRequest struct {
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	PaymentMode *string          `json:"paymentMode"`
	Description *string          `json:"description"`
}

// Summary is derived, never persisted.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

func NormalizeType(t string) string {
	t = strings.TrimSpace(strings.ToLower(t))
	if t == TypeIncome || t == TypeExpense {
		return t
	}
	return ""
}

func (r CreateRequest) Validate() error {
	if NormalizeType(r.Type) == "" {
		return &ValidationError{Field: "type", Message: "type must be income or expense"}
	}
	if !r.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}
	return nil
}

func (r UpdateRequest) Validate() error {
	if r.Type != nil && NormalizeType(*r.Type) == "" {
		return &ValidationError{Field: "type", Message: "type must be income or expense"}
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "amount must be greater than zero"}
	}
	return nil
}
