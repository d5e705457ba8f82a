package transaction

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service orchestrates the store and derives the summary. It owns input
// validation so the SQL and in-memory adapters stay thin.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, ownerID string, req CreateRequest) (Transaction, error) {
	if err := req.Validate(); err != nil {
		return Transaction{}, err
	}
	return s.store.Insert(ctx, ownerID, req)
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Transaction, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, ownerID, id string, req UpdateRequest) (Transaction, error) {
	if err := req.Validate(); err != nil {
		return Transaction{}, err
	}
	return s.store.Update(ctx, ownerID, id, req)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	return s.store.Delete(ctx, ownerID, id)
}

// Summary fetches the owner's full set and partitions the amounts by
// type. Decimal addition keeps totals exact no matter how many small
// records pile up.
func (s *Service) Summary(ctx context.Context, ownerID string) (Summary, error) {
	records, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return Summary{}, err
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range records {
		switch t.Type {
		case TypeIncome:
			income = income.Add(t.Amount)
		case TypeExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}
