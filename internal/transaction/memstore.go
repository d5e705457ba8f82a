package transaction

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store used by tests and local development.
// It mirrors the SQL adapter's behavior: owner scoping on every
// operation and newest-created-first listing.
type MemStore struct {
	mu      sync.Mutex
	records []Transaction
	now     func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{now: time.Now}
}

func (m *MemStore) Insert(_ context.Context, ownerID string, req CreateRequest) (Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	t := Transaction{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Type:        NormalizeType(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		PaymentMode: req.PaymentMode,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.records = append(m.records, t)
	return t, nil
}

func (m *MemStore) ListByOwner(_ context.Context, ownerID string) ([]Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Transaction, 0)
	// records are in insertion order; walk backwards for newest first
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].OwnerID == ownerID {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

func (m *MemStore) Update(_ context.Context, ownerID, id string, req UpdateRequest) (Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID != id || m.records[i].OwnerID != ownerID {
			continue
		}

		t := &m.records[i]
		if req.Type != nil {
			t.Type = NormalizeType(*req.Type)
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
		t.UpdatedAt = m.now()
		return *t, nil
	}
	return Transaction{}, ErrNotFound
}

func (m *MemStore) Delete(_ context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.records {
		if m.records[i].ID == id && m.records[i].OwnerID == ownerID {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
