package transaction

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the persistence contract for transaction records. Every
// operation is scoped by the owning user id.
type Store interface {
	Insert(ctx context.Context, ownerID string, req CreateRequest) (Transaction, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Transaction, error)
	Update(ctx context.Context, ownerID, id string, req UpdateRequest) (Transaction, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

const transactionColumns = `
	id::text, owner_id::text, type, amount,
	COALESCE(category, ''), COALESCE(payment_mode, ''), COALESCE(description, ''),
	created_at, updated_at`

func (r *Repo) Insert(ctx context.Context, ownerID string, req CreateRequest) (Transaction, error) {
	var t Transaction
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO transactions (owner_id, type, amount, category, payment_mode, description)
		 VALUES ($1::uuid, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING`+transactionColumns,
		ownerID, NormalizeType(req.Type), req.Amount, req.Category, req.PaymentMode, req.Description,
	).Scan(
		&t.ID, &t.OwnerID, &t.Type, &t.Amount,
		&t.Category, &t.PaymentMode, &t.Description,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT`+transactionColumns+`
		 FROM transactions
		 WHERE owner_id = $1::uuid
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(
			&t.ID, &t.OwnerID, &t.Type, &t.Amount,
			&t.Category, &t.PaymentMode, &t.Description,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) Update(ctx context.Context, ownerID, id string, req UpdateRequest) (Transaction, error) {
	var typ *string
	if req.Type != nil {
		normalized := NormalizeType(*req.Type)
		typ = &normalized
	}

	var t Transaction
	err := r.Pool.QueryRow(ctx,
		`UPDATE transactions
		 SET type         = COALESCE($3, type),
		     amount       = COALESCE($4, amount),
		     category     = COALESCE($5, category),
		     payment_mode = COALESCE($6, payment_mode),
		     description  = COALESCE($7, description),
		     updated_at   = now()
		 WHERE id = $1::uuid AND owner_id = $2::uuid
		 RETURNING`+transactionColumns,
		id, ownerID, typ, req.Amount, req.Category, req.PaymentMode, req.Description,
	).Scan(
		&t.ID, &t.OwnerID, &t.Type, &t.Amount,
		&t.Category, &t.PaymentMode, &t.Description,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Transaction{}, ErrNotFound
	}
	if err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (r *Repo) Delete(ctx context.Context, ownerID, id string) error {
	ct, err := r.Pool.Exec(ctx,
		`DELETE FROM transactions WHERE id = $1::uuid AND owner_id = $2::uuid`,
		id, ownerID,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
