package writerepo

import (
	"context"
	"time"

	"loyalty-core/internal/domain/point"
	"loyalty-core/internal/infra"
	"loyalty-core/internal/infra/db"
	"loyalty-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PointRepository struct {
	db db.DBTX
}

func NewPointRepository(dbtx db.DBTX) *PointRepository {
	return &PointRepository{db: dbtx}
}

// BalanceForUpdate locks the balance row for the rest of the transaction.
// Concurrent mutations for the same user queue behind this lock, so the
// check-then-debit sequence cannot interleave.
func (r *PointRepository) BalanceForUpdate(ctx context.Context, userID uuid.UUID) (point.Balance, error) {
	var balance int64
	err := r.db.QueryRow(ctx,
		`SELECT balance FROM point_balances WHERE user_id = $1 FOR UPDATE`,
		userID,
	).Scan(&balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("point balance not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to lock point balance", err)
	}
	return point.Balance(balance), nil
}

func (r *PointRepository) CreateBalance(ctx context.Context, userID uuid.UUID, balance point.Balance, now time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO point_balances (user_id, balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $3)`,
		userID, balance.Int64(), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create point balance", err)
	}
	return nil
}

func (r *PointRepository) UpdateBalance(ctx context.Context, userID uuid.UUID, balance point.Balance, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE point_balances SET balance = $2, updated_at = $3 WHERE user_id = $1`,
		userID, balance.Int64(), now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update point balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("point balance not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PointRepository) InsertEntry(ctx context.Context, entry *point.Entry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO point_histories
		   (id, user_id, type, amount, description, order_id, balance_after, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID,
		entry.UserID,
		entry.Type.String(),
		entry.Amount,
		entry.Description,
		entry.OrderID,
		entry.BalanceAfter,
		entry.OccurredAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert point history entry", err)
	}
	return nil
}
