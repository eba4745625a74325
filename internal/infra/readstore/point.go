package readstore

import (
	"context"
	"time"

	"loyalty-core/internal/infra"
	"loyalty-core/internal/infra/db"
	"loyalty-core/internal/pkg/pgconv"
	"loyalty-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PointReadStore struct {
	db db.DBTX
}

func NewPointReadStore(dbtx db.DBTX) *PointReadStore {
	return &PointReadStore{db: dbtx}
}

func (r *PointReadStore) Balance(ctx context.Context, userID uuid.UUID) (*queries.BalanceView, error) {
	var balance int64
	err := r.db.QueryRow(ctx,
		`SELECT balance FROM point_balances WHERE user_id = $1`,
		userID,
	).Scan(&balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("point balance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read point balance", err)
	}

	return &queries.BalanceView{UserID: userID, Balance: balance}, nil
}

// History pages newest-first with a (occurred_at, id) keyset; ties on
// occurred_at are broken by id so a cursor never skips or repeats entries.
func (r *PointReadStore) History(ctx context.Context, userID uuid.UUID, limit int, afterTime *time.Time, afterID *uuid.UUID) ([]queries.HistoryEntryView, error) {
	const baseQuery = `
		SELECT id, type, amount, description, order_id, balance_after, occurred_at
		FROM point_histories
		WHERE user_id = $1`

	var (
		rows pgx.Rows
		err  error
	)
	if afterTime != nil && afterID != nil {
		rows, err = r.db.Query(ctx,
			baseQuery+` AND (occurred_at, id) < ($2, $3)
			ORDER BY occurred_at DESC, id DESC
			LIMIT $4`,
			userID, *afterTime, *afterID, limit,
		)
	} else {
		rows, err = r.db.Query(ctx,
			baseQuery+`
			ORDER BY occurred_at DESC, id DESC
			LIMIT $2`,
			userID, limit,
		)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query point history", err)
	}
	defer rows.Close()

	var entries []queries.HistoryEntryView
	for rows.Next() {
		var (
			e       queries.HistoryEntryView
			orderID pgtype.Text
		)
		if err := rows.Scan(&e.ID, &e.Type, &e.Amount, &e.Description, &orderID, &e.BalanceAfter, &e.OccurredAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan point history entry", err)
		}
		e.OrderID = pgconv.StringPtrFromPgtype(orderID)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate point history", err)
	}

	return entries, nil
}
