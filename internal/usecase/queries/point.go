package queries

import (
	"context"
	"time"

	"loyalty-core/internal/infra"
	"loyalty-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type PointReadStore interface {
	Balance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	// History returns up to limit entries older than the (afterTime, afterID)
	// position, newest first. Nil afterTime starts from the newest entry.
	History(ctx context.Context, userID uuid.UUID, limit int, afterTime *time.Time, afterID *uuid.UUID) ([]HistoryEntryView, error)
}

type PointQueries interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	GetHistory(ctx context.Context, userID uuid.UUID, limit int, cursor string) (*HistoryPage, error)
}

type pointQueriesImpl struct {
	store PointReadStore
}

func NewPointQueries(store PointReadStore) PointQueries {
	return &pointQueriesImpl{store: store}
}

func (q *pointQueriesImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	view, err := q.store.Balance(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to read point balance")
	}
	return view, nil
}

func (q *pointQueriesImpl) GetHistory(ctx context.Context, userID uuid.UUID, limit int, cursor string) (*HistoryPage, error) {
	limit = ValidateLimit(limit)

	var (
		afterTime *time.Time
		afterID   *uuid.UUID
	)
	if cursor != "" {
		t, id, err := DecodeAfterCursor(cursor)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		afterTime = &t
		afterID = &id
	}

	// The balance read doubles as the user existence check.
	if _, err := q.GetBalance(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := q.store.History(ctx, userID, limit, afterTime, afterID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read point history")
	}

	page := &HistoryPage{
		Entries: entries,
		HasMore: len(entries) == limit,
	}
	if len(entries) > 0 {
		last := entries[len(entries)-1]
		page.NextCursor = EncodeAfterCursor(last.OccurredAt, last.ID)
	}
	return page, nil
}
