package queries

import (
	"context"

	"loyalty-core/internal/infra"
	"loyalty-core/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, orderID string) (*OrderView, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to read order")
	}
	if view.UserID != userID {
		return nil, errs.ErrOrderForbidden
	}
	return view, nil
}
