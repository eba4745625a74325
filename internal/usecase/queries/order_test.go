//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"loyalty-core/internal/infra"
	"loyalty-core/internal/pkg/errs"
	"loyalty-core/internal/usecase/queries"
	queriesmock "loyalty-core/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("owner reads the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		q := queries.NewOrderQueries(store)
		userID := uuid.New()

		store.EXPECT().FindByID(ctx, "ORD-1").
			Return(&queries.OrderView{ID: "ORD-1", UserID: userID, Status: "pending"}, nil)

		view, err := q.GetOrder(ctx, userID, "ORD-1")
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", view.ID)
	})

	t.Run("another user's order is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		q := queries.NewOrderQueries(store)

		store.EXPECT().FindByID(ctx, "ORD-1").
			Return(&queries.OrderView{ID: "ORD-1", UserID: uuid.New(), Status: "pending"}, nil)

		_, err := q.GetOrder(ctx, uuid.New(), "ORD-1")
		assert.ErrorIs(t, err, errs.ErrOrderForbidden)
	})

	t.Run("missing row maps to NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		q := queries.NewOrderQueries(store)

		store.EXPECT().FindByID(ctx, "NOPE").
			Return(nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound))

		_, err := q.GetOrder(ctx, uuid.New(), "NOPE")
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})
}
