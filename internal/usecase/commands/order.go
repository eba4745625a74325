package commands

import (
	"context"
	"errors"
	"log/slog"

	"loyalty-core/internal/domain/point"
	"loyalty-core/internal/infra"
	"loyalty-core/internal/pkg/clock"
	"loyalty-core/internal/pkg/errs"
	"loyalty-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CancelOrderResult struct {
	OrderID        string
	Status         string
	RefundedPoints int64
	CouponRestored bool
}

// OrderCommands is the compensation workflow: it reverses exactly the
// financial side effects an order's checkout recorded, then marks the order
// cancelled. It never touches balance or coupon rows directly; everything
// goes through the same transaction helpers the two ledger services use.
type OrderCommands interface {
	CancelOrder(ctx context.Context, userID uuid.UUID, orderID string, reason string) (*CancelOrderResult, error)
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// CancelOrder is idempotent under client retries: the whole compensation is
// gated on the order still being cancellable, so a duplicate request fails
// InvalidState before any ledger call fires. Refund failure aborts the
// transaction; a coupon that was already restored for this order is
// tolerated and skipped.
func (o *orderCommandsImpl) CancelOrder(ctx context.Context, userID uuid.UUID, orderID string, reason string) (*CancelOrderResult, error) {
	now := o.clock.Now()

	var result CancelOrderResult
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, err := tx.Orders().FindForUpdate(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return err
		}

		if ord.UserID != userID {
			// Compensation moves real money-equivalents; only the order's
			// owner may trigger it.
			return errs.ErrOrderForbidden
		}

		if !ord.CanCancel() {
			return errs.ErrOrderInvalidState
		}

		if ord.UsedPoints > 0 {
			// A partially-compensated cancellation is worse than none, so a
			// refund failure fails the whole operation.
			_, err := applyPointEntry(ctx, tx, now, ord.UserID, point.EntryRefund,
				ord.UsedPoints, "order cancelled", &ord.ID)
			if err != nil {
				return err
			}
			result.RefundedPoints = ord.UsedPoints
		}

		if ord.UserCouponID != nil {
			err := restoreInstance(ctx, tx, *ord.UserCouponID, ord.ID)
			switch {
			case err == nil:
				result.CouponRestored = true
			case errors.Is(err, errs.ErrCouponInvalidState):
				// Already restored by an earlier attempt, or reused since.
				// Either way the coupon needs no further compensation.
				slog.Warn("coupon already compensated, skipping restore",
					"order_id", ord.ID,
					"user_coupon_id", ord.UserCouponID.String())
			default:
				return err
			}
		}

		if err := ord.Cancel(reason, now); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Orders().MarkCancelled(ctx, ord); err != nil {
			return err
		}

		result.OrderID = ord.ID
		result.Status = ord.Status.String()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
