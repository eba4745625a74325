package commands

import (
	"context"
	"errors"

	"loyalty-core/internal/domain/coupon"
	"loyalty-core/internal/infra"
	"loyalty-core/internal/pkg/clock"
	"loyalty-core/internal/pkg/config"
	"loyalty-core/internal/pkg/errs"
	"loyalty-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponCommands interface {
	// RegisterByCode redeems a code for the caller. The instance insert and
	// the master's used_count increment commit together; a registration that
	// skipped the counter would let concurrent callers slip past the limit.
	RegisterByCode(ctx context.Context, userID uuid.UUID, code string) (*coupon.Instance, error)
	// IssueDirect hands a coupon to a user by id. It does not consume the
	// shared registration counter.
	IssueDirect(ctx context.Context, userID uuid.UUID, couponID uuid.UUID) (*coupon.Instance, error)
	Use(ctx context.Context, userID uuid.UUID, userCouponID uuid.UUID, orderID string) error
	// Restore is the compensating inverse of Use, called by order
	// cancellation.
	Restore(ctx context.Context, userCouponID uuid.UUID, orderID string) error
	// SweepExpired transitions stale 사용가능 instances to 기간만료 in
	// capped-size batches. Safe to re-run at any time.
	SweepExpired(ctx context.Context) (int64, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.LoyaltyConfig
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) CouponCommands {
	return &couponCommandsImpl{
		uow:   uow,
		clock: clk,
		cfg:   cfg.Loyalty,
	}
}

func (c *couponCommandsImpl) RegisterByCode(ctx context.Context, userID uuid.UUID, rawCode string) (*coupon.Instance, error) {
	code, err := coupon.NewCode(rawCode)
	if err != nil {
		// A code that cannot exist behaves like a code that does not exist.
		return nil, errs.Mark(err, errs.ErrCouponNotFound)
	}

	now := c.clock.Now()
	var inst *coupon.Instance
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		master, err := tx.Coupons().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCouponNotFound
			}
			return err
		}

		if err := master.ValidateRegistration(now); err != nil {
			return mapMasterError(err)
		}

		inst = coupon.NewInstance(userID, master.ID, now)
		if err := tx.Coupons().InsertInstance(ctx, inst); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrCouponAlreadyRegistered
			}
			return err
		}

		return tx.Coupons().IncrementUsedCount(ctx, master.ID)
	})
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (c *couponCommandsImpl) IssueDirect(ctx context.Context, userID uuid.UUID, couponID uuid.UUID) (*coupon.Instance, error) {
	now := c.clock.Now()
	var inst *coupon.Instance
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		master, err := tx.Coupons().FindByID(ctx, couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCouponNotFound
			}
			return err
		}

		if err := master.ValidateDirectIssue(now); err != nil {
			if errors.Is(err, coupon.ErrCouponInactive) {
				return errs.ErrCouponForbidden
			}
			return mapMasterError(err)
		}

		inst = coupon.NewInstance(userID, master.ID, now)
		if err := tx.Coupons().InsertInstance(ctx, inst); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrCouponAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (c *couponCommandsImpl) Use(ctx context.Context, userID uuid.UUID, userCouponID uuid.UUID, orderID string) error {
	now := c.clock.Now()
	lazilyExpired := false

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inst, err := tx.Coupons().InstanceForUpdate(ctx, userCouponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrUserCouponNotFound
			}
			return err
		}

		if !inst.BelongsTo(userID) {
			return errs.ErrCouponForbidden
		}
		if inst.Status != coupon.StatusAvailable {
			return errs.ErrCouponInvalidState
		}

		master, err := tx.Coupons().FindByID(ctx, inst.CouponID)
		if err != nil {
			return err
		}

		// Lazy expiry: the expired transition must commit even though the
		// caller gets an error, so flag it and report after the transaction.
		if master.ExpiredAt(now) {
			if err := inst.Expire(now); err != nil {
				return errs.Mark(err, errs.ErrCouponInvalidState)
			}
			lazilyExpired = true
			return tx.Coupons().UpdateInstance(ctx, inst)
		}

		if err := inst.Use(orderID, now); err != nil {
			return errs.Mark(err, errs.ErrCouponInvalidState)
		}
		return tx.Coupons().UpdateInstance(ctx, inst)
	})
	if err != nil {
		return err
	}
	if lazilyExpired {
		return errs.ErrCouponExpired
	}
	return nil
}

func (c *couponCommandsImpl) Restore(ctx context.Context, userCouponID uuid.UUID, orderID string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return restoreInstance(ctx, tx, userCouponID, orderID)
	})
}

func (c *couponCommandsImpl) SweepExpired(ctx context.Context) (int64, error) {
	now := c.clock.Now()
	batchSize := c.cfg.SweepBatchSize

	var total int64
	for {
		var (
			expired int64
			done    bool
		)
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ids, err := tx.Coupons().ExpirableInstanceIDs(ctx, now, batchSize)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				done = true
				return nil
			}
			expired, err = tx.Coupons().MarkExpired(ctx, ids, now)
			if err != nil {
				return err
			}
			if len(ids) < batchSize {
				done = true
			}
			return nil
		})
		if err != nil {
			return total, err
		}
		total += expired
		if done {
			return total, nil
		}
	}
}

// restoreInstance runs inside the caller's transaction so the compensation
// workflow can combine it with the point refund and status flip.
func restoreInstance(ctx context.Context, tx shared.Tx, userCouponID uuid.UUID, orderID string) error {
	inst, err := tx.Coupons().InstanceForUpdate(ctx, userCouponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserCouponNotFound
		}
		return err
	}

	if err := inst.Restore(orderID); err != nil {
		return errs.Mark(err, errs.ErrCouponInvalidState)
	}
	return tx.Coupons().UpdateInstance(ctx, inst)
}

func mapMasterError(err error) error {
	switch {
	case errors.Is(err, coupon.ErrUsageLimitExceeded):
		return errs.ErrCouponLimitExceeded
	case errors.Is(err, coupon.ErrCouponExpired):
		return errs.ErrCouponExpired
	case errors.Is(err, coupon.ErrCouponInactive):
		return errs.ErrCouponNotFound
	default:
		return err
	}
}
