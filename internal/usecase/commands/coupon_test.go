//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"loyalty-core/internal/domain/coupon"
	"loyalty-core/internal/pkg/clock"
	"loyalty-core/internal/pkg/config"
	"loyalty-core/internal/pkg/errs"
	"loyalty-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCouponCommands(uow *fakeUoW) (commands.CouponCommands, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))
	return commands.NewCouponCommands(uow, clk, config.NewTestConfig()), clk
}

func testMaster(mutate func(*coupon.Coupon)) *coupon.Coupon {
	code, _ := coupon.NewCode("WELCOME")
	m := &coupon.Coupon{
		ID:         uuid.New(),
		Code:       &code,
		Name:       "welcome coupon",
		Type:       coupon.TypeAmount,
		Value:      1000,
		IsActive:   true,
		ExpiryDate: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if mutate != nil {
		mutate(m)
	}
	return m
}

func TestRegisterByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an available instance and increments the counter", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, clk := newCouponCommands(uow)
		master := testMaster(nil)
		uow.seedMaster(master)
		userID := uuid.New()

		inst, err := cmds.RegisterByCode(ctx, userID, "welcome")
		require.NoError(t, err)

		assert.Equal(t, coupon.StatusAvailable, inst.Status)
		assert.Equal(t, userID, inst.UserID)
		assert.Equal(t, master.ID, inst.CouponID)
		assert.Equal(t, clk.Now(), inst.IssuedDate)
		assert.Equal(t, int32(1), uow.master(master.ID).UsedCount)
		assert.NotNil(t, uow.instance(inst.ID))
	})

	t.Run("second registration fails and increments the counter exactly once", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		master := testMaster(nil)
		uow.seedMaster(master)
		userID := uuid.New()

		_, err := cmds.RegisterByCode(ctx, userID, "WELCOME")
		require.NoError(t, err)

		_, err = cmds.RegisterByCode(ctx, userID, "WELCOME")
		assert.ErrorIs(t, err, errs.ErrCouponAlreadyRegistered)
		assert.Equal(t, int32(1), uow.master(master.ID).UsedCount)
	})

	t.Run("unknown and malformed codes fail NotFound", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)

		for _, code := range []string{"NOSUCH", "!!", ""} {
			_, err := cmds.RegisterByCode(ctx, uuid.New(), code)
			assert.ErrorIs(t, err, errs.ErrCouponNotFound, code)
		}
	})

	t.Run("inactive and direct-assign masters are invisible to code lookup", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		uow.seedMaster(testMaster(func(m *coupon.Coupon) { m.IsActive = false }))

		_, err := cmds.RegisterByCode(ctx, uuid.New(), "WELCOME")
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})

	t.Run("usage limit reached fails LimitExceeded", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		limit := int32(1)
		master := testMaster(func(m *coupon.Coupon) { m.UsageLimit = &limit })
		uow.seedMaster(master)

		_, err := cmds.RegisterByCode(ctx, uuid.New(), "WELCOME")
		require.NoError(t, err)

		_, err = cmds.RegisterByCode(ctx, uuid.New(), "WELCOME")
		assert.ErrorIs(t, err, errs.ErrCouponLimitExceeded)
		assert.Equal(t, int32(1), uow.master(master.ID).UsedCount)
	})

	t.Run("expired master fails Expired", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		uow.seedMaster(testMaster(func(m *coupon.Coupon) {
			m.ExpiryDate = time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
		}))

		_, err := cmds.RegisterByCode(ctx, uuid.New(), "WELCOME")
		assert.ErrorIs(t, err, errs.ErrCouponExpired)
	})

	t.Run("only one of N concurrent registrations wins a limit of one", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		limit := int32(1)
		master := testMaster(func(m *coupon.Coupon) { m.UsageLimit = &limit })
		uow.seedMaster(master)

		const n = 8
		results := make([]error, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, results[i] = cmds.RegisterByCode(ctx, uuid.New(), "WELCOME")
			}(i)
		}
		wg.Wait()

		var successes, limited int
		for _, err := range results {
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, errs.ErrCouponLimitExceeded):
				limited++
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, n-1, limited)
		assert.Equal(t, int32(1), uow.master(master.ID).UsedCount)
	})
}

func TestIssueDirect(t *testing.T) {
	ctx := context.Background()

	t.Run("issues without touching the registration counter", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		master := testMaster(func(m *coupon.Coupon) { m.IsDirectAssign = true; m.Code = nil })
		uow.seedMaster(master)
		userID := uuid.New()

		inst, err := cmds.IssueDirect(ctx, userID, master.ID)
		require.NoError(t, err)

		assert.Equal(t, coupon.StatusAvailable, inst.Status)
		assert.Equal(t, int32(0), uow.master(master.ID).UsedCount)
	})

	t.Run("inactive master fails Forbidden", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		master := testMaster(func(m *coupon.Coupon) { m.IsActive = false })
		uow.seedMaster(master)

		_, err := cmds.IssueDirect(ctx, uuid.New(), master.ID)
		assert.ErrorIs(t, err, errs.ErrCouponForbidden)
	})

	t.Run("duplicate issuance fails AlreadyRegistered", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		master := testMaster(nil)
		uow.seedMaster(master)
		userID := uuid.New()

		_, err := cmds.IssueDirect(ctx, userID, master.ID)
		require.NoError(t, err)

		_, err = cmds.IssueDirect(ctx, userID, master.ID)
		assert.ErrorIs(t, err, errs.ErrCouponAlreadyRegistered)
	})

	t.Run("unknown coupon fails NotFound", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)

		_, err := cmds.IssueDirect(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})
}

func TestCouponUse(t *testing.T) {
	ctx := context.Background()

	seedAvailable := func(uow *fakeUoW, userID uuid.UUID, mutate func(*coupon.Coupon)) *coupon.Instance {
		master := testMaster(mutate)
		uow.seedMaster(master)
		inst := coupon.NewInstance(userID, master.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
		uow.seedInstance(inst)
		return inst
	}

	t.Run("available coupon transitions to used", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, clk := newCouponCommands(uow)
		userID := uuid.New()
		inst := seedAvailable(uow, userID, nil)

		require.NoError(t, cmds.Use(ctx, userID, inst.ID, "ORD-1"))

		stored := uow.instance(inst.ID)
		assert.Equal(t, coupon.StatusUsed, stored.Status)
		require.NotNil(t, stored.OrderID)
		assert.Equal(t, "ORD-1", *stored.OrderID)
		require.NotNil(t, stored.UsedDate)
		assert.Equal(t, clk.Now(), *stored.UsedDate)
	})

	t.Run("unknown instance fails NotFound", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)

		err := cmds.Use(ctx, uuid.New(), uuid.New(), "ORD-1")
		assert.ErrorIs(t, err, errs.ErrUserCouponNotFound)
	})

	t.Run("non-owner fails Forbidden", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		inst := seedAvailable(uow, uuid.New(), nil)

		err := cmds.Use(ctx, uuid.New(), inst.ID, "ORD-1")
		assert.ErrorIs(t, err, errs.ErrCouponForbidden)
		assert.Equal(t, coupon.StatusAvailable, uow.instance(inst.ID).Status)
	})

	t.Run("used coupon fails InvalidState", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		userID := uuid.New()
		inst := seedAvailable(uow, userID, nil)
		require.NoError(t, cmds.Use(ctx, userID, inst.ID, "ORD-1"))

		err := cmds.Use(ctx, userID, inst.ID, "ORD-2")
		assert.ErrorIs(t, err, errs.ErrCouponInvalidState)
	})

	t.Run("lazy expiry commits the transition and reports Expired", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, clk := newCouponCommands(uow)
		userID := uuid.New()
		inst := seedAvailable(uow, userID, func(m *coupon.Coupon) {
			m.ExpiryDate = time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
		})

		err := cmds.Use(ctx, userID, inst.ID, "ORD-1")
		require.ErrorIs(t, err, errs.ErrCouponExpired)

		stored := uow.instance(inst.ID)
		assert.Equal(t, coupon.StatusExpired, stored.Status)
		require.NotNil(t, stored.ExpiredDate)
		assert.Equal(t, clk.Now(), *stored.ExpiredDate)
		assert.Nil(t, stored.OrderID)
	})
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("restores a used coupon to its pre-use state", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		userID := uuid.New()
		master := testMaster(nil)
		uow.seedMaster(master)
		inst := coupon.NewInstance(userID, master.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
		uow.seedInstance(inst)
		require.NoError(t, cmds.Use(ctx, userID, inst.ID, "ORD-1"))

		require.NoError(t, cmds.Restore(ctx, inst.ID, "ORD-1"))

		stored := uow.instance(inst.ID)
		assert.Equal(t, coupon.StatusAvailable, stored.Status)
		assert.Nil(t, stored.UsedDate)
		assert.Nil(t, stored.OrderID)
	})

	t.Run("second restore fails InvalidState without altering state", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		userID := uuid.New()
		master := testMaster(nil)
		uow.seedMaster(master)
		inst := coupon.NewInstance(userID, master.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
		uow.seedInstance(inst)
		require.NoError(t, cmds.Use(ctx, userID, inst.ID, "ORD-1"))
		require.NoError(t, cmds.Restore(ctx, inst.ID, "ORD-1"))

		err := cmds.Restore(ctx, inst.ID, "ORD-1")
		assert.ErrorIs(t, err, errs.ErrCouponInvalidState)
		assert.Equal(t, coupon.StatusAvailable, uow.instance(inst.ID).Status)
	})

	t.Run("restore for the wrong order fails InvalidState", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)
		userID := uuid.New()
		master := testMaster(nil)
		uow.seedMaster(master)
		inst := coupon.NewInstance(userID, master.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
		uow.seedInstance(inst)
		require.NoError(t, cmds.Use(ctx, userID, inst.ID, "ORD-1"))

		err := cmds.Restore(ctx, inst.ID, "ORD-9")
		assert.ErrorIs(t, err, errs.ErrCouponInvalidState)
		assert.Equal(t, coupon.StatusUsed, uow.instance(inst.ID).Status)
	})
}

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()
	pastExpiry := func(m *coupon.Coupon) {
		m.ExpiryDate = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	}

	t.Run("expires stale available instances and is a no-op on re-run", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newCouponCommands(uow)

		staleMaster := testMaster(pastExpiry)
		uow.seedMaster(staleMaster)
		stale := coupon.NewInstance(uuid.New(), staleMaster.ID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
		uow.seedInstance(stale)

		freshMaster := testMaster(nil)
		uow.seedMaster(freshMaster)
		fresh := coupon.NewInstance(uuid.New(), freshMaster.ID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
		uow.seedInstance(fresh)

		used := coupon.NewInstance(uuid.New(), staleMaster.ID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, used.Use("ORD-1", time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)))
		uow.seedInstance(used)

		count, err := cmds.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		assert.Equal(t, coupon.StatusExpired, uow.instance(stale.ID).Status)
		assert.Equal(t, coupon.StatusAvailable, uow.instance(fresh.ID).Status)
		assert.Equal(t, coupon.StatusUsed, uow.instance(used.ID).Status)

		count, err = cmds.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("processes more instances than one batch", func(t *testing.T) {
		uow := newFakeUoW()
		clk := clock.NewMockClock(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))
		cfg := config.NewTestConfig()
		cfg.Loyalty.SweepBatchSize = 2
		cmds := commands.NewCouponCommands(uow, clk, cfg)

		master := testMaster(pastExpiry)
		uow.seedMaster(master)
		for i := 0; i < 5; i++ {
			uow.seedInstance(coupon.NewInstance(uuid.New(), master.ID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
		}

		count, err := cmds.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})
}
