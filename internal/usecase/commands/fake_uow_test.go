//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"loyalty-core/internal/domain/coupon"
	"loyalty-core/internal/domain/order"
	"loyalty-core/internal/domain/point"
	"loyalty-core/internal/infra"
	"loyalty-core/internal/infra/db"
	"loyalty-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW is an in-memory UnitOfWork. Each Within call holds the mutex for
// the whole transaction, which models the per-row serialization the real
// store gets from FOR UPDATE locks, and restores a snapshot on error, which
// models rollback.
type fakeUoW struct {
	mu    sync.Mutex
	state *fakeState
}

type fakeState struct {
	balances  map[uuid.UUID]int64
	entries   []point.Entry
	masters   map[uuid.UUID]*coupon.Coupon
	instances map[uuid.UUID]*coupon.Instance
	orders    map[string]*order.Order
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		state: &fakeState{
			balances:  make(map[uuid.UUID]int64),
			masters:   make(map[uuid.UUID]*coupon.Coupon),
			instances: make(map[uuid.UUID]*coupon.Instance),
			orders:    make(map[string]*order.Order),
		},
	}
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		balances:  make(map[uuid.UUID]int64, len(s.balances)),
		entries:   make([]point.Entry, len(s.entries)),
		masters:   make(map[uuid.UUID]*coupon.Coupon, len(s.masters)),
		instances: make(map[uuid.UUID]*coupon.Instance, len(s.instances)),
		orders:    make(map[string]*order.Order, len(s.orders)),
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	copy(c.entries, s.entries)
	for k, v := range s.masters {
		m := *v
		c.masters[k] = &m
	}
	for k, v := range s.instances {
		i := *v
		c.instances[k] = &i
	}
	for k, v := range s.orders {
		o := *v
		c.orders[k] = &o
	}
	return c
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := u.state.clone()
	if err := fn(ctx, &fakeTx{state: u.state}); err != nil {
		u.state = snapshot
		return err
	}
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

// seed helpers mutate state directly, outside any transaction.

func (u *fakeUoW) seedBalance(userID uuid.UUID, balance int64) {
	u.state.balances[userID] = balance
}

func (u *fakeUoW) seedMaster(m *coupon.Coupon) {
	cp := *m
	u.state.masters[m.ID] = &cp
}

func (u *fakeUoW) seedInstance(inst *coupon.Instance) {
	cp := *inst
	u.state.instances[inst.ID] = &cp
}

func (u *fakeUoW) seedOrder(o *order.Order) {
	cp := *o
	u.state.orders[o.ID] = &cp
}

func (u *fakeUoW) balance(userID uuid.UUID) int64 {
	return u.state.balances[userID]
}

func (u *fakeUoW) entriesFor(userID uuid.UUID) []point.Entry {
	var out []point.Entry
	for _, e := range u.state.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (u *fakeUoW) master(id uuid.UUID) *coupon.Coupon {
	return u.state.masters[id]
}

func (u *fakeUoW) instance(id uuid.UUID) *coupon.Instance {
	return u.state.instances[id]
}

func (u *fakeUoW) order(id string) *order.Order {
	return u.state.orders[id]
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Points() shared.PointRepository   { return &fakePointRepo{state: t.state} }
func (t *fakeTx) Coupons() shared.CouponRepository { return &fakeCouponRepo{state: t.state} }
func (t *fakeTx) Orders() shared.OrderRepository   { return &fakeOrderRepo{state: t.state} }
func (t *fakeTx) DB() db.DBTX                      { return nil }

var errFakeNotFound = errors.New("no rows")

type fakePointRepo struct {
	state *fakeState
}

func (r *fakePointRepo) BalanceForUpdate(_ context.Context, userID uuid.UUID) (point.Balance, error) {
	b, ok := r.state.balances[userID]
	if !ok {
		return 0, infra.WrapRepoErr("point balance not found", errFakeNotFound, infra.KindNotFound)
	}
	return point.Balance(b), nil
}

func (r *fakePointRepo) CreateBalance(_ context.Context, userID uuid.UUID, balance point.Balance, _ time.Time) error {
	if _, ok := r.state.balances[userID]; ok {
		return infra.WrapRepoErr("balance already exists", nil, infra.KindDuplicateKey)
	}
	r.state.balances[userID] = balance.Int64()
	return nil
}

func (r *fakePointRepo) UpdateBalance(_ context.Context, userID uuid.UUID, balance point.Balance, _ time.Time) error {
	if _, ok := r.state.balances[userID]; !ok {
		return infra.WrapRepoErr("point balance not found", errFakeNotFound, infra.KindNotFound)
	}
	r.state.balances[userID] = balance.Int64()
	return nil
}

func (r *fakePointRepo) InsertEntry(_ context.Context, entry *point.Entry) error {
	r.state.entries = append(r.state.entries, *entry)
	return nil
}

type fakeCouponRepo struct {
	state *fakeState
}

func (r *fakeCouponRepo) FindByCodeForUpdate(_ context.Context, code coupon.Code) (*coupon.Coupon, error) {
	for _, m := range r.state.masters {
		if m.Code != nil && *m.Code == code && m.IsActive && !m.IsDirectAssign {
			cp := *m
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr("coupon not found", errFakeNotFound, infra.KindNotFound)
}

func (r *fakeCouponRepo) FindByID(_ context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	m, ok := r.state.masters[id]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", errFakeNotFound, infra.KindNotFound)
	}
	cp := *m
	return &cp, nil
}

func (r *fakeCouponRepo) IncrementUsedCount(_ context.Context, id uuid.UUID) error {
	m, ok := r.state.masters[id]
	if !ok {
		return infra.WrapRepoErr("coupon not found", errFakeNotFound, infra.KindNotFound)
	}
	m.UsedCount++
	return nil
}

func (r *fakeCouponRepo) InsertInstance(_ context.Context, inst *coupon.Instance) error {
	for _, existing := range r.state.instances {
		if existing.UserID == inst.UserID && existing.CouponID == inst.CouponID {
			return infra.WrapRepoErr("user coupon already exists", nil, infra.KindDuplicateKey)
		}
	}
	cp := *inst
	r.state.instances[inst.ID] = &cp
	return nil
}

func (r *fakeCouponRepo) InstanceForUpdate(_ context.Context, id uuid.UUID) (*coupon.Instance, error) {
	inst, ok := r.state.instances[id]
	if !ok {
		return nil, infra.WrapRepoErr("user coupon not found", errFakeNotFound, infra.KindNotFound)
	}
	cp := *inst
	return &cp, nil
}

func (r *fakeCouponRepo) UpdateInstance(_ context.Context, inst *coupon.Instance) error {
	if _, ok := r.state.instances[inst.ID]; !ok {
		return infra.WrapRepoErr("user coupon not found", errFakeNotFound, infra.KindNotFound)
	}
	cp := *inst
	r.state.instances[inst.ID] = &cp
	return nil
}

func (r *fakeCouponRepo) ExpirableInstanceIDs(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, inst := range r.state.instances {
		if inst.Status != coupon.StatusAvailable {
			continue
		}
		m, ok := r.state.masters[inst.CouponID]
		if !ok || !m.ExpiredAt(now) {
			continue
		}
		ids = append(ids, id)
		if len(ids) == limit {
			break
		}
	}
	return ids, nil
}

func (r *fakeCouponRepo) MarkExpired(_ context.Context, ids []uuid.UUID, now time.Time) (int64, error) {
	var count int64
	for _, id := range ids {
		inst, ok := r.state.instances[id]
		if !ok || inst.Status != coupon.StatusAvailable {
			continue
		}
		inst.Status = coupon.StatusExpired
		expiredAt := now
		inst.ExpiredDate = &expiredAt
		count++
	}
	return count, nil
}

type fakeOrderRepo struct {
	state *fakeState
}

func (r *fakeOrderRepo) FindForUpdate(_ context.Context, orderID string) (*order.Order, error) {
	o, ok := r.state.orders[orderID]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", errFakeNotFound, infra.KindNotFound)
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) MarkCancelled(_ context.Context, o *order.Order) error {
	if _, ok := r.state.orders[o.ID]; !ok {
		return infra.WrapRepoErr("order not found", errFakeNotFound, infra.KindNotFound)
	}
	cp := *o
	r.state.orders[o.ID] = &cp
	return nil
}
