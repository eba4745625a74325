package shared

import (
	"context"
	"time"

	"loyalty-core/internal/domain/coupon"
	"loyalty-core/internal/domain/order"
	"loyalty-core/internal/domain/point"
	"loyalty-core/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Points() PointRepository
	Coupons() CouponRepository
	Orders() OrderRepository
	DB() db.DBTX
}

// PointRepository mutates the balance aggregate and its append-only history.
// BalanceForUpdate takes the row lock that serializes concurrent mutations
// for one user; every write method must be called under that lock.
type PointRepository interface {
	BalanceForUpdate(ctx context.Context, userID uuid.UUID) (point.Balance, error)
	CreateBalance(ctx context.Context, userID uuid.UUID, balance point.Balance, now time.Time) error
	UpdateBalance(ctx context.Context, userID uuid.UUID, balance point.Balance, now time.Time) error
	InsertEntry(ctx context.Context, entry *point.Entry) error
}

type CouponRepository interface {
	FindByCodeForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	IncrementUsedCount(ctx context.Context, id uuid.UUID) error
	InsertInstance(ctx context.Context, inst *coupon.Instance) error
	InstanceForUpdate(ctx context.Context, id uuid.UUID) (*coupon.Instance, error)
	UpdateInstance(ctx context.Context, inst *coupon.Instance) error
	// ExpirableInstanceIDs lists 사용가능 instances whose master expiry date
	// has passed, capped at limit for batch-sized sweep transactions.
	ExpirableInstanceIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	// MarkExpired only touches rows still in 사용가능, which keeps the sweep
	// idempotent under re-runs and partial failures.
	MarkExpired(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error)
}

type OrderRepository interface {
	FindForUpdate(ctx context.Context, orderID string) (*order.Order, error)
	MarkCancelled(ctx context.Context, o *order.Order) error
}
