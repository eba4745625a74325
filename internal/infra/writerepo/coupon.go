package writerepo

import (
	"context"
	"time"

	"loyalty-core/internal/domain/coupon"
	"loyalty-core/internal/infra"
	"loyalty-core/internal/infra/db"
	"loyalty-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

const couponColumns = `id, code, name, type, value, min_order_amount,
	usage_limit, used_count, is_active, is_direct_assign, expiry_date`

// FindByCodeForUpdate locks the master row so the usage-limit check and the
// used_count increment commit as one unit; concurrent registrations of the
// same code queue behind the lock.
func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+`
		 FROM coupons
		 WHERE upper(code) = $1 AND is_active AND NOT is_direct_assign
		 FOR UPDATE`,
		code.String(),
	)
	return scanCoupon(row)
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE id = $1`,
		id,
	)
	return scanCoupon(row)
}

func (r *CouponRepository) IncrementUsedCount(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE coupons SET used_count = used_count + 1 WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon used count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) InsertInstance(ctx context.Context, inst *coupon.Instance) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_coupons
		   (id, user_id, coupon_id, status, issued_date, used_date, expired_date, order_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		inst.ID,
		inst.UserID,
		inst.CouponID,
		inst.Status.String(),
		inst.IssuedDate,
		pgconv.TimePtrToPgtype(inst.UsedDate),
		pgconv.TimePtrToPgtype(inst.ExpiredDate),
		pgconv.StringPtrToPgtype(inst.OrderID),
	)
	if err != nil {
		// Unique (user_id, coupon_id) violation means the pair already holds
		// an instance; the service reports AlreadyRegistered.
		return infra.WrapRepoErr("failed to insert user coupon", err)
	}
	return nil
}

func (r *CouponRepository) InstanceForUpdate(ctx context.Context, id uuid.UUID) (*coupon.Instance, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, coupon_id, status, issued_date, used_date, expired_date, order_id
		 FROM user_coupons WHERE id = $1 FOR UPDATE`,
		id,
	)
	return scanInstance(row)
}

func (r *CouponRepository) UpdateInstance(ctx context.Context, inst *coupon.Instance) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE user_coupons
		 SET status = $2, used_date = $3, expired_date = $4, order_id = $5
		 WHERE id = $1`,
		inst.ID,
		inst.Status.String(),
		pgconv.TimePtrToPgtype(inst.UsedDate),
		pgconv.TimePtrToPgtype(inst.ExpiredDate),
		pgconv.StringPtrToPgtype(inst.OrderID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) ExpirableInstanceIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT uc.id
		 FROM user_coupons uc
		 JOIN coupons c ON c.id = uc.coupon_id
		 WHERE uc.status = $1 AND c.expiry_date < $2::date
		 ORDER BY uc.id
		 LIMIT $3`,
		coupon.StatusAvailable.String(), now, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expirable user coupons", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expirable user coupon id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expirable user coupons", err)
	}
	return ids, nil
}

// MarkExpired filters on status again so that a re-run after a partial
// failure, or a concurrent Use, leaves already-transitioned rows alone.
func (r *CouponRepository) MarkExpired(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE user_coupons
		 SET status = $1, expired_date = $2
		 WHERE id = ANY($3) AND status = $4`,
		coupon.StatusExpired.String(), now, ids, coupon.StatusAvailable.String(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark user coupons expired", err)
	}
	return tag.RowsAffected(), nil
}

func scanCoupon(row pgx.Row) (*coupon.Coupon, error) {
	var (
		c              coupon.Coupon
		code           pgtype.Text
		couponType     string
		minOrderAmount pgtype.Numeric
		usageLimit     pgtype.Int4
	)
	err := row.Scan(
		&c.ID, &code, &c.Name, &couponType, &c.Value, &minOrderAmount,
		&usageLimit, &c.UsedCount, &c.IsActive, &c.IsDirectAssign, &c.ExpiryDate,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan coupon", err)
	}

	if code.Valid {
		normalized, err := coupon.NewCode(code.String)
		if err != nil {
			return nil, infra.WrapRepoErr("stored coupon code is malformed", err)
		}
		c.Code = &normalized
	}

	typ, err := coupon.NewType(couponType)
	if err != nil {
		return nil, infra.WrapRepoErr("stored coupon type is malformed", err)
	}
	c.Type = typ

	c.MinOrderAmount, err = pgconv.Float64PtrFromNumeric(minOrderAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert min order amount", err)
	}
	c.UsageLimit = pgconv.Int32PtrFromPgtype(usageLimit)

	return &c, nil
}

func scanInstance(row pgx.Row) (*coupon.Instance, error) {
	var (
		inst        coupon.Instance
		status      string
		usedDate    pgtype.Timestamptz
		expiredDate pgtype.Timestamptz
		orderID     pgtype.Text
	)
	err := row.Scan(
		&inst.ID, &inst.UserID, &inst.CouponID, &status,
		&inst.IssuedDate, &usedDate, &expiredDate, &orderID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan user coupon", err)
	}

	st, err := coupon.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user coupon status is malformed", err)
	}
	inst.Status = st
	inst.UsedDate = pgconv.TimePtrFromPgtype(usedDate)
	inst.ExpiredDate = pgconv.TimePtrFromPgtype(expiredDate)
	inst.OrderID = pgconv.StringPtrFromPgtype(orderID)

	return &inst, nil
}
