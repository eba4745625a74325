package components

import (
	"loyalty-core/internal/infra/db"
	"loyalty-core/internal/infra/readstore"
	"loyalty-core/internal/infra/uow"
	"loyalty-core/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// RepositoryModule wires the write side (UnitOfWork owns its repositories,
// created per transaction) and the read stores, which run directly against
// the pool.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewPointReadStore,
			fx.As(new(queries.PointReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
