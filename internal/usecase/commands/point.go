package commands

import (
	"context"
	"errors"
	"time"

	"loyalty-core/internal/domain/point"
	"loyalty-core/internal/infra"
	"loyalty-core/internal/pkg/clock"
	"loyalty-core/internal/pkg/config"
	"loyalty-core/internal/pkg/errs"
	"loyalty-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// PointCommands owns every mutation of a user's point balance. Each
// operation is one transaction covering the balance row and exactly one
// history entry; neither is ever written without the other.
type PointCommands interface {
	// EnsureAccount creates the balance record with the signup grant. It is
	// invoked by the account-creation collaborator and is a no-op when the
	// record already exists.
	EnsureAccount(ctx context.Context, userID uuid.UUID) error
	Earn(ctx context.Context, userID uuid.UUID, amount int64, description string, orderID *string) (int64, error)
	Use(ctx context.Context, userID uuid.UUID, amount int64, orderID string, description string) (int64, error)
	Refund(ctx context.Context, userID uuid.UUID, amount int64, orderID string, description string) (int64, error)
}

type pointCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.LoyaltyConfig
}

func NewPointCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) PointCommands {
	return &pointCommandsImpl{
		uow:   uow,
		clock: clk,
		cfg:   cfg.Loyalty,
	}
}

func (p *pointCommandsImpl) EnsureAccount(ctx context.Context, userID uuid.UUID) error {
	now := p.clock.Now()
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Points().BalanceForUpdate(ctx, userID)
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		// The starting grant is the baseline, not a history entry; balance
		// reconstruction treats history as deltas on top of it.
		return tx.Points().CreateBalance(ctx, userID, point.Balance(p.cfg.SignupGrant), now)
	})
}

func (p *pointCommandsImpl) Earn(ctx context.Context, userID uuid.UUID, amount int64, description string, orderID *string) (int64, error) {
	return p.mutate(ctx, userID, point.EntryEarn, amount, description, orderID)
}

func (p *pointCommandsImpl) Use(ctx context.Context, userID uuid.UUID, amount int64, orderID string, description string) (int64, error) {
	if description == "" {
		description = "points used for order"
	}
	return p.mutate(ctx, userID, point.EntryUse, amount, description, &orderID)
}

func (p *pointCommandsImpl) Refund(ctx context.Context, userID uuid.UUID, amount int64, orderID string, description string) (int64, error) {
	if description == "" {
		description = "order cancelled"
	}
	return p.mutate(ctx, userID, point.EntryRefund, amount, description, &orderID)
}

func (p *pointCommandsImpl) mutate(ctx context.Context, userID uuid.UUID, entryType point.EntryType, amount int64, description string, orderID *string) (int64, error) {
	if amount <= 0 {
		return 0, errs.Mark(point.ErrInvalidAmount, errs.ErrDomainValidation)
	}

	now := p.clock.Now()
	var newBalance int64
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		newBalance, err = applyPointEntry(ctx, tx, now, userID, entryType, amount, description, orderID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// applyPointEntry performs the balance mutation and the matching history
// append inside the caller's transaction. The compensation workflow calls
// this directly so a refund commits atomically with the order status flip.
func applyPointEntry(
	ctx context.Context,
	tx shared.Tx,
	now time.Time,
	userID uuid.UUID,
	entryType point.EntryType,
	amount int64,
	description string,
	orderID *string,
) (int64, error) {
	balance, err := tx.Points().BalanceForUpdate(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.ErrUserNotFound
		}
		return 0, err
	}

	var newBalance point.Balance
	switch entryType {
	case point.EntryUse:
		newBalance, err = balance.Debit(amount)
	default:
		newBalance, err = balance.Credit(amount)
	}
	if err != nil {
		if errors.Is(err, point.ErrInsufficientBalance) {
			return 0, errs.ErrInsufficientBalance
		}
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	entry, err := point.NewEntry(userID, entryType, amount, description, orderID, newBalance.Int64(), now)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := tx.Points().UpdateBalance(ctx, userID, newBalance, now); err != nil {
		return 0, err
	}
	if err := tx.Points().InsertEntry(ctx, entry); err != nil {
		return 0, err
	}

	return newBalance.Int64(), nil
}
