package point

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one append-only history record. BalanceAfter is the balance
// committed in the same transaction as the entry; it is an audit snapshot
// and is never recomputed afterwards.
type Entry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         EntryType
	Amount       int64
	Description  string
	OrderID      *string
	BalanceAfter int64
	OccurredAt   time.Time
}

func NewEntry(
	userID uuid.UUID,
	entryType EntryType,
	amount int64,
	description string,
	orderID *string,
	balanceAfter int64,
	occurredAt time.Time,
) (*Entry, error) {
	if _, err := NewEntryType(string(entryType)); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Entry{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         entryType,
		Amount:       amount,
		Description:  strings.TrimSpace(description),
		OrderID:      orderID,
		BalanceAfter: balanceAfter,
		OccurredAt:   occurredAt,
	}, nil
}
