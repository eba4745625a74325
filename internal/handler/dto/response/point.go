package response

import (
	"time"

	"loyalty-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

type HistoryEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Amount       int64     `json:"amount"`
	Description  string    `json:"description"`
	OrderID      *string   `json:"orderId,omitempty"`
	BalanceAfter int64     `json:"balanceAfter"`
	OccurredAt   time.Time `json:"occurredAt"`
}

type HistoryResponse struct {
	Entries    []HistoryEntryResponse `json:"entries"`
	NextCursor string                 `json:"nextCursor,omitempty"`
	HasMore    bool                   `json:"hasMore"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{Balance: v.Balance}
}

func FromHistoryPage(page *queries.HistoryPage) *HistoryResponse {
	entries := make([]HistoryEntryResponse, len(page.Entries))
	for i, e := range page.Entries {
		entries[i] = HistoryEntryResponse{
			ID:           e.ID,
			Type:         e.Type,
			Amount:       e.Amount,
			Description:  e.Description,
			OrderID:      e.OrderID,
			BalanceAfter: e.BalanceAfter,
			OccurredAt:   e.OccurredAt,
		}
	}
	return &HistoryResponse{
		Entries:    entries,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
}
