package request

import "loyalty-core/internal/pkg/errs"

// Point actions share one endpoint, so the request declares the discriminator
// plus every action's payload fields. The JSON decoder runs with unknown
// fields disallowed (see cmd/main.go), which means the one bound type must
// cover all actions; per-action requirements are enforced in Validate.

type PointActionRequest struct {
	Action      string  `json:"action" binding:"required,oneof=add refund use balance history"`
	Amount      int64   `json:"amount,omitempty"`
	Description string  `json:"description,omitempty"`
	OrderID     *string `json:"orderId,omitempty"`
	PageSize    int     `json:"pageSize,omitempty"`
	Cursor      string  `json:"cursor,omitempty"`
}

func (r PointActionRequest) Validate() error {
	switch r.Action {
	case "add":
		if r.Amount <= 0 {
			return validationErr("amount must be positive")
		}
		if r.Description == "" {
			return validationErr("description is required")
		}
	case "use", "refund":
		if r.Amount <= 0 {
			return validationErr("amount must be positive")
		}
		if r.OrderID == nil || *r.OrderID == "" {
			return validationErr("orderId is required")
		}
	case "history":
		if r.PageSize < 0 {
			return validationErr("pageSize must be positive")
		}
	}
	return nil
}

func validationErr(msg string) error {
	return errs.Mark(errs.New(msg), errs.ErrDomainValidation)
}
