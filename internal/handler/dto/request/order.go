package request

type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required"`
}
