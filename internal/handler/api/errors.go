package api

import (
	"errors"
	"net/http"

	"loyalty-core/internal/handler/httperr"
	"loyalty-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errMissingOrderID = errs.New("order id path parameter is required")

// respondError maps usecase sentinels to the HTTP contract. Conflict is
// reported as 409 after internal retries are exhausted; Unavailable as 503 so
// callers know the request is safe to retry verbatim.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
	case errors.Is(err, errs.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
	case errors.Is(err, errs.ErrUserCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User coupon not found")
	case errors.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
	case errors.Is(err, errs.ErrCouponForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Coupon is not available to this user")
	case errors.Is(err, errs.ErrOrderForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Order does not belong to this user")
	case errors.Is(err, errs.ErrInsufficientBalance):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient point balance")
	case errors.Is(err, errs.ErrCouponAlreadyRegistered):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon already registered")
	case errors.Is(err, errs.ErrCouponLimitExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon usage limit exceeded")
	case errors.Is(err, errs.ErrCouponInvalidState):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon is in the wrong state")
	case errors.Is(err, errs.ErrOrderInvalidState):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order cannot be cancelled in its current status")
	case errors.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request could not be completed, please retry")
	case errors.Is(err, errs.ErrCouponExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Coupon expired")
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
	case errors.Is(err, errs.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable, please retry")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
