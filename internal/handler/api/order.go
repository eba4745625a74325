package api

import (
	"net/http"

	reqdto "loyalty-core/internal/handler/dto/request"
	resdto "loyalty-core/internal/handler/dto/response"
	"loyalty-core/internal/handler/httperr"
	"loyalty-core/internal/handler/middleware"
	"loyalty-core/internal/pkg/errs"
	"loyalty-core/internal/usecase/commands"
	"loyalty-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	commands commands.OrderCommands
	queries  queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, qrs queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Cancel order
// @Description Reverse the order's recorded point and coupon consumption, then mark it cancelled
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.CancelOrderRequest true "Cancellation reason"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error")
		return
	}

	orderID := c.Param("id")
	if orderID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errMissingOrderID, "Order ID is required")
		return
	}

	var req reqdto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.commands.CancelOrder(c.Request.Context(), userID, orderID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.OK(c, resdto.FromCancelResult(result))
}

// @Summary Get order
// @Description Read the compensation-relevant slice of one order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error")
		return
	}

	orderID := c.Param("id")

	view, err := h.queries.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.OK(c, resdto.FromOrderView(view))
}
