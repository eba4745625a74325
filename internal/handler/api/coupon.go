package api

import (
	"net/http"

	"loyalty-core/internal/domain/coupon"
	reqdto "loyalty-core/internal/handler/dto/request"
	resdto "loyalty-core/internal/handler/dto/response"
	"loyalty-core/internal/handler/httperr"
	"loyalty-core/internal/handler/middleware"
	"loyalty-core/internal/pkg/errs"
	"loyalty-core/internal/usecase/commands"
	"loyalty-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	commands commands.CouponCommands
	queries  queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, qrs queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Coupon actions
// @Description Action-dispatch endpoint for coupons: register, issue, use, list, cleanup
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CouponActionRequest true "Action request"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /coupon [post]
func (h *CouponHandler) Actions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error")
		return
	}

	var req reqdto.CouponActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	switch req.Action {
	case "register":
		h.register(c, userID, req)
	case "issue":
		h.issue(c, userID, req)
	case "use":
		h.use(c, userID, req)
	case "list":
		h.list(c, userID, req)
	case "cleanup":
		h.cleanup(c)
	}
}

func (h *CouponHandler) register(c *gin.Context, userID uuid.UUID, req reqdto.CouponActionRequest) {
	inst, err := h.commands.RegisterByCode(c.Request.Context(), userID, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.Created(c, resdto.FromInstance(inst))
}

func (h *CouponHandler) issue(c *gin.Context, userID uuid.UUID, req reqdto.CouponActionRequest) {
	inst, err := h.commands.IssueDirect(c.Request.Context(), userID, *req.CouponID)
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.Created(c, resdto.FromInstance(inst))
}

func (h *CouponHandler) use(c *gin.Context, userID uuid.UUID, req reqdto.CouponActionRequest) {
	if err := h.commands.Use(c.Request.Context(), userID, *req.UserCouponID, req.OrderID); err != nil {
		respondError(c, err)
		return
	}
	httperr.OK(c, resdto.UseCouponResponse{
		UserCouponID: *req.UserCouponID,
		OrderID:      req.OrderID,
		Status:       coupon.StatusUsed.String(),
	})
}

func (h *CouponHandler) list(c *gin.Context, userID uuid.UUID, req reqdto.CouponActionRequest) {
	status, err := req.StatusFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon status filter")
		return
	}

	views, err := h.queries.ListUserCoupons(c.Request.Context(), userID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]*resdto.UserCouponListItemResponse, len(views))
	for i := range views {
		items[i] = resdto.FromUserCouponView(&views[i])
	}
	httperr.OK(c, items)
}

func (h *CouponHandler) cleanup(c *gin.Context) {
	count, err := h.commands.SweepExpired(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.OK(c, resdto.SweepResponse{ExpiredCount: count})
}
