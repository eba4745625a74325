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
	"github.com/google/uuid"
)

type PointHandler struct {
	commands commands.PointCommands
	queries  queries.PointQueries
}

func NewPointHandler(cmds commands.PointCommands, qrs queries.PointQueries) *PointHandler {
	return &PointHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Point ledger actions
// @Description Action-dispatch endpoint for the point ledger: add, refund, use, balance, history
// @Tags points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PointActionRequest true "Action request"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /points [post]
func (h *PointHandler) Actions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error")
		return
	}

	var req reqdto.PointActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	switch req.Action {
	case "add":
		h.add(c, userID, req)
	case "refund":
		h.refund(c, userID, req)
	case "use":
		h.use(c, userID, req)
	case "balance":
		h.balance(c, userID)
	case "history":
		h.history(c, userID, req)
	}
}

func (h *PointHandler) add(c *gin.Context, userID uuid.UUID, req reqdto.PointActionRequest) {
	balance, err := h.commands.Earn(c.Request.Context(), userID, req.Amount, req.Description, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.OK(c, resdto.BalanceResponse{Balance: balance})
}

func (h *PointHandler) refund(c *gin.Context, userID uuid.UUID, req reqdto.PointActionRequest) {
	balance, err := h.commands.Refund(c.Request.Context(), userID, req.Amount, *req.OrderID, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.OK(c, resdto.BalanceResponse{Balance: balance})
}

func (h *PointHandler) use(c *gin.Context, userID uuid.UUID, req reqdto.PointActionRequest) {
	balance, err := h.commands.Use(c.Request.Context(), userID, req.Amount, *req.OrderID, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.OK(c, resdto.BalanceResponse{Balance: balance})
}

func (h *PointHandler) balance(c *gin.Context, userID uuid.UUID) {
	view, err := h.queries.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.OK(c, resdto.FromBalanceView(view))
}

func (h *PointHandler) history(c *gin.Context, userID uuid.UUID, req reqdto.PointActionRequest) {
	page, err := h.queries.GetHistory(c.Request.Context(), userID, req.PageSize, req.Cursor)
	if err != nil {
		respondError(c, err)
		return
	}
	httperr.OK(c, resdto.FromHistoryPage(page))
}
