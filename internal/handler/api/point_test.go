//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"loyalty-core/internal/handler/api"
	"loyalty-core/internal/pkg/errs"
	"loyalty-core/internal/usecase/queries"
	commandsmock "loyalty-core/tests/mock/commands"
	queriesmock "loyalty-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TestMain applies the same decoder settings main switches on at startup, so
// every handler test runs against the strict JSON decoder the service uses
// in production.
func TestMain(m *testing.M) {
	gin.EnableJsonDecoderDisallowUnknownFields()
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(userID uuid.UUID, register func(*gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authed := router.Group("")
	authed.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Access token required"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	})
	register(authed)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	buf, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type PointHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPointCommands
	mockQueries  *queriesmock.MockPointQueries
	userID       uuid.UUID
}

func (s *PointHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPointCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPointQueries(s.mockCtrl)
	s.userID = uuid.New()

	handler := api.NewPointHandler(s.mockCommands, s.mockQueries)
	s.router = newTestRouter(s.userID, func(g *gin.RouterGroup) {
		g.POST("/points", handler.Actions)
	})
}

func (s *PointHandlerTestSuite) decode(w *httptest.ResponseRecorder) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (s *PointHandlerTestSuite) TestAddSuccess() {
	s.mockCommands.EXPECT().
		Earn(gomock.Any(), s.userID, int64(500), "review reward", nil).
		Return(int64(5500), nil)

	w := postJSON(s.router, "/points", gin.H{
		"action":      "add",
		"amount":      500,
		"description": "review reward",
	})

	s.Equal(http.StatusOK, w.Code)
	env := s.decode(w)
	s.True(env.Success)
	s.JSONEq(`{"balance":5500}`, string(env.Data))
}

func (s *PointHandlerTestSuite) TestUseInsufficientBalance() {
	s.mockCommands.EXPECT().
		Use(gomock.Any(), s.userID, int64(9000), "ORD-1", "").
		Return(int64(0), errs.ErrInsufficientBalance)

	w := postJSON(s.router, "/points", gin.H{
		"action":  "use",
		"amount":  9000,
		"orderId": "ORD-1",
	})

	s.Equal(http.StatusConflict, w.Code)
	env := s.decode(w)
	s.False(env.Success)
	s.Equal("Insufficient point balance", env.Error)
}

func (s *PointHandlerTestSuite) TestBalanceUserNotFound() {
	s.mockQueries.EXPECT().
		GetBalance(gomock.Any(), s.userID).
		Return(nil, errs.ErrUserNotFound)

	w := postJSON(s.router, "/points", gin.H{"action": "balance"})

	s.Equal(http.StatusNotFound, w.Code)
	s.False(s.decode(w).Success)
}

func (s *PointHandlerTestSuite) TestHistory() {
	s.mockQueries.EXPECT().
		GetHistory(gomock.Any(), s.userID, 10, "").
		Return(&queries.HistoryPage{HasMore: false}, nil)

	w := postJSON(s.router, "/points", gin.H{
		"action":   "history",
		"pageSize": 10,
	})

	s.Equal(http.StatusOK, w.Code)
	s.True(s.decode(w).Success)
}

func (s *PointHandlerTestSuite) TestUnknownFieldRejected() {
	w := postJSON(s.router, "/points", gin.H{
		"action":      "add",
		"amount":      500,
		"description": "review reward",
		"bogus":       true,
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.False(s.decode(w).Success)
}

func (s *PointHandlerTestSuite) TestUnknownActionRejected() {
	w := postJSON(s.router, "/points", gin.H{"action": "transfer"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.False(s.decode(w).Success)
}

func (s *PointHandlerTestSuite) TestMissingAmountRejected() {
	w := postJSON(s.router, "/points", gin.H{"action": "add", "description": "x"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PointHandlerTestSuite) TestUnauthenticated() {
	buf, _ := json.Marshal(gin.H{"action": "balance"})
	req := httptest.NewRequest(http.MethodPost, "/points", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestPointHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PointHandlerTestSuite))
}
