//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pcapi/internal/domain/reimbursement"
	"pcapi/internal/handler/api"
	resdto "pcapi/internal/handler/dto/response"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase/commands"
	"pcapi/internal/usecase/queries"
	"pcapi/tests/common/httptest"
	commandsmock "pcapi/tests/mock/commands"
	queriesmock "pcapi/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReimbursementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCmds    *commandsmock.MockReimbursementCommands
	mockQueries *queriesmock.MockReimbursementQueries
}

func (s *ReimbursementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockReimbursementCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReimbursementQueries(s.mockCtrl)

	h := api.NewReimbursementHandler(s.mockCmds, s.mockQueries)
	s.router.GET("/rules", h.ListRules)
	s.router.POST("/rules", h.CreateRule)
	s.router.POST("/rules/:id/close", h.CloseRule)
	s.router.GET("/bookings/:id/reimbursement", h.ComputeReimbursement)
	s.router.POST("/reimbursements", h.Reimburse)
}

func (s *ReimbursementHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReimbursementHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReimbursementHandlerTestSuite))
}

func (s *ReimbursementHandlerTestSuite) TestCreateRule() {
	offerID := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Run("success: builds the input from the body", func() {
		amount := decimal.RequireFromString("5.5")
		want := commands.CreateCustomRuleInput{OfferID: &offerID, Amount: &amount, ValidFrom: &from}
		ruleID := uuid.New()

		s.mockCmds.EXPECT().CreateCustomRule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateCustomRuleInput) (*queries.CustomRuleView, error) {
				opts := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
				s.Empty(cmp.Diff(want, in, opts))
				return &queries.CustomRuleView{ID: ruleID, OfferID: &offerID, Amount: &amount, ValidFrom: from}, nil
			}).Times(1)

		body := map[string]any{"offerId": offerID.String(), "amount": "5.5", "validFrom": from.Format(time.RFC3339)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rules", body, "")

		var response resdto.CustomRuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(ruleID, response.ID)
	})

	s.Run("error: 400 without a start", func() {
		body := map[string]any{"offerId": offerID.String(), "amount": "5.5"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rules", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps rule errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "overlap", err: errs.Wrap(reimbursement.ErrRuleOverlap, "create rule"), status: http.StatusConflict, code: "ruleOverlap"},
			{name: "both scopes", err: reimbursement.ErrScopeRequired, status: http.StatusBadRequest, code: "scopeRequired"},
			{name: "rate above one", err: reimbursement.ErrRateOutOfRange, status: http.StatusBadRequest, code: "rateOutOfRange"},
			{name: "unknown offer", err: errs.Mark(errs.New("fk"), errs.ErrOfferNotFound), status: http.StatusNotFound, code: "offerNotFound"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCmds.EXPECT().CreateCustomRule(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				body := map[string]any{"offerId": offerID.String(), "rate": "0.9", "validFrom": from.Format(time.RFC3339)}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rules", body, "")
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *ReimbursementHandlerTestSuite) TestCloseRule() {
	ruleID := uuid.New()
	until := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	s.Run("error: 400 when closing in the past", func() {
		s.mockCmds.EXPECT().CloseCustomRule(gomock.Any(), ruleID, until).Return(nil, reimbursement.ErrCloseInPast).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rules/"+ruleID.String()+"/close",
			map[string]any{"validUntil": until.Format(time.RFC3339)}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "closeInPast")
	})

	s.Run("error: 404 on an unknown rule", func() {
		s.mockCmds.EXPECT().CloseCustomRule(gomock.Any(), ruleID, until).Return(nil, errs.ErrRuleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/rules/"+ruleID.String()+"/close",
			map[string]any{"validUntil": until.Format(time.RFC3339)}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "ruleNotFound")
	})
}

func (s *ReimbursementHandlerTestSuite) TestListRules() {
	s.Run("error: 400 without an offerer id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rules", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalidId")
	})

	s.Run("success: returns an empty array when there are no rules", func() {
		offererID := uuid.New()
		s.mockQueries.EXPECT().ListCustomRules(gomock.Any(), offererID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rules?offererId="+offererID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *ReimbursementHandlerTestSuite) TestComputeReimbursement() {
	bookingID := uuid.New()

	s.Run("success: fallback rule has no id", func() {
		s.mockQueries.EXPECT().ComputeReimbursement(gomock.Any(), bookingID).Return(&queries.ReimbursementView{
			BookingID:       bookingID,
			Status:          "USED",
			TotalAmount:     decimal.NewFromInt(20),
			Amount:          decimal.NewFromInt(20),
			RuleDescription: "Remboursement total",
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String()+"/reimbursement", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotContains(response, "ruleId")
		s.Equal("20", response["amount"])
	})

	s.Run("error: 409 on a booking that was not used", func() {
		s.mockQueries.EXPECT().ComputeReimbursement(gomock.Any(), bookingID).Return(nil, queries.ErrNotReimbursable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String()+"/reimbursement", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "bookingNotReimbursable")
	})
}

func (s *ReimbursementHandlerTestSuite) TestReimburse() {
	s.Run("success: reports failed bookings", func() {
		offererID := uuid.New()
		cutoff := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		failed := uuid.New()
		s.mockCmds.EXPECT().ReimburseBookings(gomock.Any(), offererID, cutoff).Return(&commands.ReimbursementSummary{
			Reimbursed: 3,
			Failed:     []uuid.UUID{failed},
			Total:      decimal.RequireFromString("42.5"),
		}, nil).Times(1)

		body := map[string]any{"offererId": offererID.String(), "cutoff": cutoff.Format(time.RFC3339)}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reimbursements", body, "")

		var response resdto.ReimbursementRunResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Reimbursed)
		s.Equal([]uuid.UUID{failed}, response.Failed)
	})
}
