//go:build e2e

package reimbursement_test

import (
	"net/http"
	"testing"
	"time"

	"pcapi/internal/domain/user"
	"pcapi/internal/handler/dto/request"
	"pcapi/internal/handler/dto/response"
	"pcapi/tests/common/authtest"
	"pcapi/tests/common/dbtest"
	"pcapi/tests/common/httptest"
	"pcapi/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	rulesURL          = "/api/admin/reimbursement-rules"
	reimbursementsURL = "/api/admin/reimbursements"
)

type reimbursementSuite struct {
	e2e.SharedSuite

	offerer    dbtest.OffererFixture
	adminToken string
}

func TestReimbursementSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reimbursementSuite))
}

func (s *reimbursementSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.offerer = dbtest.CreateOfferer(s.T(), s.DB, "Librairie des Lilas")
	s.adminToken = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

// usedBooking books stock as a fresh beneficiary and validates it.
func (s *reimbursementSuite) usedBooking(price string) uuid.UUID {
	t := s.T()
	stock := dbtest.CreateStock(t, s.DB, s.offerer, dbtest.StockFixture{Price: price, Subcategory: "LIVRE_PAPIER"})
	email := uuid.NewString() + "@example.com"
	dbtest.CreateBeneficiary(t, s.DB, email, "300")
	token := authtest.LoginUser(t, s.Router, email, "password123")

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
		request.CreateBookingRequest{StockID: stock.StockID, Quantity: 1}, token)
	var booked response.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booked)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings/"+booked.ID.String()+"/use",
		request.UseBookingRequest{Token: booked.Token}, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return booked.ID
}

func (s *reimbursementSuite) offererRule(rate string, from time.Time) request.CreateCustomRuleRequest {
	r := decimal.RequireFromString(rate)
	return request.CreateCustomRuleRequest{OffererID: &s.offerer.OffererID, Rate: &r, ValidFrom: &from}
}

func (s *reimbursementSuite) TestRules() {
	s.Run("offerer rule is created and listed", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, s.offererRule("0.95", time.Now().Add(-time.Hour)), s.adminToken)

		var rule response.CustomRuleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &rule)
		require.Equal(t, "Taux de remboursement : 95 %", rule.Description)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, rulesURL+"?offererId="+s.offerer.OffererID.String(), nil, s.adminToken)
		var rules []response.CustomRuleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rules)
		require.Len(t, rules, 1)
		require.Equal(t, rule.ID, rules[0].ID)
	})

	s.Run("overlapping rule on the same offerer", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, s.offererRule("0.95", time.Now().Add(-time.Hour)), s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, s.offererRule("0.5", time.Now()), s.adminToken)

		httptest.AssertErrorCode(t, w, http.StatusConflict, "ruleOverlap")
	})

	s.Run("rate above one", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, rulesURL, s.offererRule("1.5", time.Now()), s.adminToken)

		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "rateOutOfRange")
	})

	s.Run("closing a rule frees the following period", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, s.offererRule("0.95", time.Now().Add(-time.Hour)), s.adminToken)
		var rule response.CustomRuleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &rule)

		end := time.Now().Add(24 * time.Hour)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL+"/"+rule.ID.String()+"/close",
			request.CloseCustomRuleRequest{ValidUntil: end}, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, s.offererRule("0.5", end), s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("closing a rule later cannot reach into the following rule", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, s.offererRule("0.95", time.Now().Add(-time.Hour)), s.adminToken)
		var rule response.CustomRuleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &rule)
		closePath := rulesURL + "/" + rule.ID.String() + "/close"

		end := time.Now().Add(24 * time.Hour)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, closePath, request.CloseCustomRuleRequest{ValidUntil: end}, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, s.offererRule("0.5", end), s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, closePath,
			request.CloseCustomRuleRequest{ValidUntil: end.Add(48 * time.Hour)}, s.adminToken)

		httptest.AssertErrorCode(t, w, http.StatusConflict, "ruleOverlap")
	})
}

func (s *reimbursementSuite) TestReimburse() {
	s.Run("without custom rule the full price is due", func() {
		t := s.T()
		bookingID := s.usedBooking("10.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/bookings/"+bookingID.String()+"/reimbursement", nil, s.adminToken)

		var res response.ReimbursementResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "10", res.Amount.String())
		require.Nil(t, res.RuleID)
	})

	s.Run("offerer rule applies and the run marks bookings reimbursed", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rulesURL, s.offererRule("0.95", time.Now().Add(-time.Hour)), s.adminToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		first := s.usedBooking("10.00")
		s.usedBooking("20.00")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/bookings/"+first.String()+"/reimbursement", nil, s.adminToken)
		var res response.ReimbursementResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "9.5", res.Amount.String())
		require.NotNil(t, res.RuleID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reimbursementsURL,
			request.ReimburseRequest{OffererID: s.offerer.OffererID, Cutoff: time.Now().Add(time.Minute)}, s.adminToken)
		var run response.ReimbursementRunResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &run)
		require.Equal(t, 2, run.Reimbursed)
		require.Empty(t, run.Failed)
		require.Equal(t, "28.5", run.Total.String())

		var status string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM bookings WHERE id = $1", first).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "REIMBURSED", status)
	})

	s.Run("unused booking is not reimbursable", func() {
		t := s.T()
		stock := dbtest.CreateStock(t, s.DB, s.offerer, dbtest.StockFixture{})
		dbtest.CreateBeneficiary(t, s.DB, "jeune@example.com", "300")
		token := authtest.LoginUser(t, s.Router, "jeune@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/bookings",
			request.CreateBookingRequest{StockID: stock.StockID, Quantity: 1}, token)
		var booked response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booked)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/bookings/"+booked.ID.String()+"/reimbursement", nil, s.adminToken)

		httptest.AssertErrorCode(t, w, http.StatusConflict, "bookingNotReimbursable")
	})
}
