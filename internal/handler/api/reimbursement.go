package api

import (
	"net/http"

	reqdto "pcapi/internal/handler/dto/request"
	resdto "pcapi/internal/handler/dto/response"
	"pcapi/internal/handler/httperr"
	"pcapi/internal/usecase/commands"
	"pcapi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReimbursementHandler struct {
	cmds commands.ReimbursementCommands
	q    queries.ReimbursementQueries
}

func NewReimbursementHandler(cmds commands.ReimbursementCommands, q queries.ReimbursementQueries) *ReimbursementHandler {
	return &ReimbursementHandler{cmds: cmds, q: q}
}

// @Summary List custom reimbursement rules
// @Description Rules of the offerer and of its offers
// @Tags reimbursement
// @Produce json
// @Security BearerAuth
// @Param offererId query string true "Offerer ID"
// @Success 200 {array} resdto.CustomRuleResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/reimbursement-rules [get]
func (h *ReimbursementHandler) ListRules(c *gin.Context) {
	offererID, err := uuid.Parse(c.Query("offererId"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "invalidId", "Invalid offerer id", nil)
		return
	}
	views, err := h.q.ListCustomRules(c.Request.Context(), offererID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomRuleViews(views))
}

// @Summary Create custom reimbursement rule
// @Description Scoped to one offer, or to an offerer with optional subcategories. Must not overlap a rule of the same scope.
// @Tags reimbursement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomRuleRequest true "Rule"
// @Success 201 {object} resdto.CustomRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reimbursement-rules [post]
func (h *ReimbursementHandler) CreateRule(c *gin.Context) {
	var req reqdto.CreateCustomRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateCustomRule(c.Request.Context(), commands.CreateCustomRuleInput{
		OfferID:       req.OfferID,
		OffererID:     req.OffererID,
		Subcategories: req.Subcategories,
		Amount:        req.Amount,
		Rate:          req.Rate,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
	})
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCustomRuleView(view))
}

// @Summary Close custom reimbursement rule
// @Description Set the end of a rule. The end cannot be before now nor before the start.
// @Tags reimbursement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.CloseCustomRuleRequest true "End date"
// @Success 200 {object} resdto.CustomRuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reimbursement-rules/{id}/close [post]
func (h *ReimbursementHandler) CloseRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "invalidId", "Invalid rule id", nil)
		return
	}
	var req reqdto.CloseCustomRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CloseCustomRule(c.Request.Context(), id, req.ValidUntil)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomRuleView(view))
}

// @Summary Compute booking reimbursement
// @Description Amount the offerer would be paid for a used booking, and the rule chosen
// @Tags reimbursement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ReimbursementResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/reimbursement [get]
func (h *ReimbursementHandler) ComputeReimbursement(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.ComputeReimbursement(c.Request.Context(), id)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReimbursementView(view))
}

// @Summary Reimburse bookings
// @Description Mark the offerer's bookings used before cutoff as reimbursed
// @Tags reimbursement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReimburseRequest true "Offerer and cutoff"
// @Success 200 {object} resdto.ReimbursementRunResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/reimbursements [post]
func (h *ReimbursementHandler) Reimburse(c *gin.Context) {
	var req reqdto.ReimburseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	summary, err := h.cmds.ReimburseBookings(c.Request.Context(), req.OffererID, req.Cutoff)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReimbursementSummary(summary))
}
