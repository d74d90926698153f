package api

import (
	"context"
	"net/http"
	"strconv"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/user"
	reqdto "pcapi/internal/handler/dto/request"
	resdto "pcapi/internal/handler/dto/response"
	"pcapi/internal/handler/httperr"
	"pcapi/internal/handler/middleware"
	"pcapi/internal/usecase/commands"
	"pcapi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds   commands.BookingCommands
	q      queries.BookingQueries
	wallet queries.WalletQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, wallet queries.WalletQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, wallet: wallet}
}

// @Summary Book a stock
// @Description Book one place, or two for a duo offer. Fails when the stock is sold out or the wallet is too low.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.BookOffer(c.Request.Context(), actor.ID, req.StockID, req.Quantity)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusCreated, actor, id)
}

// @Summary List own bookings
// @Description List the caller's bookings, newest first, with keyset pagination
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListByUser(c.Request.Context(), actor.ID, cursor, limit)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Get booking
// @Description Beneficiaries see their own bookings, pro and admin accounts any booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	h.respondWithBooking(c, http.StatusOK, actor, id)
}

// @Summary Cancel booking
// @Description Cancel a pending or confirmed booking and give its quantity back to the stock
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	reason, err := req.ReasonOr(defaultCancellationReason(actor.Role))
	if err != nil {
		abortWithMappedError(c, err)
		return
	}

	if err := h.cmds.CancelBooking(c.Request.Context(), actor, id, reason); err != nil {
		abortWithMappedError(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusOK, actor, id)
}

// @Summary Mark booking as used
// @Description Validate the counter token of a confirmed booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UseBookingRequest true "Booking token"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/use [post]
func (h *BookingHandler) Use(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req reqdto.UseBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.MarkBookingAsUsed(c.Request.Context(), id, req.Token); err != nil {
		abortWithMappedError(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusOK, actor, id)
}

// @Summary Mark booking as unused
// @Description Bring a used booking back to confirmed
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/unuse [post]
func (h *BookingHandler) Unuse(c *gin.Context) {
	h.transition(c, h.cmds.MarkBookingAsUnused)
}

// @Summary Uncancel booking
// @Description Reactivate a cancelled booking. Stock and wallet are checked again.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/uncancel [post]
func (h *BookingHandler) Uncancel(c *gin.Context) {
	h.transition(c, h.cmds.UncancelBooking)
}

// @Summary Confirm booking
// @Description Confirm a pending educational booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmBooking)
}

// @Summary Get wallet
// @Description Deposit, spent amount and balance of the caller
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WalletResponse
// @Failure 401 {object} httperr.Response
// @Router /wallet [get]
func (h *BookingHandler) Wallet(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	view, err := h.wallet.GetWallet(c.Request.Context(), actor.ID)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWalletView(view))
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) error) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := apply(c.Request.Context(), id); err != nil {
		abortWithMappedError(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusOK, actor, id)
}

// respondWithBooking reads the booking back after a write.
func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, actor commands.Actor, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actor.ID, actor.Role, id)
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}

func currentActor(c *gin.Context) (commands.Actor, bool) {
	userID, okID := middleware.GetUserID(c)
	role, okRole := middleware.GetUserRole(c)
	if !okID || !okRole {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return commands.Actor{}, false
	}
	return commands.Actor{ID: userID, Role: role}, true
}

func bookingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "invalidId", "Invalid booking id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func defaultCancellationReason(role user.Role) booking.CancellationReason {
	switch role {
	case user.RolePro:
		return booking.CancellationByOfferer
	case user.RoleAdmin:
		return booking.CancellationFraud
	default:
		return booking.CancellationByBeneficiary
	}
}
