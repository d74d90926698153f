package api

import (
	"errors"
	"log/slog"
	"net/http"

	"pcapi/internal/domain/booking"
	"pcapi/internal/domain/reimbursement"
	"pcapi/internal/domain/subscription"
	"pcapi/internal/domain/user"
	"pcapi/internal/handler/httperr"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase/commands"
	"pcapi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: the first matching target wins.
var errorMappings = []errorMapping{
	// Stock and wallet invariants
	{booking.ErrTooManyBookings, http.StatusBadRequest, "tooManyBookings", "Stock quantity exceeded"},
	{booking.ErrInsufficientFunds, http.StatusBadRequest, "insufficientFunds", "Insufficient wallet balance"},

	// Lookups
	{errs.ErrBookingNotFound, http.StatusNotFound, "bookingNotFound", "Booking not found"},
	{errs.ErrStockNotFound, http.StatusNotFound, "stockNotFound", "Stock not found"},
	{errs.ErrRuleNotFound, http.StatusNotFound, "ruleNotFound", "Reimbursement rule not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "userNotFound", "User not found"},
	{errs.ErrOffererNotFound, http.StatusNotFound, "offererNotFound", "Offerer not found"},
	{errs.ErrOfferNotFound, http.StatusNotFound, "offerNotFound", "Offer not found"},
	{errs.ErrForbidden, http.StatusForbidden, "forbidden", "Forbidden"},

	// Forbidden transitions
	{booking.ErrAlreadyCancelled, http.StatusConflict, "bookingIsAlreadyCancelled", "Booking is already cancelled"},
	{booking.ErrAlreadyUsed, http.StatusConflict, "bookingIsAlreadyUsed", "Booking is already used"},
	{booking.ErrAlreadyReimbursed, http.StatusConflict, "bookingIsAlreadyReimbursed", "Booking is already reimbursed"},
	{booking.ErrNotCancelled, http.StatusConflict, "bookingIsNotCancelled", "Booking is not cancelled"},
	{booking.ErrNotUsed, http.StatusConflict, "bookingIsNotUsed", "Booking is not used"},
	{booking.ErrNotPending, http.StatusConflict, "bookingIsNotPending", "Booking is not pending"},
	{booking.ErrNotConfirmed, http.StatusConflict, "bookingIsNotConfirmed", "Booking is not confirmed"},
	{user.ErrCannotUpgradeRole, http.StatusConflict, "cannotUpgradeRole", "Account cannot be upgraded"},
	{reimbursement.ErrRuleOverlap, http.StatusConflict, "ruleOverlap", "Rule overlaps an existing rule"},
	{reimbursement.ErrAlreadyClosed, http.StatusConflict, "ruleAlreadyClosed", "Rule is already closed"},
	{queries.ErrNotReimbursable, http.StatusConflict, "bookingNotReimbursable", "Booking has not been used"},

	// Booking validation
	{booking.ErrInvalidToken, http.StatusBadRequest, "invalidToken", "Invalid booking token"},
	{booking.ErrInvalidQuantity, http.StatusBadRequest, "invalidQuantity", "Invalid quantity"},
	{booking.ErrStockDeleted, http.StatusBadRequest, "stockIsNotBookable", "Stock is not bookable"},
	{booking.ErrBeneficiaryInactive, http.StatusBadRequest, "beneficiaryInactive", "Account is inactive"},
	{booking.ErrInvalidCancellationReason, http.StatusBadRequest, "invalidCancellationReason", "Invalid cancellation reason"},
	{booking.ErrNegativeAmount, http.StatusBadRequest, "negativeAmount", "Amount cannot be negative"},

	// Rule validation
	{reimbursement.ErrScopeRequired, http.StatusBadRequest, "scopeRequired", "Exactly one of offer or offerer is required"},
	{reimbursement.ErrSubcategoriesOnOffer, http.StatusBadRequest, "subcategoriesOnOffer", "Subcategories only apply to offerer rules"},
	{reimbursement.ErrAmountOrRateRequired, http.StatusBadRequest, "amountOrRateRequired", "Exactly one of amount or rate is required"},
	{reimbursement.ErrNegativeAmount, http.StatusBadRequest, "negativeAmount", "Amount cannot be negative"},
	{reimbursement.ErrRateOutOfRange, http.StatusBadRequest, "rateOutOfRange", "Rate must be between 0 and 1"},
	{reimbursement.ErrMissingStart, http.StatusBadRequest, "missingStart", "Start date is required"},
	{reimbursement.ErrEmptyTimespan, http.StatusBadRequest, "emptyTimespan", "End date must be after start date"},
	{reimbursement.ErrCloseInPast, http.StatusBadRequest, "closeInPast", "A rule cannot end in the past"},

	// Accounts
	{user.ErrMissingIdentity, http.StatusBadRequest, "missingIdentity", "Identity is incomplete"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "invalidCursor", "Invalid cursor"},
	{queries.ErrUserInactive, http.StatusForbidden, "userInactive", "Account is inactive"},
	{commands.ErrUserInactive, http.StatusForbidden, "userInactive", "Account is inactive"},
}

// abortWithMappedError answers with the status and code of the first known
// error err matches, or 500.
func abortWithMappedError(c *gin.Context, err error) {
	var rejection *subscription.RejectionError
	if errors.As(err, &rejection) {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, string(rejection.Reason), rejection.Message, nil)
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithCode(c, m.status, err, m.code, m.message, nil)
			return
		}
	}

	slog.Error("unhandled error", "path", c.FullPath(), "error", err.Error())
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
