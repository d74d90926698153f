package api

import (
	"net/http"

	reqdto "pcapi/internal/handler/dto/request"
	resdto "pcapi/internal/handler/dto/response"
	"pcapi/internal/handler/httperr"
	"pcapi/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	cmds commands.SubscriptionCommands
}

func NewSubscriptionHandler(cmds commands.SubscriptionCommands) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds}
}

// @Summary Subscribe a beneficiary
// @Description Called once an identity check succeeded. Runs the pre-subscription checks, then creates or upgrades the account and grants the deposit.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubscribeRequest true "Vouched identity"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 400 {object} httperr.Response "Rejected: the code is the rejection reason"
// @Failure 409 {object} httperr.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	pre, eligibility, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SubscribeBeneficiary(c.Request.Context(), commands.SubscribeBeneficiaryInput{
		PreSubscription:          pre,
		Eligibility:              eligibility,
		IgnoreIDPieceNumberField: req.IgnoreIDPieceNumberField,
	})
	if err != nil {
		abortWithMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubscriptionResult(result))
}
