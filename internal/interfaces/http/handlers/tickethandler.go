package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"openfare/internal/application/ticket/usecases"
	"openfare/internal/domain/ticket"
	"openfare/internal/shared/constants"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type TicketHandler struct {
	lookupTicketUseCase *usecases.LookupTicketUseCase
	cancelTicketUseCase *usecases.CancelTicketUseCase
	logger              logger.Interface
}

func NewTicketHandler(
	lookupTicketUC *usecases.LookupTicketUseCase,
	cancelTicketUC *usecases.CancelTicketUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		lookupTicketUseCase: lookupTicketUC,
		cancelTicketUseCase: cancelTicketUC,
		logger:              logger,
	}
}

func (h *TicketHandler) Lookup(c *gin.Context) {
	pnr := c.Param("pnr")

	result, err := h.lookupTicketUseCase.Execute(c.Request.Context(), usecases.LookupTicketQuery{PNR: pnr})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"ticket": toTicketResponse(result.Ticket, result.Operator, result.Refunds),
	})
}

func (h *TicketHandler) Cancel(c *gin.Context) {
	pnr := c.Param("pnr")
	userID := c.GetUint(constants.ContextKeyUserID)

	cmd := usecases.CancelTicketCommand{
		PNR:    pnr,
		UserID: userID,
	}

	result, err := h.cancelTicketUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		var policyErr *ticket.PolicyResolutionError
		if stderrors.As(err, &policyErr) {
			// A corrupt or gapped locked-in policy is a data problem with
			// this ticket, not a bad request.
			utils.ErrorResponse(c, http.StatusUnprocessableEntity, policyErr.Error())
			return
		}
		h.logger.Warnw("failed to cancel ticket", "pnr", pnr, "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket cancelled", gin.H{
		"ticket":        toTicketResponse(result.Ticket, nil, nil),
		"refund":        toRefundResponse(result.Refund),
		"policy_bucket": result.Bucket.Label,
		"elapsed_hours": result.ElapsedHours,
	})
}
