package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"openfare/internal/application/user/usecases"
	"openfare/internal/shared/constants"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type UserHandler struct {
	getDashboardUseCase  *usecases.GetDashboardUseCase
	fileComplaintUseCase *usecases.FileComplaintUseCase
	logger               logger.Interface
}

func NewUserHandler(
	getDashboardUC *usecases.GetDashboardUseCase,
	fileComplaintUC *usecases.FileComplaintUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getDashboardUseCase:  getDashboardUC,
		fileComplaintUseCase: fileComplaintUC,
		logger:               logger,
	}
}

type FileComplaintRequest struct {
	PNR         string `json:"pnr" binding:"required,pnr"`
	Reason      string `json:"reason" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
}

// Dashboard returns the caller's profile, tickets with refund state, and
// complaints, newest first.
func (h *UserHandler) Dashboard(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	result, err := h.getDashboardUseCase.Execute(c.Request.Context(), usecases.GetDashboardQuery{UserID: userID})
	if err != nil {
		h.logger.Errorw("failed to load dashboard", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets := make([]TicketResponse, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		tickets = append(tickets, toTicketResponse(t.Ticket, t.Operator, t.Refunds))
	}

	complaints := make([]ComplaintResponse, 0, len(result.Complaints))
	for _, cw := range result.Complaints {
		complaints = append(complaints, toComplaintResponse(cw.Complaint, cw.Operator, nil))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user":       toUserResponse(result.User),
		"tickets":    tickets,
		"complaints": complaints,
	})
}

func (h *UserHandler) FileComplaint(c *gin.Context) {
	var req FileComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	userID := c.GetUint(constants.ContextKeyUserID)
	cmd := usecases.FileComplaintCommand{
		UserID:      userID,
		PNR:         req.PNR,
		Reason:      req.Reason,
		Description: req.Description,
	}

	result, err := h.fileComplaintUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("failed to file complaint", "user_id", userID, "pnr", req.PNR, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"complaint": toComplaintResponse(result.Complaint, nil, nil),
		"message":   toMessageResponse(result.Message),
	}, "complaint filed")
}
