package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	adminusecases "openfare/internal/application/admin/usecases"
	slausecases "openfare/internal/application/sla/usecases"
	ticketusecases "openfare/internal/application/ticket/usecases"
	"openfare/internal/shared/constants"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

// AdminHandler serves the regulator-facing surface: complaint triage, refund
// completion, the SLA sweep, and the audit trail.
type AdminHandler struct {
	listComplaintsUseCase        *adminusecases.ListComplaintsUseCase
	getComplaintUseCase          *adminusecases.GetComplaintUseCase
	updateComplaintStatusUseCase *adminusecases.UpdateComplaintStatusUseCase
	addMessageUseCase            *adminusecases.AddMessageUseCase
	listAuditLogsUseCase         *adminusecases.ListAuditLogsUseCase
	completeRefundUseCase        *ticketusecases.CompleteRefundUseCase
	runSweepUseCase              *slausecases.RunSweepUseCase
	listConfigsUseCase           *slausecases.ListConfigsUseCase
	logger                       logger.Interface
}

func NewAdminHandler(
	listComplaintsUC *adminusecases.ListComplaintsUseCase,
	getComplaintUC *adminusecases.GetComplaintUseCase,
	updateComplaintStatusUC *adminusecases.UpdateComplaintStatusUseCase,
	addMessageUC *adminusecases.AddMessageUseCase,
	listAuditLogsUC *adminusecases.ListAuditLogsUseCase,
	completeRefundUC *ticketusecases.CompleteRefundUseCase,
	runSweepUC *slausecases.RunSweepUseCase,
	listConfigsUC *slausecases.ListConfigsUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		listComplaintsUseCase:        listComplaintsUC,
		getComplaintUseCase:          getComplaintUC,
		updateComplaintStatusUseCase: updateComplaintStatusUC,
		addMessageUseCase:            addMessageUC,
		listAuditLogsUseCase:         listAuditLogsUC,
		completeRefundUseCase:        completeRefundUC,
		runSweepUseCase:              runSweepUC,
		listConfigsUseCase:           listConfigsUC,
		logger:                       logger,
	}
}

type UpdateComplaintStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	Justification string `json:"justification"`
}

type AddMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *AdminHandler) ListComplaints(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := adminusecases.ListComplaintsQuery{
		Status:     c.Query("status"),
		Pagination: pagination,
	}

	result, err := h.listComplaintsUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]ComplaintResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, toComplaintResponse(item.Complaint, item.Operator, nil))
	}

	utils.ListSuccessResponse(c, items, result.Total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) GetComplaint(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid complaint id")
		return
	}

	result, err := h.getComplaintUseCase.Execute(c.Request.Context(), adminusecases.GetComplaintQuery{ComplaintID: uint(id)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"complaint": toComplaintResponse(result.Complaint, result.Operator, result.Messages),
	})
}

func (h *AdminHandler) UpdateComplaintStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid complaint id")
		return
	}

	var req UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	adminID := c.GetUint(constants.ContextKeyUserID)
	cmd := adminusecases.UpdateComplaintStatusCommand{
		ComplaintID:   uint(id),
		Status:        req.Status,
		Justification: req.Justification,
		AdminID:       adminID,
	}

	result, err := h.updateComplaintStatusUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("failed to update complaint status",
			"complaint_id", id,
			"status", req.Status,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "complaint status updated", gin.H{
		"complaint": toComplaintResponse(result.Complaint, nil, nil),
	})
}

func (h *AdminHandler) AddMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid complaint id")
		return
	}

	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := adminusecases.AddMessageCommand{
		ComplaintID: uint(id),
		AdminID:     c.GetUint(constants.ContextKeyUserID),
		Content:     req.Content,
	}

	result, err := h.addMessageUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": toMessageResponse(result.Message),
	}, "message added")
}

func (h *AdminHandler) CompleteRefund(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid refund id")
		return
	}

	cmd := ticketusecases.CompleteRefundCommand{
		RefundID: uint(id),
		AdminID:  c.GetUint(constants.ContextKeyUserID),
	}

	result, err := h.completeRefundUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("failed to complete refund", "refund_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "refund completed", gin.H{
		"refund": toRefundResponse(result.Refund),
	})
}

type ViolationResponse struct {
	Type          string  `json:"type"`
	SourceID      string  `json:"source_id"`
	PNR           string  `json:"pnr"`
	OperatorID    uint    `json:"operator_id"`
	OperatorName  string  `json:"operator_name"`
	ElapsedHours  float64 `json:"elapsed_hours"`
	Penalty       float64 `json:"penalty"`
	OldScore      float64 `json:"old_score"`
	NewScore      float64 `json:"new_score"`
	AlreadyLogged bool    `json:"already_logged"`
}

func (h *AdminHandler) RunSweep(c *gin.Context) {
	result, err := h.runSweepUseCase.Execute(c.Request.Context(), slausecases.RunSweepCommand{})
	if err != nil {
		h.logger.Errorw("SLA sweep failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	violations := make([]ViolationResponse, 0, len(result.Violations))
	for _, v := range result.Violations {
		violations = append(violations, ViolationResponse{
			Type:          string(v.Type),
			SourceID:      v.SourceID,
			PNR:           v.PNR,
			OperatorID:    v.OperatorID,
			OperatorName:  v.OperatorName,
			ElapsedHours:  v.ElapsedHours,
			Penalty:       v.Penalty,
			OldScore:      v.OldScore,
			NewScore:      v.NewScore,
			AlreadyLogged: v.AlreadyLogged,
		})
	}

	utils.SuccessResponse(c, http.StatusOK, "SLA sweep completed", gin.H{
		"violations": violations,
		"penalized":  result.Penalized,
		"skipped":    result.Skipped,
	})
}

func (h *AdminHandler) ListSLAConfigs(c *gin.Context) {
	result, err := h.listConfigsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"configs": toSLAConfigResponses(result.Configs),
	})
}

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listAuditLogsUseCase.Execute(c.Request.Context(), adminusecases.ListAuditLogsQuery{Pagination: pagination})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toAuditLogResponses(result.Logs), result.Total, pagination.Page, pagination.PageSize)
}
