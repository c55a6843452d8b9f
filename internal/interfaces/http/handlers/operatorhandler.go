package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"openfare/internal/application/operator/usecases"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type OperatorHandler struct {
	listOperatorsUseCase   *usecases.ListOperatorsUseCase
	getTrustHistoryUseCase *usecases.GetTrustHistoryUseCase
	logger                 logger.Interface
}

func NewOperatorHandler(
	listOperatorsUC *usecases.ListOperatorsUseCase,
	getTrustHistoryUC *usecases.GetTrustHistoryUseCase,
	logger logger.Interface,
) *OperatorHandler {
	return &OperatorHandler{
		listOperatorsUseCase:   listOperatorsUC,
		getTrustHistoryUseCase: getTrustHistoryUC,
		logger:                 logger,
	}
}

// List returns all operators ranked by trust score.
func (h *OperatorHandler) List(c *gin.Context) {
	result, err := h.listOperatorsUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list operators", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"operators": toOperatorResponses(result.Operators),
	})
}

func (h *OperatorHandler) TrustHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid operator id")
		return
	}

	result, err := h.getTrustHistoryUseCase.Execute(c.Request.Context(), usecases.GetTrustHistoryQuery{OperatorID: uint(id)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"operator": toOperatorResponse(result.Operator),
		"history":  toTrustScoreLogResponses(result.History),
	})
}
