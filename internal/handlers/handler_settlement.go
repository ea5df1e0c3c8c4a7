package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	portssvc "github.com/SscSPs/payment_voucher_app/internal/core/ports/services"
	"github.com/SscSPs/payment_voucher_app/internal/dto"
	"github.com/SscSPs/payment_voucher_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settlementHandler handles HTTP requests for the payment voucher form.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

// newSettlementHandler creates a new settlementHandler.
func newSettlementHandler(ss portssvc.SettlementSvcFacade) *settlementHandler {
	return &settlementHandler{
		settlementService: ss,
	}
}

// RegisterSettlementRoutes registers routes related to settlement sessions.
func RegisterSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	registerValidators()
	h := newSettlementHandler(settlementService)

	settlements := rg.Group("/settlements")
	{
		settlements.POST("", h.createSettlement)
		settlements.GET("/:sessionID", h.getSettlement)
		settlements.DELETE("/:sessionID", h.deleteSettlement)
		settlements.PUT("/:sessionID/party", h.selectParty)
		settlements.POST("/:sessionID/refresh", h.refreshBills)
		settlements.POST("/:sessionID/bills/toggle-all", h.toggleAll)
		settlements.POST("/:sessionID/bills/:billID/toggle", h.toggleBill)
		settlements.PUT("/:sessionID/bills/:billID/allocation", h.setAllocation)
		settlements.PUT("/:sessionID/advance", h.setUseAdvance)
		settlements.PUT("/:sessionID/amounts", h.setAmounts)
		settlements.POST("/:sessionID/submit", h.submitSettlement)
	}
}

// createSettlement godoc
// @Summary Open a settlement session
// @Description Starts an empty payment voucher form for a receipt (INBOUND) or a payment (OUTBOUND)
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   settlement body dto.CreateSettlementRequest true "Payment type"
// @Success 201 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create settlement"
// @Security BearerAuth
// @Router /settlements [post]
func (h *settlementHandler) createSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.settlementService.CreateSession(c.Request.Context(), userID, req.PaymentType)
	if err != nil {
		respondError(c, logger, err, "Failed to create settlement")
		return
	}

	logger.Info("Settlement session created", slog.String("session_id", session.SessionID))
	c.JSON(http.StatusCreated, dto.ToSettlementResponse(session))
}

// getSettlement godoc
// @Summary Get a settlement session
// @Description Returns the form state with its derived totals
// @Tags settlements
// @Produce  json
// @Param   sessionID path string true "Session ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 404 {object} map[string]string "Settlement not found"
// @Failure 500 {object} map[string]string "Failed to retrieve settlement"
// @Security BearerAuth
// @Router /settlements/{sessionID} [get]
func (h *settlementHandler) getSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.settlementService.GetSession(c.Request.Context(), c.Param("sessionID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve settlement")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementResponse(session))
}

// deleteSettlement godoc
// @Summary Discard a settlement session
// @Tags settlements
// @Param   sessionID path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Settlement not found"
// @Failure 500 {object} map[string]string "Failed to delete settlement"
// @Security BearerAuth
// @Router /settlements/{sessionID} [delete]
func (h *settlementHandler) deleteSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.settlementService.DeleteSession(c.Request.Context(), c.Param("sessionID"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete settlement")
		return
	}
	c.Status(http.StatusNoContent)
}

// selectParty godoc
// @Summary Select the party of a settlement
// @Description Clears the form and loads the party's outstanding bills and balance.
// @Description A response superseded by a newer selection is discarded with 409.
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   sessionID path string true "Session ID"
// @Param   party body dto.SelectPartyRequest true "Party"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Settlement or party not found"
// @Failure 409 {object} map[string]string "Superseded by a newer selection"
// @Failure 502 {object} map[string]interface{} "Outstanding could not be loaded"
// @Security BearerAuth
// @Router /settlements/{sessionID}/party [put]
func (h *settlementHandler) selectParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.settlementService.SelectParty(c.Request.Context(), c.Param("sessionID"), userID, req.PartyID)
	h.respondPartyLoad(c, logger, session, err)
}

// refreshBills godoc
// @Summary Reload the bills of the selected party
// @Description Clears the selection and reloads the bills; discount and advance usage are kept
// @Tags settlements
// @Produce  json
// @Param   sessionID path string true "Session ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "No party selected"
// @Failure 404 {object} map[string]string "Settlement not found"
// @Failure 409 {object} map[string]string "Superseded by a newer selection"
// @Failure 502 {object} map[string]interface{} "Outstanding could not be loaded"
// @Security BearerAuth
// @Router /settlements/{sessionID}/refresh [post]
func (h *settlementHandler) refreshBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.settlementService.RefreshBills(c.Request.Context(), c.Param("sessionID"), userID)
	h.respondPartyLoad(c, logger, session, err)
}

// respondPartyLoad writes the outcome of a party fetch. A failed fetch still
// returns the session, which now shows an empty bill list.
func (h *settlementHandler) respondPartyLoad(c *gin.Context, logger *slog.Logger, session *domain.SettlementSession, err error) {
	if err == nil {
		c.JSON(http.StatusOK, dto.ToSettlementResponse(session))
		return
	}
	status := statusFor(err)
	if session != nil && status == http.StatusBadGateway {
		logger.Error("Party outstanding could not be loaded", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error(), "settlement": dto.ToSettlementResponse(session)})
		return
	}
	respondError(c, logger, err, "Failed to load party")
}

// toggleBill godoc
// @Summary Select or deselect one bill
// @Description Selecting allocates the bill's remaining amount; deselecting removes its allocation
// @Tags settlements
// @Produce  json
// @Param   sessionID path string true "Session ID"
// @Param   billID path string true "Bill ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 404 {object} map[string]string "Settlement or bill not found"
// @Security BearerAuth
// @Router /settlements/{sessionID}/bills/{billID}/toggle [post]
func (h *settlementHandler) toggleBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.settlementService.ToggleBill(c.Request.Context(), c.Param("sessionID"), userID, c.Param("billID"))
	if err != nil {
		respondError(c, logger, err, "Failed to toggle bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementResponse(session))
}

// toggleAll godoc
// @Summary Select every bill, or clear the selection when all are selected
// @Tags settlements
// @Produce  json
// @Param   sessionID path string true "Session ID"
// @Success 200 {object} dto.SettlementResponse
// @Failure 404 {object} map[string]string "Settlement not found"
// @Security BearerAuth
// @Router /settlements/{sessionID}/bills/toggle-all [post]
func (h *settlementHandler) toggleAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.settlementService.ToggleAll(c.Request.Context(), c.Param("sessionID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to toggle bills")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementResponse(session))
}

// setAllocation godoc
// @Summary Edit the allocation of a selected bill
// @Description Values above the bill's remaining amount are clamped and reported with clamped=true
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   sessionID path string true "Session ID"
// @Param   billID path string true "Bill ID"
// @Param   allocation body dto.SetAllocationRequest true "Raw allocation"
// @Success 200 {object} dto.SetAllocationResponse
// @Failure 400 {object} map[string]string "Invalid or negative allocation, or bill not selected"
// @Failure 404 {object} map[string]string "Settlement or bill not found"
// @Security BearerAuth
// @Router /settlements/{sessionID}/bills/{billID}/allocation [put]
func (h *settlementHandler) setAllocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetAllocation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, clamped, err := h.settlementService.SetAllocation(c.Request.Context(), c.Param("sessionID"), userID, c.Param("billID"), req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to set allocation")
		return
	}
	c.JSON(http.StatusOK, dto.SetAllocationResponse{
		SettlementResponse: dto.ToSettlementResponse(session),
		Clamped:            clamped,
	})
}

// setUseAdvance godoc
// @Summary Turn use of the party's advance on or off
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   sessionID path string true "Session ID"
// @Param   advance body dto.SetUseAdvanceRequest true "Use advance"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Settlement not found"
// @Security BearerAuth
// @Router /settlements/{sessionID}/advance [put]
func (h *settlementHandler) setUseAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetUseAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetUseAdvance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.settlementService.SetUseAdvance(c.Request.Context(), c.Param("sessionID"), userID, *req.UseAdvance)
	if err != nil {
		respondError(c, logger, err, "Failed to update advance usage")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementResponse(session))
}

// setAmounts godoc
// @Summary Set the tendered amount and/or discount
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   sessionID path string true "Session ID"
// @Param   amounts body dto.SetAmountsRequest true "Amount and discount"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Settlement not found"
// @Security BearerAuth
// @Router /settlements/{sessionID}/amounts [put]
func (h *settlementHandler) setAmounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetAmounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Amount == nil && req.Discount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount or discount is required"})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	session, err := h.settlementService.SetAmounts(c.Request.Context(), c.Param("sessionID"), userID, req.Amount, req.Discount)
	if err != nil {
		respondError(c, logger, err, "Failed to update amounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementResponse(session))
}

// submitSettlement godoc
// @Summary Submit a settlement as a payment voucher
// @Description Builds the submission payload from the form, persists it and discards the session
// @Tags settlements
// @Accept  json
// @Produce  json
// @Param   sessionID path string true "Session ID"
// @Param   voucher body dto.SubmitSettlementRequest true "Voucher header"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Settlement not found"
// @Failure 422 {object} map[string]string "Submission rejected"
// @Failure 500 {object} map[string]string "Failed to submit settlement"
// @Security BearerAuth
// @Router /settlements/{sessionID}/submit [post]
func (h *settlementHandler) submitSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitSettlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	sessionID := c.Param("sessionID")
	voucher, err := h.settlementService.Submit(c.Request.Context(), sessionID, userID, req.ToHeader())
	if err != nil {
		respondError(c, logger, err, "Failed to submit settlement")
		return
	}

	logger.Info("Settlement submitted",
		slog.String("session_id", sessionID),
		slog.String("payment_id", voucher.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(voucher))
}
