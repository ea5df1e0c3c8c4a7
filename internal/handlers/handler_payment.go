package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payment_voucher_app/internal/core/ports/services"
	"github.com/SscSPs/payment_voucher_app/internal/dto"
	"github.com/SscSPs/payment_voucher_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests for parties and persisted vouchers.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// RegisterPaymentRoutes registers routes related to parties and payment vouchers.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	parties := rg.Group("/parties/:partyID")
	{
		parties.GET("/outstanding", h.getOutstanding)
		parties.GET("/payments", h.listPartyPayments)
	}
	rg.GET("/payments/:paymentID", h.getPayment)
}

// getOutstanding godoc
// @Summary Get a party's outstanding bills and balance
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.OutstandingResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to retrieve outstanding"
// @Security BearerAuth
// @Router /parties/{partyID}/outstanding [get]
func (h *paymentHandler) getOutstanding(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	outstanding, err := h.paymentService.GetOutstanding(c.Request.Context(), partyID)
	if err != nil {
		respondError(c, logger.With(slog.String("party_id", partyID)), err, "Failed to retrieve outstanding")
		return
	}
	c.JSON(http.StatusOK, dto.ToOutstandingResponse(outstanding))
}

// listPartyPayments godoc
// @Summary List a party's payment vouchers
// @Description Newest first, paginated with an opaque nextToken
// @Tags parties
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Param   limit query int false "Page size" minimum(1) maximum(100) default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /parties/{partyID}/payments [get]
func (h *paymentHandler) listPartyPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPartyPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	payments, next, err := h.paymentService.ListPartyPayments(c.Request.Context(), c.Param("partyID"), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments:  dto.ToListPaymentResponse(payments),
		NextToken: next,
	})
}

// getPayment godoc
// @Summary Get a payment voucher
// @Tags payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment"
// @Security BearerAuth
// @Router /payments/{paymentID} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
