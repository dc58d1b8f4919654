package api

import (
	"net/http"

	reqdto "guest-conversion/internal/handler/dto/request"
	resdto "guest-conversion/internal/handler/dto/response"
	"guest-conversion/internal/handler/httperr"
	"guest-conversion/internal/handler/middleware"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentGateHandler struct {
	cmds commands.PaymentGateCommands
}

func NewPaymentGateHandler(cmds commands.PaymentGateCommands) *PaymentGateHandler {
	return &PaymentGateHandler{cmds: cmds}
}

// @Summary Payment gate status
// @Description Current payment-at-property gate for the caller; phase is hidden when none is open
// @Tags payment-gate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaymentGateResponse
// @Router /api/payment-gate [get]
func (h *PaymentGateHandler) Status(c *gin.Context) {
	owner, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	st := h.cmds.Status(owner)
	c.JSON(http.StatusOK, resdto.FromGateState(&st))
}

// @Summary Verify on-site payment
// @Description Confirm the payment by its transaction reference, then re-fetch the gated record
// @Tags payment-gate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.VerifyPaymentRequest true "Transaction reference"
// @Success 200 {object} resdto.VerifyPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/payment-gate/verify [post]
func (h *PaymentGateHandler) Verify(c *gin.Context) {
	owner, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Verify(c.Request.Context(), owner, req.Reference)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGateVerifyResult(res))
}

// @Summary Dismiss payment gate
// @Tags payment-gate
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /api/payment-gate [delete]
func (h *PaymentGateHandler) Dismiss(c *gin.Context) {
	owner, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	if !h.cmds.Dismiss(owner) {
		httperr.Abort(c, errs.ErrGateNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
