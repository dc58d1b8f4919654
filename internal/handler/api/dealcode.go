package api

import (
	"net/http"

	resdto "guest-conversion/internal/handler/dto/response"
	"guest-conversion/internal/handler/httperr"
	"guest-conversion/internal/handler/middleware"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DealCodeHandler struct {
	dealCodes queries.DealCodeQueries
	clock     clock.Clock
}

func NewDealCodeHandler(dealCodes queries.DealCodeQueries, clk clock.Clock) *DealCodeHandler {
	return &DealCodeHandler{dealCodes: dealCodes, clock: clk}
}

// @Summary List deal codes
// @Description Re-fetch the guest's deal codes with usability evaluated now
// @Tags deal-codes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DealCodeLedgerResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/deal-codes [get]
func (h *DealCodeHandler) List(c *gin.Context) {
	guest, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	ledger, err := h.dealCodes.Refresh(c.Request.Context(), guest)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealCodeLedger(ledger, h.clock.Now()))
}
