package api

import (
	"net/http"

	reqdto "guest-conversion/internal/handler/dto/request"
	resdto "guest-conversion/internal/handler/dto/response"
	"guest-conversion/internal/handler/httperr"
	"guest-conversion/internal/handler/middleware"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/usecase/commands"
	"guest-conversion/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UnlockHandler struct {
	cmds    commands.UnlockCommands
	unlocks queries.UnlockQueries
	clock   clock.Clock
}

func NewUnlockHandler(cmds commands.UnlockCommands, unlocks queries.UnlockQueries, clk clock.Clock) *UnlockHandler {
	return &UnlockHandler{cmds: cmds, unlocks: unlocks, clock: clk}
}

// @Summary List unlocks
// @Description Re-fetch the guest's unlock records and stats from the marketplace
// @Tags unlocks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UnlockSnapshotResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/unlocks [get]
func (h *UnlockHandler) List(c *gin.Context) {
	guest, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	snap, err := h.unlocks.Refresh(c.Request.Context(), guest)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromUnlockSnapshot(snap)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel unlock
// @Description Cancel a refundable unlock. Refused without a network call when the cancel guard is false.
// @Tags unlocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unlock ID"
// @Param request body reqdto.CancelUnlockRequest true "Cancellation reason"
// @Success 200 {object} resdto.CancelUnlockResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/unlocks/{id}/cancel [post]
func (h *UnlockHandler) Cancel(c *gin.Context) {
	guest, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.CancelUnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Cancel(c.Request.Context(), guest, c.Param("id"), req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromCancelResult(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Submit appreciation
// @Description Record the guest's appreciation level; not_appreciated may mint a deal code
// @Tags unlocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unlock ID"
// @Param request body reqdto.AppreciationRequest true "Appreciation"
// @Success 200 {object} resdto.AppreciationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/unlocks/{id}/appreciation [post]
func (h *UnlockHandler) Appreciate(c *gin.Context) {
	guest, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.AppreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToCommand(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.SubmitAppreciation(c.Request.Context(), guest, in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromAppreciationResult(res, h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Convert unlock to booking
// @Description Create a booking from an appreciated unlock. A payment-at-property response opens the payment gate instead.
// @Tags unlocks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unlock ID"
// @Param request body reqdto.BookingRequest true "Stay"
// @Success 201 {object} resdto.BookingResponse
// @Success 202 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/unlocks/{id}/booking [post]
func (h *UnlockHandler) Book(c *gin.Context) {
	guest, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := h.cmds.ConvertToBooking(c.Request.Context(), guest, c.Param("id"), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromBookingResult(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	status := http.StatusCreated
	if res.Gate != nil {
		status = http.StatusAccepted
	}
	c.JSON(status, resp)
}
