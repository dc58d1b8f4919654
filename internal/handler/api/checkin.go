package api

import (
	"net/http"

	reqdto "guest-conversion/internal/handler/dto/request"
	resdto "guest-conversion/internal/handler/dto/response"
	"guest-conversion/internal/handler/httperr"
	"guest-conversion/internal/handler/middleware"
	"guest-conversion/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	cmds commands.CheckInCommands
}

func NewCheckInHandler(cmds commands.CheckInCommands) *CheckInHandler {
	return &CheckInHandler{cmds: cmds}
}

// @Summary Look up booking
// @Description Verify a booking for check-in. A payment-at-property response opens the payment gate and leaves the session awaiting an id.
// @Tags check-in
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingLookupRequest true "Booking"
// @Success 200 {object} resdto.LookupResponse
// @Success 202 {object} resdto.LookupResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/check-in/lookup [post]
func (h *CheckInHandler) Lookup(c *gin.Context) {
	staff, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.BookingLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.LookupBooking(c.Request.Context(), staff, req.BookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromLookupResult(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	status := http.StatusOK
	if res.Gate != nil {
		status = http.StatusAccepted
	}
	c.JSON(status, resp)
}

// @Summary Current check-in session
// @Tags check-in
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SessionResponse
// @Router /api/check-in/session [get]
func (h *CheckInHandler) Session(c *gin.Context) {
	staff, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	resp, err := resdto.FromSession(h.cmds.Session(staff))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reset check-in session
// @Description Clear loaded booking details. A lookup still in flight is discarded when it returns.
// @Tags check-in
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SessionResponse
// @Router /api/check-in/session [delete]
func (h *CheckInHandler) Reset(c *gin.Context) {
	staff, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	resp, err := resdto.FromSession(h.cmds.Reset(staff))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Confirm check-in
// @Description Confirm arrival with the guest's 6-character code
// @Tags check-in
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ConfirmCheckInRequest true "Confirmation"
// @Success 200 {object} resdto.CheckInResponse
// @Success 202 {object} resdto.CheckInResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/check-in/confirm [post]
func (h *CheckInHandler) Confirm(c *gin.Context) {
	staff, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.ConfirmCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.ConfirmCheckIn(c.Request.Context(), staff, req.BookingID, req.Code, req.Instructions)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromCheckInResult(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	status := http.StatusOK
	if res.Gate != nil {
		status = http.StatusAccepted
	}
	c.JSON(status, resp)
}

// @Summary Resend check-in code
// @Description Ask the marketplace to resend the code for the loaded booking
// @Tags check-in
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ResendCodeRequest true "Booking"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/check-in/resend [post]
func (h *CheckInHandler) Resend(c *gin.Context) {
	staff, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	msg, err := h.cmds.ResendCode(c.Request.Context(), staff, req.BookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msg})
}

// @Summary Confirm check-out
// @Description Confirm departure. The endpoint is chosen from the caller's role.
// @Tags check-in
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckOutRequest true "Booking"
// @Success 200 {object} resdto.CheckOutResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/check-out [post]
func (h *CheckInHandler) CheckOut(c *gin.Context) {
	staff, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)
	var req reqdto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.ConfirmCheckOut(c.Request.Context(), staff, role, req.BookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckOutResult(res))
}
