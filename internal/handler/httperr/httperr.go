package httperr

import (
	"net/http"

	"guest-conversion/internal/infra/marketplace"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/usecase/commands"
	"guest-conversion/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps the error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	var (
		business  *marketplace.BusinessError
		transport *marketplace.TransportError
	)
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, commands.ErrOperationInFlight):
		return http.StatusConflict
	case errs.Is(err, commands.ErrGuardRefused):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrUnlockNotFound),
		errs.Is(err, errs.ErrSessionNotFound),
		errs.Is(err, errs.ErrGateNotFound):
		return http.StatusNotFound
	case errs.As(err, &business):
		if business.Status == http.StatusUnauthorized || business.Status == http.StatusForbidden {
			return business.Status
		}
		return http.StatusBadRequest
	case errs.As(err, &transport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Abort responds with the status for err. Marketplace wording is passed
// through verbatim; internal failures get a fixed message.
func Abort(c *gin.Context, err error) {
	status := StatusFor(err)
	msg := shared.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, nil)
}
