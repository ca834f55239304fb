package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is the uniform error body returned by every endpoint.
type HTTPError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, kind Kind, message string) {
	c.JSON(status, HTTPError{
		Error:   string(kind),
		Message: message,
	})
}

func WriteDetails(c *gin.Context, status int, kind Kind, message string, details any) {
	c.JSON(status, HTTPError{
		Error:   string(kind),
		Message: message,
		Details: details,
	})
}

func BadRequest(c *gin.Context, message string, details any) {
	WriteDetails(c, http.StatusBadRequest, KindValidation, message, details)
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		// Configuration, Provider and Internal are all operator-side faults.
		return http.StatusInternalServerError
	}
}

// Respond maps a domain error to its HTTP response. Unexpected errors are
// logged with full detail and surfaced as an opaque 500.
func Respond(c *gin.Context, err error) {
	var be *BusinessError
	if !errors.As(err, &be) {
		be = Internal("unexpected_error", err)
	}

	status := statusFor(be.Kind)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("code", be.Code).Str("path", c.FullPath()).Msg("request failed")
	}

	Write(c, status, be.Kind, be.Message)
}
