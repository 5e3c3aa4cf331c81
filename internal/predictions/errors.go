package predictions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/verdant/internal/encoders"
	"github.com/JaimeStill/verdant/internal/model"
)

// Domain errors for prediction requests.
var (
	ErrInvalidLeafColor = errors.New("invalid leaf color")
	ErrInvalidRequest   = errors.New("invalid prediction request")
)

// MapHTTPStatus maps prediction errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidLeafColor),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, encoders.ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
