package apperror

import (
	"errors"
	"net/http"
	"os"
)

// HTTPError is the flattened form handed to the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to an HTTPError. AppErrors carry their own status and
// code; anything else becomes an opaque 500 so internals never leak to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	httpErr := HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "An unexpected error occurred",
	}
	if os.Getenv("APP_ENV") != "production" && err != nil {
		httpErr.Details = err.Error()
	}
	return httpErr
}
