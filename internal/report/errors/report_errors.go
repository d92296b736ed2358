package reporterrors

import (
	"net/http"

	"github.com/Ishani018/alms-ishani/internal/shared/apperror"
)

var (
	ErrMonthYearRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Month and year are required query parameters",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
)
