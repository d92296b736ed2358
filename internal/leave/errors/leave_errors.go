package leaveerrors

import (
	"fmt"
	"net/http"

	"github.com/Ishani018/alms-ishani/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must be greater than or equal to start date",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave not found",
		http.StatusNotFound,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"Leave dates overlap with existing approved or pending leave",
		http.StatusBadRequest,
	)
	ErrAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"Access denied",
		http.StatusForbidden,
	)
	ErrNotOwnUpdate = apperror.New(
		apperror.CodeForbidden,
		"You can only update your own leave requests",
		http.StatusForbidden,
	)
	ErrNotOwnCancel = apperror.New(
		apperror.CodeForbidden,
		"You can only cancel your own leave requests",
		http.StatusForbidden,
	)
	ErrOnlyPendingUpdatable = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leaves can be updated",
		http.StatusBadRequest,
	)
	ErrOnlyPendingApprovable = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leaves can be approved",
		http.StatusBadRequest,
	)
	ErrOnlyPendingRejectable = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leaves can be rejected",
		http.StatusBadRequest,
	)
	ErrAlreadyCancelled = apperror.New(
		apperror.CodeInvalidState,
		"Leave is already cancelled",
		http.StatusBadRequest,
	)
	ErrCancelAfterStart = apperror.New(
		apperror.CodeInvalidState,
		"Cannot cancel an approved leave that has already started",
		http.StatusBadRequest,
	)
	ErrNotAssignedApprover = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to approve this leave",
		http.StatusForbidden,
	)
	ErrNotAssignedRejecter = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to reject this leave",
		http.StatusForbidden,
	)
)

// InsufficientBalance carries the remaining days so the caller sees how far
// short the request fell.
func InsufficientBalance(available float64) *apperror.AppError {
	return apperror.New(
		apperror.CodeInsufficientBalance,
		fmt.Sprintf("Insufficient leave balance. Available: %g days", available),
		http.StatusBadRequest,
	)
}
