package usererrors

import (
	"net/http"

	"github.com/Ishani018/alms-ishani/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Manager not found",
		http.StatusNotFound,
	)
	ErrSelfManager = apperror.New(
		apperror.CodeInvalidInput,
		"A user cannot be their own manager",
		http.StatusBadRequest,
	)
	ErrManagerRoleInvalid = apperror.New(
		apperror.CodeInvalidInput,
		"Assigned manager must have the manager, hr or admin role",
		http.StatusBadRequest,
	)
)
