package leaveerrors

import (
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"
)

var (
	ErrLeaveApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave application not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leave applications can change status",
		http.StatusConflict,
	)
	ErrInvalidLeaveDates = apperror.New(
		apperror.CodeInvalidInput,
		"End date cannot precede start date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
