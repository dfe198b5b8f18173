package attendanceerrors

import (
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"Employee has already checked in today",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeConflict,
		"Attendance record is already checked out",
		http.StatusConflict,
	)
	ErrCheckOutBeforeCheckIn = apperror.New(
		apperror.CodeInvalidInput,
		"Check-out time cannot precede check-in time",
		http.StatusBadRequest,
	)
	ErrAttendanceLocked = apperror.New(
		apperror.CodeInvalidState,
		"Attendance record is locked",
		http.StatusConflict,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month or year",
		http.StatusBadRequest,
	)
)
