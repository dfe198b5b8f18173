package payrollerrors

import (
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"
)

var (
	ErrInvalidPayPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid pay period, month must be 1-12 and year 2000 or later",
		http.StatusBadRequest,
	)
	ErrNoActiveSalaryStructure = apperror.New(
		apperror.CodeNotFound,
		"No active salary structure for this employee",
		http.StatusNotFound,
	)
	ErrPayrollRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll run not found",
		http.StatusNotFound,
	)
)
