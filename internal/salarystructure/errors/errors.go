package salarystructureerrors

import (
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"
)

var (
	ErrSalaryStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"No active salary structure for this employee",
		http.StatusNotFound,
	)
	ErrActiveStructureExists = apperror.New(
		apperror.CodeConflict,
		"An active salary structure already exists for this employee",
		http.StatusConflict,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid effective_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
