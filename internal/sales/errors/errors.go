package saleserrors

import (
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"
)

var (
	ErrInvalidSalesTarget = apperror.New(
		apperror.CodeInvalidInput,
		"target_amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidSalesDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidIncentivePeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid period, month must be 1-12 and year 2000 or later",
		http.StatusBadRequest,
	)
	ErrNoSalesData = apperror.New(
		apperror.CodeNotFound,
		"No sales records for this employee in the given period",
		http.StatusNotFound,
	)
)
