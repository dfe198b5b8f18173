package companyerrors

import (
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Group not found",
		http.StatusNotFound,
	)
	ErrCompanyCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Company code already exists",
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidGroupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid group ID",
		http.StatusBadRequest,
	)
)
