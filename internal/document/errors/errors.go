package documenterrors

import (
	"net/http"

	"github.com/Iamvlnmurthy/pepl/internal/shared/apperror"
)

var ErrDocumentNotFound = apperror.New(
	apperror.CodeNotFound,
	"Document not found",
	http.StatusNotFound,
)
