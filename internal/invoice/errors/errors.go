package errors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invoice not found",
		http.StatusNotFound,
	)

	ErrItemsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"At least one invoice item is required",
		http.StatusBadRequest,
	)
)
