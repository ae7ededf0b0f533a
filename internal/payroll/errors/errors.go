package errors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrPeriodRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Payroll period start and end are required",
		http.StatusBadRequest,
	)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Period end must not be before period start",
		http.StatusBadRequest,
	)

	ErrBasicPayRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Basic pay is required",
		http.StatusBadRequest,
	)

	ErrInvalidLeavePolicy = apperror.New(
		apperror.CodeInvalidInput,
		"Leave policy must be overlap or anchor",
		http.StatusBadRequest,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll not found",
		http.StatusNotFound,
	)

	ErrPayrollExists = apperror.New(
		apperror.CodeConflict,
		"Payroll already generated for this employee and period",
		http.StatusConflict,
	)
)
