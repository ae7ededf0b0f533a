package errors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrAlreadyPunchedIn = apperror.New(
		apperror.CodeConflict,
		"Already punched in today",
		http.StatusConflict,
	)

	ErrAlreadyPunchedOut = apperror.New(
		apperror.CodeConflict,
		"Already punched out today",
		http.StatusConflict,
	)

	ErrNoPunchInToday = apperror.New(
		apperror.CodeNotFound,
		"No punch-in found for today",
		http.StatusNotFound,
	)

	ErrNoAttendanceToday = apperror.New(
		apperror.CodeNotFound,
		"No attendance found for today",
		http.StatusNotFound,
	)

	ErrBreaksClosed = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot add breaks after 6 PM",
		http.StatusBadRequest,
	)

	ErrBreakTimesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Start and end times required",
		http.StatusBadRequest,
	)

	ErrBreakEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"Break end must be after start",
		http.StatusBadRequest,
	)

	ErrInvalidDateFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date filter, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrFaceImageRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A face image is required to punch in",
		http.StatusBadRequest,
	)

	ErrFaceMismatch = apperror.New(
		apperror.CodeForbidden,
		"Face verification failed",
		http.StatusForbidden,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
