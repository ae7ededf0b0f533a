package attendance

import (
	"io"
	"net/http"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const maxPunchImageBytes = 5 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// PunchIn accepts an optional multipart "image" part. Employees with an
// enrolled face embedding must submit one.
func (h *Handler) PunchIn(c *gin.Context) {
	var image []byte
	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxPunchImageBytes {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image exceeds the 5MB limit", nil)
			return
		}
		f, err := file.Open()
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		defer f.Close()
		image, err = io.ReadAll(f)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
	}

	resp, err := h.service.PunchIn(c.Request.Context(), c.GetString("employee_id"), image)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) PunchOut(c *gin.Context) {
	resp, err := h.service.PunchOut(c.Request.Context(), c.GetString("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddBreak(c *gin.Context) {
	var req AddBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Start and end times required", err.Error())
		return
	}

	resp, err := h.service.AddBreak(c.Request.Context(), c.GetString("employee_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMy(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	rows, meta, err := h.service.GetMy(c.Request.Context(), c.GetString("employee_id"), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows, &meta)
}

func (h *Handler) GetAll(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	rows, meta, err := h.service.GetAll(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rows, &meta)
}
