package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps an application error onto the HTTP status it represents
// and writes the envelope. Unrecognized errors come out as 500 with a generic
// message.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.CodeOf(err) {
	case apperrors.ErrValidation, apperrors.ErrConflict:
		status = http.StatusBadRequest
	case apperrors.ErrNotFound:
		status = http.StatusNotFound
	case apperrors.ErrInvalidCredentials:
		status = http.StatusUnauthorized
	}
	c.JSON(status, NewErrorResponse(apperrors.MessageOf(err)))
}

// PathID parses the numeric :id style parameter named by key.
func PathID(c *gin.Context, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, NewErrorResponse("identificador inválido"))
		return 0, false
	}
	return id, true
}
