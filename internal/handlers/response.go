package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/social-network-api/internal/apperr"
)

// Every response uses the same envelope:
//
//	{ "status": "Success"|"Error", "message": string, "data": any }

// Success writes a success envelope with the given status code.
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, gin.H{
		"status":  "Success",
		"message": message,
		"data":    data,
	})
}

// Fail writes an error envelope, translating the error's kind to the
// response status code.
func Fail(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(apperr.KindOf(err)), gin.H{
		"status":  "Error",
		"message": apperr.Message(err),
		"data":    []any{},
	})
}

// FailValidation writes the envelope for a malformed request body or
// parameter, carrying the validator's complaints in data.
func FailValidation(c *gin.Context, err error) {
	data := []any{}
	if err != nil {
		data = append(data, err.Error())
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"status":  "Error",
		"message": "Validation error",
		"data":    data,
	})
}
