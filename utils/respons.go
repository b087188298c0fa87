package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse adalah amplop respons untuk semua endpoint.
type JSONResponse struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		StatusCode: code,
		Message:    err.Error(),
		Data:       nil,
	})
}
