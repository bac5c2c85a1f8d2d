package helper

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuccessResponse is the gateway's JSON success envelope.
type SuccessResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func HandleSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Status:  statusCode,
		Message: message,
		Data:    data,
	})
}

type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

func HandleError(c *gin.Context, statusCode int, err error, message string) {
	zap.L().Warn("request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", statusCode),
		zap.Error(err))
	c.JSON(statusCode, ErrorResponse{
		Error: message,
	})
}
