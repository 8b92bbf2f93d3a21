package middleware

import (
	"hawaiielite-properties/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last handler error as {"error":{"message","code"}}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := utils.LogAndMapError(c.Errors.Last().Err, "http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(RequestIDKey),
		)

		c.JSON(appErr.HTTPStatus, gin.H{
			"error": gin.H{
				"message": appErr.UserMessage,
				"code":    appErr.Code,
			},
		})
	}
}
