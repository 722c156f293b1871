package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/herdpulse/internal/domain/dto"
	"github.com/guttosm/herdpulse/internal/logger"
)

// ErrorHandler renders errors attached with c.Error() when the handler did not
// write a response itself.
//
// The last attached error wins; it is answered with 500 and a standard ErrorResponse.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last()
	logger.L().Error().Err(err.Err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err.Err))
}

// AbortWithError stops the chain and writes a standard ErrorResponse with the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
