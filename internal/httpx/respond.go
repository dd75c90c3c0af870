package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/apperr"
)

// SendError translates a domain error into a transport response. Unknown
// errors default to 500 without leaking internals.
func SendError(c *gin.Context, err error) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal Server Error",
		"code":  apperr.ErrorCodeInternalFailure,
	})
}

// PathID parses the :id path parameter, responding 400 itself on failure.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid id in path",
			"code":  apperr.ErrorCodeValidation,
		})
		return 0, false
	}
	return id, true
}
