package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "indexing-srv/pkg/errors"
)

// OK writes a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Accepted writes a 202 response with data.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		ErrorCode: 0,
		Message:   MessageAccepted,
		Data:      data,
	})
}

// Error writes err. HTTPErrors keep their code and message, anything else is
// reported as an internal error without leaking details.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode(), Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrorCodeInternal,
		Message:   MessageInternal,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: ErrorCodeUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// PanicError writes a 500 response for a recovered panic.
func PanicError(c *gin.Context, recovered any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrorCodeInternal,
		Message:   MessageInternal,
		Errors:    fmt.Sprint(recovered),
	})
}
