package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "commerce-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPError values choose their own
// status code; anything else is a 400.
func Error(c *gin.Context, err error) {
	status := pkgErrors.StatusCode(err, http.StatusBadRequest)
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
	})
}

// ErrorWithData sends an error response carrying extra error details.
func ErrorWithData(c *gin.Context, err error, data map[string]interface{}) {
	status := pkgErrors.StatusCode(err, http.StatusBadRequest)
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   err.Error(),
		Errors:    data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}
