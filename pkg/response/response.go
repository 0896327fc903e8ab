package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the body as-is.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Message sends 200 with a plain message body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResp{Message: msg})
}

// BadRequest sends 400 with an error detail.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResp{Detail: err.Error()})
}

// InternalError sends 500 with an error detail.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Detail: err.Error()})
}

// NotFound sends 404 with an error detail.
func NotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, ErrorResp{Detail: err.Error()})
}
