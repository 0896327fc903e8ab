package http

import (
	"github.com/gin-gonic/gin"
)

// processSuperuserReq binds and validates the add-superuser request body.
func (h *handler) processSuperuserReq(c *gin.Context) (superuserReq, error) {
	var req superuserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processGroupReq binds and validates the create-group request body.
func (h *handler) processGroupReq(c *gin.Context) (groupReq, error) {
	var req groupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
