package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processQueryRequest(c *gin.Context) (processQueryReq, error) {
	var req processQueryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processQueryRequest: %v", err)
		return processQueryReq{}, err
	}
	return req, nil
}

func (h *handler) processScheduleRequest(c *gin.Context) (scheduleMeetingReq, error) {
	var req scheduleMeetingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processScheduleRequest: %v", err)
		return scheduleMeetingReq{}, err
	}
	return req, nil
}
