package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/process-user-query", h.ProcessUserQuery)
	rg.POST("/schedule-meeting", h.ScheduleMeeting)
}
