package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/add-superuser", h.AddSuperuser)
	rg.POST("/create-group", h.CreateGroup)
	rg.GET("/list-groups", h.ListGroups)
}
