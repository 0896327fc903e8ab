package http

import (
	"github.com/gin-gonic/gin"

	"meeting-concierge/internal/registry"
	"meeting-concierge/pkg/log"
)

// Handler is the public interface for the registry HTTP delivery layer.
type Handler interface {
	AddSuperuser(c *gin.Context)
	CreateGroup(c *gin.Context)
	ListGroups(c *gin.Context)
}

type handler struct {
	l     log.Logger
	store *registry.Store
}

// New creates a new HTTP handler for the registry domain.
func New(l log.Logger, store *registry.Store) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}
