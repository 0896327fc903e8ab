package http

import (
	"github.com/gin-gonic/gin"

	"meeting-concierge/internal/agent"
	"meeting-concierge/internal/scheduler"
	"meeting-concierge/pkg/log"
)

// Handler is the public interface for the scheduler HTTP delivery layer.
type Handler interface {
	ProcessUserQuery(c *gin.Context)
	ScheduleMeeting(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    scheduler.UseCase
	agent agent.Runner
}

// New creates a new HTTP handler for the scheduling domain.
func New(l log.Logger, uc scheduler.UseCase, runner agent.Runner) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		agent: runner,
	}
}
