package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	knowledgeHTTP "meeting-concierge/internal/knowledge/delivery/http"
	registryHTTP "meeting-concierge/internal/registry/delivery/http"
	schedulerHTTP "meeting-concierge/internal/scheduler/delivery/http"
	"meeting-concierge/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	schedulerHandler schedulerHTTP.Handler
	registryHandler  registryHTTP.Handler
	knowledgeHandler knowledgeHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	SchedulerHandler schedulerHTTP.Handler
	RegistryHandler  registryHTTP.Handler
	KnowledgeHandler knowledgeHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		schedulerHandler: cfg.SchedulerHandler,
		registryHandler:  cfg.RegistryHandler,
		knowledgeHandler: cfg.KnowledgeHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.schedulerHandler == nil {
		return errors.New("scheduler handler is required")
	}
	if srv.registryHandler == nil {
		return errors.New("registry handler is required")
	}
	return nil
}
