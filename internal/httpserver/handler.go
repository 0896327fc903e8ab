package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	knowledgeHTTP "meeting-concierge/internal/knowledge/delivery/http"
	"meeting-concierge/internal/middleware"
	registryHTTP "meeting-concierge/internal/registry/delivery/http"
	schedulerHTTP "meeting-concierge/internal/scheduler/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLogger())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes. The public paths are
// flat, so every domain registers on the root group.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	root := srv.gin.Group("")

	schedulerHTTP.RegisterRoutes(root, srv.schedulerHandler)
	srv.l.Infof(ctx, "Scheduler routes registered")

	registryHTTP.RegisterRoutes(root, srv.registryHandler)
	srv.l.Infof(ctx, "Registry routes registered")

	if srv.knowledgeHandler != nil {
		knowledgeHTTP.RegisterRoutes(root, srv.knowledgeHandler)
		srv.l.Infof(ctx, "Knowledge routes registered")
	} else {
		srv.l.Warnf(ctx, "Knowledge handler not configured, skipping document upload route")
	}

	return nil
}
