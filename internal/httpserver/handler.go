package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskflow/internal/model"
	projectHTTP "taskflow/internal/project/delivery/http"
	projectRepo "taskflow/internal/project/repository/sqlite"
	projectUC "taskflow/internal/project/usecase"
	quickaddHTTP "taskflow/internal/quickadd/delivery/http"
	quickaddUC "taskflow/internal/quickadd/usecase"
	taskHTTP "taskflow/internal/task/delivery/http"
	taskRepo "taskflow/internal/task/repository/sqlite"
	taskUC "taskflow/internal/task/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestLog())
	srv.gin.Use(srv.mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires each domain bottom-up: repository, usecase,
// HTTP handler, routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Projects
	pRepo := projectRepo.New(srv.db, srv.l)
	pUC := projectUC.New(srv.l, pRepo)
	projectHTTP.RegisterRoutes(api, projectHTTP.New(srv.l, pUC))

	// Tasks
	tRepo := taskRepo.New(srv.db, srv.l)
	tUC := taskUC.New(srv.l, tRepo, pRepo)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tUC))

	// Quick entry builds on both
	qUC := quickaddUC.New(srv.l, pRepo, tUC, srv.dm, srv.sessionCapacity, srv.sessionTTL)
	quickaddHTTP.RegisterRoutes(api, quickaddHTTP.New(srv.l, qUC))

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
	return nil
}
