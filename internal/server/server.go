// Package server is the thin HTTP layer around the tax estimation engine:
// input ingestion, engine orchestration, and response serialization. It
// never performs tax logic itself.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taxsim/tax-estimator/internal/calculation"
	"github.com/taxsim/tax-estimator/internal/config"
	"github.com/taxsim/tax-estimator/internal/upload"
)

// Server wires the router, middleware, and handlers together.
type Server struct {
	router *gin.Engine
	cfg    config.Server
}

// New builds a server around an engine. The logger is used for request
// logging and handler diagnostics.
func New(cfg config.Server, engine *calculation.Engine, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	router.Use(configureCORS(cfg.CORSOrigins))
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware(logger))

	validator := upload.NewValidator(upload.Limits{MaxFileBytes: cfg.MaxUploadBytes})
	handler := NewTaxHandler(engine, validator, logger)

	router.GET("/health", handler.Health)

	api := router.Group("/api")
	{
		api.POST("/calculate-taxes", handler.CalculateTaxes)
		api.POST("/upload", handler.UploadDocuments)
	}

	return &Server{router: router, cfg: cfg}
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on the configured address.
func (s *Server) Run() error {
	return s.router.Run(s.cfg.Addr)
}

// configureCORS builds the CORS middleware from the allowed origin list.
func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}

	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}
