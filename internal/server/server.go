// Package server exposes the claim checker over HTTP. The routes mirror
// the original service surface: one adjudication endpoint plus health and
// model metadata.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"veridex/internal/checker"
	"veridex/internal/registry"
)

// Server wraps the gin engine and its dependencies
type Server struct {
	router  *gin.Engine
	addr    string
	checker *checker.Checker
}

// New creates a server around the given checker and registry
func New(addr string, c *checker.Checker, reg *registry.Registry) *Server {
	router := gin.Default()
	SetupRoutes(router, c, reg)

	return &Server{
		router:  router,
		addr:    addr,
		checker: c,
	}
}

// SetupRoutes registers all routes on the router
func SetupRoutes(router *gin.Engine, c *checker.Checker, reg *registry.Registry) {
	router.GET("/health", handleHealth)
	router.POST("/ask", handleAsk(c))

	v1 := router.Group("/v1")
	{
		v1.GET("/models", handleModels(reg))
		v1.GET("/credits", handleCredits(reg))
	}
}

// Run starts the HTTP server and blocks
func (s *Server) Run() error {
	return s.router.Run(s.addr)
}

// Handler returns the underlying http.Handler (used in tests)
func (s *Server) Handler() http.Handler {
	return s.router
}
