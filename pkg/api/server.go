// Package api exposes the read-only HTTP surface: cities, meetings, matters,
// council records, search, and operational status. All writes happen through
// the sync and processing loops; the API never mutates civic data.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Engagic/engagic-sub004/ent"
	"github.com/Engagic/engagic-sub004/pkg/database"
	"github.com/Engagic/engagic-sub004/pkg/queue"
	"github.com/Engagic/engagic-sub004/pkg/services"
)

// Server hosts the HTTP API.
type Server struct {
	client     *ent.Client
	dbClient   *database.Client
	svcs       *services.Services
	workerPool *queue.WorkerPool // nil when this pod runs no workers

	httpServer *http.Server
}

// NewServer creates the API server. workerPool may be nil.
func NewServer(dbClient *database.Client, svcs *services.Services, workerPool *queue.WorkerPool) *Server {
	return &Server{
		client:     dbClient.Client,
		dbClient:   dbClient,
		svcs:       svcs,
		workerPool: workerPool,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery(), corsMiddleware())

	router.GET("/health", s.healthHandler)

	api := router.Group("/api")
	{
		api.GET("/cities", s.listCitiesHandler)
		api.GET("/cities/:banana", s.getCityHandler)
		api.GET("/cities/:banana/meetings", s.listMeetingsHandler)
		api.GET("/cities/:banana/matters", s.listMattersHandler)
		api.GET("/cities/:banana/members", s.listMembersHandler)
		api.GET("/cities/:banana/committees", s.listCommitteesHandler)

		api.GET("/meetings/:id", s.getMeetingHandler)
		api.GET("/matters/:id", s.getMatterHandler)

		api.GET("/search", s.searchHandler)
		api.GET("/queue/stats", s.queueStatsHandler)
	}

	return router
}

// Start begins serving on addr. Blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
