package server

import (
	"juicetycoon/internal/database"
	"juicetycoon/internal/game"
	"juicetycoon/internal/models"
	"juicetycoon/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// Server exposes the game session to the presentation layer over HTTP
// and websocket. The UI is an external collaborator: it drives the
// session through the action endpoints and consumes snapshots and
// events, never game state directly.
type Server struct {
	router  *gin.Engine
	session *game.Session
	catalog *models.Catalog
	store   *database.Store
	monitor *monitoring.Monitor
	hub     *Hub
}

// NewServer creates a new game server instance. The store may be nil
// when the serve log is disabled.
func NewServer(session *game.Session, catalog *models.Catalog, store *database.Store, monitor *monitoring.Monitor) *Server {
	server := &Server{
		router:  gin.Default(),
		session: session,
		catalog: catalog,
		store:   store,
		monitor: monitor,
		hub:     NewHub(),
	}

	// Every session event is pushed to connected websocket clients
	// together with a fresh snapshot.
	session.Subscribe(server.broadcastEvent)

	server.setupRoutes()
	return server
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ws", s.handleWebSocket)

	api := s.router.Group("/api/v1")
	{
		api.GET("/state", s.handleState)
		api.GET("/catalog", s.handleCatalog)
		api.POST("/vessels/:index/fruits", s.handleSubmitFruit)
		api.POST("/vessels/:index/serve", s.handleServeVessel)
		api.POST("/session/reset", s.handleReset)
		api.POST("/session/difficulty", s.handleSetDifficulty)
		api.GET("/serves", s.handleServes)
		api.GET("/stats", s.handleStats)
	}
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}
