package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"juicetycoon/internal/models"
)

// SubmitFruitRequest is the body for a pour action
type SubmitFruitRequest struct {
	FruitID string `json:"fruit_id" binding:"required"`
}

// DifficultyRequest is the body for a difficulty change
type DifficultyRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
}

// handleHealth handles the health check request
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Juice Tycoon API is running"})
}

// handleState returns the current session snapshot
func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Snapshot())
}

// handleCatalog returns the static game data for UI bootstrap
func (s *Server) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog)
}

// handleSubmitFruit pours a fruit into a vessel. Invalid game input is
// not a transport error: the session rejects it silently and the
// response is the unchanged snapshot, with the rejection visible as an
// invalid-action event on the websocket stream.
func (s *Server) handleSubmitFruit(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vessel index"})
		return
	}

	var req SubmitFruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.session.SubmitFruit(index, req.FruitID)
	c.JSON(http.StatusOK, s.session.Snapshot())
}

// handleServeVessel serves a vessel against the active order
func (s *Server) handleServeVessel(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vessel index"})
		return
	}

	s.session.ServeVessel(index)
	c.JSON(http.StatusOK, s.session.Snapshot())
}

// handleReset restarts the session under the current difficulty
func (s *Server) handleReset(c *gin.Context) {
	s.session.Reset()
	c.JSON(http.StatusOK, s.session.Snapshot())
}

// handleSetDifficulty resets the session under a new difficulty
func (s *Server) handleSetDifficulty(c *gin.Context) {
	var req DifficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difficulty, err := models.ParseDifficulty(req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.session.SetDifficulty(difficulty)
	c.JSON(http.StatusOK, s.session.Snapshot())
}

// handleServes returns the most recent serve log entries
func (s *Server) handleServes(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusOK, []struct{}{})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	records, err := s.store.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// handleStats returns the monitor's running totals
func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
