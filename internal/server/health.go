// Package server exposes the health HTTP endpoint.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"puzzle-score-bot/internal/pkg/db"
)

// HealthServer reports process health: the bot's Telegram identity and
// database reachability.
type HealthServer struct {
	engine *gin.Engine
	pool   *db.Pool
	me     *tele.User
}

// New creates a HealthServer for the given pool and bot identity.
func New(pool *db.Pool, me *tele.User) *HealthServer {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &HealthServer{
		engine: engine,
		pool:   pool,
		me:     me,
	}

	engine.GET("/healthz", s.handleHealthz)

	return s
}

// handleHealthz answers with the bot identity and database status.
// Returns 503 when the database is unreachable.
func (s *HealthServer) handleHealthz(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "ok"
	if err := s.pool.HealthCheck(c.Request.Context()); err != nil {
		status = http.StatusServiceUnavailable
		dbStatus = err.Error()
	}

	c.JSON(status, gin.H{
		"bot": gin.H{
			"id":       s.me.ID,
			"username": s.me.Username,
		},
		"database": dbStatus,
	})
}

// Run starts the HTTP server on addr. It blocks until the server exits.
func (s *HealthServer) Run(addr string) error {
	log.Info().Str("addr", addr).Msg("Starting health server")
	return s.engine.Run(addr)
}
