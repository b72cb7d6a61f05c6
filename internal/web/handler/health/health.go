// Package health exposes liveness and metrics endpoints.
package health

import (
	"errors"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/amberwatch/amberwatch/internal/config"
)

const (
	// CheckAlivePath is the liveness probe path.
	CheckAlivePath = "/checkalive"

	// MetricsPath is the prometheus scrape path.
	MetricsPath = "/metrics"
)

// Service is the health handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the health handler.
var Handler = Service{}

// Init initializes the health handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.cfg = cfg
	s.db = db

	app.Get(CheckAlivePath, s.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}

// CheckAlive answers liveness probes. It also pings the database so a dead
// store shows up before the next sweep does.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		return c.Status(fiber.StatusServiceUnavailable).SendString("db unreachable")
	}

	return c.SendString("ok")
}
