// Package daemon wires the database, clients, monitor and web service.
package daemon

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amberwatch/amberwatch/internal/amber"
	"github.com/amberwatch/amberwatch/internal/config"
	"github.com/amberwatch/amberwatch/internal/db/dsn"
	"github.com/amberwatch/amberwatch/internal/db/models"
	"github.com/amberwatch/amberwatch/internal/mailer"
	"github.com/amberwatch/amberwatch/internal/monitor"
	"github.com/amberwatch/amberwatch/internal/web"
	"github.com/amberwatch/amberwatch/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService web.Service
	scheduler  *monitor.Scheduler
	sweeper    *monitor.Sweeper
}

// Start starts the monitor scheduler and the web service.
func (d *Daemon) Start() error {
	if d.cfg.Monitor.Enabled {
		d.scheduler.Start()
		defer d.scheduler.Stop()
	}

	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// Sweep runs exactly one price monitor sweep. Used by the sweep command
// when scheduling is handled by an external cron trigger.
func (d *Daemon) Sweep(ctx context.Context) error {
	return d.sweeper.Run(ctx)
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.Settings{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	session.Init(sessionStorage(cfg))

	gateway := amber.New(cfg.Amber.BaseURL, time.Duration(cfg.Amber.Timeout)*time.Second)
	sender := mailer.New(
		cfg.Email.BaseURL,
		cfg.Email.APIKey,
		cfg.Email.TransactionalID,
		time.Duration(cfg.Email.Timeout)*time.Second,
	)

	loc, err := time.LoadLocation(cfg.Monitor.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Monitor.Timezone).Msg("invalid monitor timezone")
	}

	sweeper := monitor.NewSweeper(monitor.GormStore{DB: db}, gateway, sender, loc)

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg, db, gateway),
		scheduler:  monitor.NewScheduler(sweeper, time.Duration(cfg.Monitor.IntervalMinutes)*time.Minute),
		sweeper:    sweeper,
	}
}

// openDialector picks the gorm driver for the configured engine.
func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.GormEngine {
	case "postgres":
		return gormpostgres.Open(dsn.CreatePostgres(cfg))
	case "sqlite":
		return sqlite.Open(cfg.DB.SQLitePath)
	default:
		return gormmysql.Open(dsn.Create(cfg))
	}
}

// sessionStorage picks a fiber session storage matching the configured
// engine. The sqlite engine falls back to fiber's in-memory storage.
func sessionStorage(cfg *config.Config) storage.Storage {
	switch cfg.DB.GormEngine {
	case "postgres":
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.CreatePostgresURI(cfg),
			Table:         "sessions",
		})
	case "sqlite":
		return nil
	default:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	}
}
