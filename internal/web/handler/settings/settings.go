// Package settings implements the subscriber settings form.
package settings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amberwatch/amberwatch/internal/amber"
	"github.com/amberwatch/amberwatch/internal/config"
	controller "github.com/amberwatch/amberwatch/internal/db/controller/settings"
	"github.com/amberwatch/amberwatch/internal/db/models"
	"github.com/amberwatch/amberwatch/internal/web/handler"
	"github.com/amberwatch/amberwatch/internal/web/session"
)

const (
	// Path is the path to the settings page.
	Path = "settings"
)

// Service is the settings form handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	gateway   *amber.Client
	validator *validator.Validate
}

// Handler is the settings form handler.
var Handler = Service{}

// Init initializes the settings form handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, gateway *amber.Client) error {
	if app == nil || cfg == nil || db == nil || gateway == nil {
		return errors.New("app, cfg, db or gateway is nil")
	}

	s.db = db
	s.cfg = cfg
	s.gateway = gateway
	s.validator = validator.New()

	app.Route("/"+Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Get)
		router.Post(handler.RootPath, s.Post)
	})

	return nil
}

// Get renders the settings form, prefilled from the remembered email when
// the visitor saved settings before.
func (s *Service) Get(c *fiber.Ctx) error {
	form := defaultSettings()

	if email := session.RememberedEmail(c); email != "" {
		saved, err := controller.GetByEmail(s.db, email)

		switch {
		case err == nil:
			form = saved
		case errors.Is(err, controller.ErrSettingsNotFound):
			// remembered email with no row, show the empty form
		default:
			log.Error().Err(err).Str("email", email).Msg("failed to load saved settings")
		}
	}

	return c.Render(Path, fiber.Map{
		"Settings": form,
		"Title":    s.cfg.Title,
	}, handler.BaseLayout)
}

// Post handles the settings form submission: validate, resolve the site id
// from the token, upsert, remember the email.
func (s *Service) Post(c *fiber.Ctx) error {
	form := &models.Settings{}
	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse settings form")
		return c.Status(fiber.StatusBadRequest).Render(Path, fiber.Map{
			"Settings": form,
			"Title":    s.cfg.Title,
			"Error":    "Invalid form data",
		}, handler.BaseLayout)
	}

	// checkbox inputs are absent when unticked, BodyParser leaves them false
	if err := s.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		errors.As(err, &validationErrors)
		errorMessages := make([]string, len(validationErrors))
		for i, ve := range validationErrors {
			errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
		}

		log.Error().Err(err).Msg("validation failed for settings form")
		return c.Status(fiber.StatusBadRequest).Render(Path, fiber.Map{
			"Settings": form,
			"Title":    s.cfg.Title,
			"Error":    errorMessages,
		}, handler.BaseLayout)
	}

	// resolve the site id from the token, first site wins
	sites, err := s.gateway.Sites(c.Context(), form.AmberAPIToken)
	if err != nil {
		log.Error().Err(err).Str("email", form.NotificationEmail).Msg("failed to resolve amber site id")
		return c.Status(fiber.StatusBadGateway).Render(Path, fiber.Map{
			"Settings": form,
			"Title":    s.cfg.Title,
			"Error":    "Failed to fetch sites. Please check your API token.",
		}, handler.BaseLayout)
	}

	form.AmberSiteID = sites[0].ID
	form.Active = true

	if err = controller.Upsert(s.db, form); err != nil {
		log.Error().Err(err).Str("email", form.NotificationEmail).Msg("failed to save settings")
		return c.Status(fiber.StatusInternalServerError).Render(Path, fiber.Map{
			"Settings": form,
			"Title":    s.cfg.Title,
			"Error":    "Failed to save settings. Please try again.",
		}, handler.BaseLayout)
	}

	if err = session.RememberEmail(c, form.NotificationEmail); err != nil {
		log.Warn().Err(err).Msg("failed to remember email in session")
	}

	log.Info().
		Str("email", form.NotificationEmail).
		Str("site_id", form.AmberSiteID).
		Msg("settings saved")

	return c.Render(Path, fiber.Map{
		"Settings": form,
		"Title":    s.cfg.Title,
		"Success":  "Your preferences have been updated successfully.",
	}, handler.BaseLayout)
}

// defaultSettings mirrors the form defaults for first time visitors.
func defaultSettings() *models.Settings {
	return &models.Settings{
		NotificationsEnabled: true,
		QuietHoursStart:      "22:00",
		QuietHoursEnd:        "07:00",
	}
}
