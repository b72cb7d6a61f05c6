// Package monitor implements the periodic price evaluation sweep.
package monitor

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amberwatch/amberwatch/internal/amber"
	"github.com/amberwatch/amberwatch/internal/db/controller/settings"
	"github.com/amberwatch/amberwatch/internal/db/models"
	"github.com/amberwatch/amberwatch/internal/mailer"
)

// Store loads the settings rows eligible for a sweep.
type Store interface {
	ListEligible() ([]models.Settings, error)
}

// Gateway fetches current prices from the pricing API.
type Gateway interface {
	CurrentPrice(ctx context.Context, token, siteID string) (amber.PriceSample, error)
}

// Sender dispatches one alert email.
type Sender interface {
	Send(ctx context.Context, a mailer.Alert) error
}

// GormStore adapts a gorm database to the Store interface.
type GormStore struct {
	DB *gorm.DB
}

// ListEligible returns all active subscribers with notifications enabled.
func (s GormStore) ListEligible() ([]models.Settings, error) {
	return settings.ListEligible(s.DB)
}

// Sweeper runs one evaluation sweep across all eligible subscribers.
// It is stateless across runs: every invocation loads the settings batch
// fresh and carries no cursor.
type Sweeper struct {
	store    Store
	gateway  Gateway
	sender   Sender
	location *time.Location

	// now is swapped out in tests to pin the quiet hours clock.
	now func() time.Time
}

// NewSweeper creates a sweeper with explicit collaborators. Quiet hours are
// evaluated against the local time in loc.
func NewSweeper(store Store, gateway Gateway, sender Sender, loc *time.Location) *Sweeper {
	if loc == nil {
		loc = time.UTC
	}

	return &Sweeper{
		store:    store,
		gateway:  gateway,
		sender:   sender,
		location: loc,
		now:      time.Now,
	}
}

// Run executes one sweep. Only a failure to load the settings batch is
// returned as an error; everything after that is per-subscriber and is
// logged without aborting the sweep.
func (s *Sweeper) Run(ctx context.Context) error {
	sweepsTotal.Inc()

	users, err := s.store.ListEligible()
	if err != nil {
		sweepFailures.Inc()
		return errors.Wrap(err, "failed to load eligible subscribers")
	}

	if len(users) == 0 {
		log.Info().Msg("no active subscribers found")
		return nil
	}

	for i := range users {
		s.processUser(ctx, &users[i])
	}

	log.Info().Int("subscribers", len(users)).Msg("price monitor sweep completed")

	return nil
}

// processUser evaluates one subscriber. Failures here never propagate,
// the next subscriber is always processed.
func (s *Sweeper) processUser(ctx context.Context, user *models.Settings) {
	now := s.now().In(s.location)

	if user.QuietHoursEnabled && InQuietHours(user.QuietHoursStart, user.QuietHoursEnd, now) {
		log.Info().Str("email", user.NotificationEmail).Msg("skipping notifications - quiet hours")
		usersSkipped.WithLabelValues("quiet_hours").Inc()

		return
	}

	if !user.HasAmberCredentials() {
		log.Warn().Str("email", user.NotificationEmail).Msg("missing api token or site id")
		usersSkipped.WithLabelValues("missing_credentials").Inc()

		return
	}

	sample, err := s.gateway.CurrentPrice(ctx, user.AmberAPIToken, user.AmberSiteID)
	if err != nil {
		log.Error().Err(err).Str("email", user.NotificationEmail).Msg("failed to fetch current price")
		userFailures.Inc()

		return
	}

	for _, alert := range Evaluate(user, sample) {
		s.send(ctx, user, alert)
	}
}

// send dispatches one alert email. Sender failures are logged and do not
// block other alerts for the same subscriber.
func (s *Sweeper) send(ctx context.Context, user *models.Settings, alert Alert) {
	err := s.sender.Send(ctx, mailer.Alert{
		Email:               user.NotificationEmail,
		FirstName:           user.UserFirstName,
		AlertDescriptor:     alert.Kind.Descriptor(),
		CurrentValue:        alert.FormattedValue(),
		ThresholdDescriptor: alert.Kind.ThresholdDescriptor(),
		Message:             alert.Message(),
	})
	if err != nil {
		log.Error().Err(err).
			Str("email", user.NotificationEmail).
			Str("kind", string(alert.Kind)).
			Msg("failed to send notification")
		alertFailures.WithLabelValues(string(alert.Kind)).Inc()

		return
	}

	log.Info().
		Str("email", user.NotificationEmail).
		Str("kind", string(alert.Kind)).
		Float64("value", alert.Value).
		Float64("threshold", alert.Threshold).
		Msg("notification sent")
	alertsSent.WithLabelValues(string(alert.Kind)).Inc()
}
