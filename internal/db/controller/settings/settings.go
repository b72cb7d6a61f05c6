// Package settings provides database access for subscriber alert settings.
package settings

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amberwatch/amberwatch/internal/db/models"
)

const (
	emailQueryPattern = "notification_email = ?"
)

var (
	// ErrSettingsNotFound is returned when no row exists for the given email.
	ErrSettingsNotFound = errors.New("settings not found")
	// ErrEmailEmpty is returned when the notification email is empty.
	ErrEmailEmpty = errors.New("notification email cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByEmail retrieves the settings row for the given notification email.
func GetByEmail(db *gorm.DB, email string) (*models.Settings, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if email == "" {
		return nil, ErrEmailEmpty
	}

	var s models.Settings
	result := db.Where(emailQueryPattern, email).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, result.Error
	}

	return &s, nil
}

// ListEligible retrieves all rows the price monitor should sweep:
// active subscribers with notifications enabled.
func ListEligible(db *gorm.DB) ([]models.Settings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.Settings
	result := db.Where("active = ? AND notifications_enabled = ?", true, true).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// Upsert inserts the row or, when a row with the same notification email
// already exists, updates it in place. The settings form never deletes.
func Upsert(db *gorm.DB, s *models.Settings) error {
	if db == nil {
		return ErrDBNil
	}
	if s.NotificationEmail == "" {
		return ErrEmailEmpty
	}

	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "notification_email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_first_name",
			"amber_api_token",
			"amber_site_id",
			"high_price_threshold",
			"low_price_threshold",
			"renewable_threshold",
			"notifications_enabled",
			"quiet_hours_enabled",
			"quiet_hours_start",
			"quiet_hours_end",
			"active",
			"updated_at",
		}),
	}).Create(s)

	return result.Error
}
