// Package models contains database model definitions.
package models

import (
	"time"
)

// Settings represents one subscriber's alert configuration.
// Rows are created and updated through the settings form (upsert on
// NotificationEmail) and are read-only to the price monitor.
type Settings struct {
	// ID is the unique identifier for the row.
	ID uint64 `gorm:"primaryKey" form:"-" json:"-"`
	// NotificationEmail is the natural key: the address alerts are sent to.
	NotificationEmail string `gorm:"unique;size:255;not null" form:"notification_email" validate:"required,email"`
	// UserFirstName is used to personalize alert emails.
	UserFirstName string `gorm:"size:100" form:"user_first_name" validate:"required"`
	// AmberAPIToken is the subscriber's Amber Electric API token.
	AmberAPIToken string `gorm:"size:255" form:"amber_api_token" validate:"required"`
	// AmberSiteID is resolved once from the token at save time and cached here.
	AmberSiteID string `gorm:"size:100" form:"amber_site_id"`
	// HighPriceThreshold in cents per kWh. An alert fires when the price exceeds it.
	HighPriceThreshold float64 `form:"high_price_threshold" validate:"gte=0"`
	// LowPriceThreshold in cents per kWh. An alert fires when the price falls below it.
	LowPriceThreshold float64 `form:"low_price_threshold" validate:"gte=0"`
	// RenewableThreshold in percent. An alert fires when the renewable share exceeds it.
	RenewableThreshold float64 `form:"renewable_threshold" validate:"gte=0,lte=100"`
	// NotificationsEnabled toggles all alerts for this subscriber.
	NotificationsEnabled bool `form:"notifications_enabled"`
	// QuietHoursEnabled toggles the do-not-disturb window.
	QuietHoursEnabled bool `form:"quiet_hours_enabled"`
	// QuietHoursStart is the window start as local HH:MM.
	QuietHoursStart string `gorm:"size:5" form:"quiet_hours_start" validate:"omitempty,datetime=15:04"`
	// QuietHoursEnd is the window end as local HH:MM.
	QuietHoursEnd string `gorm:"size:5" form:"quiet_hours_end" validate:"omitempty,datetime=15:04"`
	// Active indicates whether the subscription is live at all.
	Active bool `form:"-"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time `form:"-" json:"-"`
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time `form:"-" json:"-"`
}

// TableName pins the table name used by the settings form and the monitor.
func (Settings) TableName() string {
	return "settings"
}

// HasAmberCredentials reports whether both the API token and the resolved
// site id are present. Without both the monitor can not fetch prices.
func (s *Settings) HasAmberCredentials() bool {
	return s.AmberAPIToken != "" && s.AmberSiteID != ""
}
