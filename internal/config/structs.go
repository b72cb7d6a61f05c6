package config

import (
	"github.com/amberwatch/amberwatch/internal/logger"
)

const (
	// DefaultAmberBaseURL is the public Amber Electric REST API endpoint.
	DefaultAmberBaseURL = "https://api.amber.com.au/v1"

	// DefaultLoopsBaseURL is the Loops transactional email API endpoint.
	DefaultLoopsBaseURL = "https://app.loops.so/api/v1"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Amber     Amber
	Email     Email
	Monitor   Monitor
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Amber holds the Amber Electric API client settings.
// Per-subscriber tokens live in the settings table, not here.
type Amber struct {
	BaseURL string // API base url, override for tests only
	Timeout int    // request timeout in seconds
}

// Email holds the Loops transactional email settings.
type Email struct {
	BaseURL         string // API base url, override for tests only
	APIKey          string // Loops API key
	TransactionalID string // template id used for all alert emails
	Timeout         int    // request timeout in seconds
}

// Monitor holds the price monitor sweep settings.
type Monitor struct {
	Enabled         bool   // run the in-process scheduler (the sweep command ignores this)
	IntervalMinutes int    // minutes between sweeps
	Timezone        string // IANA zone used for quiet hours evaluation
}
