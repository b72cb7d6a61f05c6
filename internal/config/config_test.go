package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTOML = `Title = "AmberWatch Test"

[Webserver]
Port = 8080
URL = "http://localhost:8080"

[DB]
GormEngine = "sqlite"
SQLitePath = ":memory:"

[Email]
TransactionalID = "template-1"
`

// writeTestConfig drops a main.toml into a temp dir and returns the
// config path including the trailing separator ReadConfig expects.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	return dir + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(writeTestConfig(t, testTOML))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "AmberWatch Test" {
		t.Errorf("Title = %v, want %v", cfg.Title, "AmberWatch Test")
	}

	if cfg.Webserver.Port != 8080 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 8080)
	}

	if cfg.DB.GormEngine != "sqlite" {
		t.Errorf("DB.GormEngine = %v, want %v", cfg.DB.GormEngine, "sqlite")
	}
}

func TestReadConfig_Defaults(t *testing.T) {
	cfg, err := ReadConfig(writeTestConfig(t, testTOML))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Webserver.ShutDownTime != 5 {
		t.Errorf("Webserver.ShutDownTime = %v, want default 5", cfg.Webserver.ShutDownTime)
	}

	if cfg.Amber.BaseURL != DefaultAmberBaseURL {
		t.Errorf("Amber.BaseURL = %v, want default %v", cfg.Amber.BaseURL, DefaultAmberBaseURL)
	}

	if cfg.Email.BaseURL != DefaultLoopsBaseURL {
		t.Errorf("Email.BaseURL = %v, want default %v", cfg.Email.BaseURL, DefaultLoopsBaseURL)
	}

	if cfg.Monitor.IntervalMinutes != 30 {
		t.Errorf("Monitor.IntervalMinutes = %v, want default 30", cfg.Monitor.IntervalMinutes)
	}

	if cfg.Monitor.Timezone != "Australia/Sydney" {
		t.Errorf("Monitor.Timezone = %v, want default Australia/Sydney", cfg.Monitor.Timezone)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
				Email: Email{TransactionalID: "template-1"},
			},
			wantErr: false,
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
				Email: Email{TransactionalID: "template-1"},
			},
			wantErr: true,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
				Email: Email{TransactionalID: "template-1"},
			},
			wantErr: true,
		},
		{
			name: "missing transactional id",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(writeTestConfig(t, testTOML))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonStr, "Test") {
		t.Error("DumpConfigJSON() output should contain Title")
	}
}
