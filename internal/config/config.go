package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	APIBaseURL  string
	SessionFile string
	StubPort    string
	Debug       bool
}

// Load reads configuration from the environment, honoring a .env file
// loaded by the caller. Everything has a default: the only knob that
// normally changes between machines is the API base URL.
func Load() (*Config, error) {
	base := os.Getenv("API_URL")
	if base == "" {
		base = "http://localhost:3000"
	}

	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		sessionFile = filepath.Join(home, ".petcare", "session.json")
	}

	stubPort := os.Getenv("STUB_PORT")
	if stubPort == "" {
		stubPort = "3000"
	}

	return &Config{
		APIBaseURL:  base,
		SessionFile: sessionFile,
		StubPort:    stubPort,
		Debug:       os.Getenv("DEBUG") == "true",
	}, nil
}
