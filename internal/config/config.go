// ABOUTME: Credential store for the Tracsis CLI
// ABOUTME: Loads and writes the JSON config file holding credentials, profile and tokens

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Credentials are the login inputs. Both fields must be non-empty for the
// record to be usable.
type Credentials struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// Profile is the identity snapshot captured by set-creds after a successful
// login. UserID is the default actor for task queries.
type Profile struct {
	UserID   int    `json:"user_id"`
	UserCode string `json:"user_code"`
	UserName string `json:"user_name"`
}

// Secret is the token snapshot persisted by set-creds. It is informational
// only: a new process always re-authenticates instead of reusing it.
type Secret struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Config is the on-disk credential store.
type Config struct {
	Credentials Credentials `json:"credentials"`
	ProfileData Profile     `json:"profile_data"`
	Secret      Secret      `json:"secret"`
}

// HasCredentials reports whether the record is usable for login. Fails closed:
// a missing or empty user or password rejects the record.
func (c *Config) HasCredentials() bool {
	return c != nil && c.Credentials.User != "" && c.Credentials.Password != ""
}

// DefaultPath returns the credential store location: TRACSIS_CONFIG if set,
// else ~/.config/tracsis/config.json.
func DefaultPath() string {
	if p := os.Getenv("TRACSIS_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.json")
	}
	return filepath.Join(home, ".config", "tracsis", "config.json")
}

// Load reads the credential store at path. A missing file or malformed JSON
// is an error; callers treat both as fatal.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg to path, creating parent directories as needed. The file is
// written 0600 since it holds a password and tokens.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LoadEnv loads a .env file from the working directory into the environment
// if one exists. Real environment variables win over .env values.
func LoadEnv() {
	_ = godotenv.Load()
}
