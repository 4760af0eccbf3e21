// ABOUTME: Tests for the credential store
// ABOUTME: Covers load/save round trips and the credential validity predicate

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_FullRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
        "credentials": {"user": "a@b.com", "password": "secret"},
        "profile_data": {"user_id": 6010, "user_code": "EMP-6010", "user_name": "Abu Syeed"},
        "secret": {"access_token": "AT1", "refresh_token": "RT1"}
    }`
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", cfg.Credentials.User)
	assert.Equal(t, 6010, cfg.ProfileData.UserID)
	assert.Equal(t, "RT1", cfg.Secret.RefreshToken)
	assert.True(t, cfg.HasCredentials())
}

func TestHasCredentials_FailsClosed(t *testing.T) {
	cases := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"empty record", &Config{}},
		{"missing password", &Config{Credentials: Credentials{User: "a@b.com"}}},
		{"missing user", &Config{Credentials: Credentials{Password: "secret"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.cfg.HasCredentials())
		})
	}
}

func TestSave_RoundTripAndOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	first := &Config{Credentials: Credentials{User: "old@b.com", Password: "old"}}
	require.NoError(t, Save(path, first))

	second := &Config{
		Credentials: Credentials{User: "a@b.com", Password: "secret"},
		ProfileData: Profile{UserID: 6010, UserCode: "EMP-6010", UserName: "Abu Syeed"},
		Secret:      Secret{AccessToken: "AT1", RefreshToken: "RT1"},
	}
	require.NoError(t, Save(path, second))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("TRACSIS_CONFIG", "/tmp/override.json")
	assert.Equal(t, "/tmp/override.json", DefaultPath())
}
