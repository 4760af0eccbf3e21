// ABOUTME: Tests for the shared authentication orchestration
// ABOUTME: Covers store loading, lazy login and envelope printing

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apsissolutions/tracsis-cli/internal/client"
	"github.com/apsissolutions/tracsis-cli/internal/config"
)

// loginResponse is the canonical successful login body used across the
// command tests.
const loginResponse = `{
	"error": false,
	"message": "Login successful",
	"data": {
		"access_token": "AT1",
		"refresh_token": "RT1",
		"user_id": 6010,
		"user_code": "EMP-6010",
		"user_name": "Test User"
	}
}`

// testStore returns a usable credential store record.
func testStore() *config.Config {
	return &config.Config{
		Credentials: config.Credentials{User: "a@b.com", Password: "secret"},
		ProfileData: config.Profile{UserID: 6010, UserCode: "EMP-6010", UserName: "Test User"},
	}
}

// writeStore persists cfg to a temp file and returns its path.
func writeStore(t *testing.T, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("saving test config: %v", err)
	}
	return path
}

// setTestFlags points the package-level flag state at the given config path
// and API URL for the duration of the test.
func setTestFlags(t *testing.T, configPath, api string) {
	t.Helper()
	oldConfig, oldAPI, oldJSON := configFlag, apiURL, jsonOutput
	configFlag, apiURL, jsonOutput = configPath, api, false
	t.Cleanup(func() {
		configFlag, apiURL, jsonOutput = oldConfig, oldAPI, oldJSON
	})
}

func TestLoadStore_MissingFile(t *testing.T) {
	setTestFlags(t, filepath.Join(t.TempDir(), "nope.json"), "")

	var buf bytes.Buffer
	cfg, code := loadStore(&buf)
	if cfg != nil || code != 1 {
		t.Errorf("expected nil config and exit 1, got %v, %d", cfg, code)
	}
	if !strings.Contains(buf.String(), "Run 'tracsis set-creds'") {
		t.Errorf("expected set-creds hint, got %q", buf.String())
	}
}

func TestLoadStore_MissingCredentials(t *testing.T) {
	path := writeStore(t, &config.Config{
		Credentials: config.Credentials{User: "a@b.com"},
	})
	setTestFlags(t, path, "")

	var buf bytes.Buffer
	cfg, code := loadStore(&buf)
	if cfg != nil || code != 1 {
		t.Errorf("expected nil config and exit 1, got %v, %d", cfg, code)
	}
	if !strings.Contains(buf.String(), "invalid or missing credentials") {
		t.Errorf("expected credentials error, got %q", buf.String())
	}
}

func TestLoadStore_Valid(t *testing.T) {
	path := writeStore(t, testStore())
	setTestFlags(t, path, "")

	var buf bytes.Buffer
	cfg, code := loadStore(&buf)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if cfg.Credentials.User != "a@b.com" {
		t.Errorf("expected user a@b.com, got %q", cfg.Credentials.User)
	}
	if cfg.ProfileData.UserID != 6010 {
		t.Errorf("expected user id 6010, got %d", cfg.ProfileData.UserID)
	}
}

func TestEnsureAuthenticated_LogsInOnce(t *testing.T) {
	logins := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		logins++
		fmt.Fprint(w, loginResponse)
	}))
	defer server.Close()

	api := client.New(server.URL)
	var buf bytes.Buffer
	if code := ensureAuthenticated(context.Background(), &buf, api, testStore()); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Not authenticated. Performing login first...") {
		t.Errorf("expected lazy-login notice, got %q", buf.String())
	}

	// Second call finds the session in place and does not hit the server.
	if code := ensureAuthenticated(context.Background(), &buf, api, testStore()); code != 0 {
		t.Fatalf("expected exit 0 on second call, got %d", code)
	}
	if logins != 1 {
		t.Errorf("expected exactly 1 login, got %d", logins)
	}
}

func TestEnsureAuthenticated_LoginFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": true, "message": "Invalid credentials"}`)
	}))
	defer server.Close()

	api := client.New(server.URL)
	var buf bytes.Buffer
	if code := ensureAuthenticated(context.Background(), &buf, api, testStore()); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "Login failed!") {
		t.Errorf("expected failure notice, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Invalid credentials") {
		t.Errorf("expected envelope message, got %q", buf.String())
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, client.Result{Error: true, Message: "boom", StatusCode: 502})

	out := buf.String()
	if !strings.Contains(out, `"error": true`) {
		t.Errorf("expected error field, got %q", out)
	}
	if !strings.Contains(out, `"message": "boom"`) {
		t.Errorf("expected message field, got %q", out)
	}
	if !strings.Contains(out, `"status_code": 502`) {
		t.Errorf("expected status code field, got %q", out)
	}
}
