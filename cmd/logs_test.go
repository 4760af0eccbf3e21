// ABOUTME: Tests for the logs command
// ABOUTME: Verifies the work-log listing and its empty case

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func setLogsFlags(t *testing.T, page, perPage int) {
	t.Helper()
	oldPage, oldPer := logsPage, logsPerPage
	logsPage, logsPerPage = page, perPage
	t.Cleanup(func() {
		logsPage, logsPerPage = oldPage, oldPer
	})
}

func TestRunLogs_ListsEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			fmt.Fprint(w, loginResponse)
		case "/master-grid/grid-data":
			body, _ := io.ReadAll(r.Body)
			if !bytes.Contains(body, []byte("pts_my_logs")) {
				t.Errorf("expected log slug, got %s", body)
			}
			fmt.Fprint(w, `{
				"error": false,
				"data": {
					"items": [
						{"work_title": "Development", "log_hour": 2.5},
						{"work_title": "Testing", "log_hour": 1}
					]
				}
			}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	setTestFlags(t, writeStore(t, testStore()), server.URL)
	setLogsFlags(t, 1, 10)

	var buf bytes.Buffer
	if code := runLogs(context.Background(), &buf, 7); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}

	out := buf.String()
	if !strings.Contains(out, "Development") {
		t.Errorf("expected first entry, got %q", out)
	}
	if !strings.Contains(out, "Testing") {
		t.Errorf("expected second entry, got %q", out)
	}
}

func TestRunLogs_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			fmt.Fprint(w, loginResponse)
		case "/master-grid/grid-data":
			fmt.Fprint(w, `{"error": false, "data": {"items": []}}`)
		}
	}))
	defer server.Close()

	setTestFlags(t, writeStore(t, testStore()), server.URL)
	setLogsFlags(t, 1, 10)

	var buf bytes.Buffer
	if code := runLogs(context.Background(), &buf, 7); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "No log entries found.") {
		t.Errorf("expected empty notice, got %q", buf.String())
	}
}
