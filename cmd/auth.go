// ABOUTME: Shared authentication orchestration for data commands
// ABOUTME: Enforces the credentials-present, authenticated, perform-request chain

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/apsissolutions/tracsis-cli/internal/client"
	"github.com/apsissolutions/tracsis-cli/internal/config"
	"github.com/apsissolutions/tracsis-cli/internal/debuglog"
)

// newAPIClient constructs the client for this invocation, with diagnostics
// routed to the debug log.
func newAPIClient() *client.Client {
	c := client.New(GetAPIURL())
	c.SetDebug(debuglog.Log)
	return c
}

// loadStore reads and validates the credential store. On failure it prints a
// configuration error and returns a non-zero exit code; no network activity
// has happened at that point.
func loadStore(w io.Writer) (*config.Config, int) {
	cfg, err := config.Load(ConfigPath())
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, "Run 'tracsis set-creds' to create the credential store.")
		return nil, 1
	}
	if !cfg.HasCredentials() {
		fmt.Fprintf(w, "Error: invalid or missing credentials in %s\n", ConfigPath())
		return nil, 1
	}
	return cfg, 0
}

// ensureAuthenticated performs the lazy login: if the client already holds a
// token pair nothing happens, otherwise it logs in with the stored
// credentials. Returns a non-zero exit code when login fails.
func ensureAuthenticated(ctx context.Context, w io.Writer, api *client.Client, cfg *config.Config) int {
	if api.IsAuthenticated() {
		return 0
	}

	fmt.Fprintln(w, "Not authenticated. Performing login first...")
	res := api.Login(ctx, cfg.Credentials.User, cfg.Credentials.Password)
	if res.Error {
		fmt.Fprintln(w, "Login failed!")
		printResult(w, res)
		return 1
	}
	fmt.Fprintln(w, "Login successful!")
	fmt.Fprintln(w)
	return 0
}

// printResult pretty-prints a result envelope.
func printResult(w io.Writer, res client.Result) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "%+v\n", res)
		return
	}
	fmt.Fprintln(w, string(data))
}

// isTerminal reports whether w is an interactive terminal. Buffered writers
// in tests and piped output both take the plain-text paths.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
