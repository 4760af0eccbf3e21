// ABOUTME: Login command for the tracsis CLI
// ABOUTME: Performs a fresh login and reports the token state

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/apsissolutions/tracsis-cli/internal/client"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the Tracsis API",
	Long:  `Authenticate with the stored credentials and print the login response.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runLogin(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

// runLogin always performs a fresh login, regardless of any prior session.
func runLogin(ctx context.Context, w io.Writer) int {
	cfg, code := loadStore(w)
	if code != 0 {
		return code
	}

	api := newAPIClient()
	fmt.Fprintf(w, "Attempting to login as %s...\n", cfg.Credentials.User)

	res := api.Login(ctx, cfg.Credentials.User, cfg.Credentials.Password)
	printResult(w, res)

	if res.Error || !api.IsAuthenticated() {
		fmt.Fprintln(w, "\n✗ Login failed!")
		return 1
	}

	var data client.LoginData
	if err := res.DecodeData(&data); err == nil {
		fmt.Fprintln(w, "\n✓ Login successful! Tokens have been stored for subsequent API calls.")
		fmt.Fprintf(w, "✓ Access token: %s...\n", truncateToken(data.AccessToken))
	}
	return 0
}

// truncateToken shortens a token for display.
func truncateToken(token string) string {
	if len(token) <= 20 {
		return token
	}
	return token[:20]
}
