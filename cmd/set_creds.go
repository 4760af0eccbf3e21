// ABOUTME: Set-creds command for the tracsis CLI
// ABOUTME: Captures credentials, verifies them with a login and writes the store

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
	"github.com/apsissolutions/tracsis-cli/internal/config"
	"github.com/apsissolutions/tracsis-cli/internal/prompt"
)

var setCredsCmd = &cobra.Command{
	Use:   "set-creds",
	Short: "Store credentials and profile data",
	Long: `Prompt for email and password, verify them with a login, and persist
credentials, profile data and the token snapshot to the credential store.

This is the only command that writes the store; any prior content is
overwritten.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runSetCreds(ctx, os.Stdout, prompt.NewTerminal()); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(setCredsCmd)
}

// runSetCreds verifies the entered credentials against the API before writing
// anything, so the store never holds a pair that cannot log in.
func runSetCreds(ctx context.Context, w io.Writer, p prompt.Prompter) int {
	email, err := p.Line("Email:", "")
	if err != nil {
		fmt.Fprintf(w, "Error reading input: %v\n", err)
		return 1
	}
	password, err := p.Secret("Password:")
	if err != nil {
		fmt.Fprintf(w, "Error reading input: %v\n", err)
		return 1
	}

	api := newAPIClient()
	res := api.Login(ctx, email, password)
	printResult(w, res)
	if res.Error {
		fmt.Fprintln(w, "Login failed!")
		return 1
	}

	var data client.LoginData
	if err := res.DecodeData(&data); err != nil {
		fmt.Fprintf(w, "Error decoding login response: %v\n", err)
		return 1
	}

	cfg := &config.Config{
		Credentials: config.Credentials{User: email, Password: password},
		ProfileData: config.Profile{
			UserID:   data.UserID,
			UserCode: data.UserCode,
			UserName: data.UserName,
		},
		Secret: config.Secret{
			AccessToken:  data.AccessToken,
			RefreshToken: data.RefreshToken,
		},
	}

	if err := config.Save(ConfigPath(), cfg); err != nil {
		fmt.Fprintf(w, "✗ Error saving credentials: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "✓ Credentials and profile data saved successfully!")
	return 0
}
