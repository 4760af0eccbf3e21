// ABOUTME: Root command for the tracsis CLI
// ABOUTME: Handles global flags, environment overrides and debug logging

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apsissolutions/tracsis-cli/internal/client"
	"github.com/apsissolutions/tracsis-cli/internal/config"
	"github.com/apsissolutions/tracsis-cli/internal/debuglog"
)

var (
	apiURL     string
	webURL     string
	configFlag string
	jsonOutput bool
	debugFlag  bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "tracsis",
	Short: "CLI for the Tracsis task tracker",
	Long: `tracsis is a command-line client for the Tracsis task-tracking service.

It lists tasks, logs work, creates tasks and captures task screenshots without
leaving the terminal.

Environment Variables:
  TRACSIS_API_URL  Backend API URL (default: production API)
  TRACSIS_WEB_URL  Web UI URL used by snap (default: production UI)
  TRACSIS_CONFIG   Credential store path (default: ~/.config/tracsis/config.json)
  TRACSIS_DEBUG    Enable the debug log when set`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag || os.Getenv("TRACSIS_DEBUG") != "" {
			debuglog.Init(filepath.Dir(ConfigPath()))
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides TRACSIS_API_URL)")
	rootCmd.PersistentFlags().StringVar(&webURL, "web-url", "", "Web UI URL for snap (overrides TRACSIS_WEB_URL)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Credential store path (overrides TRACSIS_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output raw JSON envelopes instead of human-readable text")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write request diagnostics to the debug log")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("TRACSIS_API_URL"); envURL != "" {
		return envURL
	}
	return client.DefaultBaseURL
}

// GetWebURL returns the web UI URL used by the snap command.
func GetWebURL() string {
	if webURL != "" {
		return webURL
	}
	if envURL := os.Getenv("TRACSIS_WEB_URL"); envURL != "" {
		return envURL
	}
	return ""
}

// ConfigPath returns the credential store path from flag, env, or default.
func ConfigPath() string {
	if configFlag != "" {
		return configFlag
	}
	return config.DefaultPath()
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
