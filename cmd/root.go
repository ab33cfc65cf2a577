package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wintrace/wintrace/config"
	"github.com/wintrace/wintrace/internal"
	"github.com/wintrace/wintrace/logging"
)

var (
	cfgFile  string
	logLevel string
	logFile  string
	dataDir  string
	headless bool
)

var rootCmd = &cobra.Command{
	Use:   "wintrace",
	Short: "Desktop activity tracker",
	Long: `wintrace samples the foreground application once per second, accumulates
per-day usage, and persists it as JSON. Run without arguments to start the
tracking daemon with its dashboard; use the report and recap subcommands to
query previously persisted data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}

		app, err := internal.NewApplication(cfg, headless)
		if err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}
		return app.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wintrace.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (default stderr)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding usage data")

	rootCmd.Flags().BoolVar(&headless, "headless", false, "track without the dashboard")
}

// loadConfiguration resolves config file, environment, and flags, then
// initializes the global logger from the result.
func loadConfiguration(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.InitGlobalLogger(cfg.App.LogLevel, cfg.LogFilePath())
	return cfg, nil
}
