package main

import (
	"errors"
	"fmt"
	"os"

	"spltrack/internal/config"
	"spltrack/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "spltrack",
	Short: "spltrack - SPL glider training progress from logbook exports",
	Long: `spltrack reads a semicolon-delimited logbook export, counts duo and solo
flights and minutes per training task, and compares them with the SPL
syllabus requirements.

Run without arguments to open the interactive viewer.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c

		// The viewer owns the terminal; it only logs when a file is configured.
		if cmd == cmd.Root() && cfg.Logging.File == "" {
			logger = zap.NewNop()
			logging.SetRoot(logger, nil)
			return nil
		}

		logger, err = logging.Initialize(logging.Options{
			Level:      cfg.Logging.Level,
			Format:     cfg.Logging.Format,
			File:       cfg.Logging.File,
			Verbose:    verbose,
			Categories: cfg.Logging.Categories,
		})
		if err != nil {
			return err
		}
		logging.Boot("spltrack %s: %s", version, cmd.Name())
		logging.BootDebug("config loaded from %q", configPath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runViewer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the spltrack version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "spltrack %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/spltrack/config.yaml)")

	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Output format: text, markdown, json, yaml (default from config)")
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "Print markdown source instead of rendering it")
	reportCmd.Flags().BoolVarP(&reportWatch, "watch", "w", false, "Re-render whenever the file changes")
	reportCmd.Flags().StringVarP(&reportEncoding, "encoding", "e", "", "Input encoding: auto, utf-8, windows-1250 (default from config)")

	requirementsCmd.Flags().StringVarP(&requirementsFormat, "format", "f", "text", "Output format: text, json, yaml")

	rootCmd.AddCommand(reportCmd, requirementsCmd, versionCmd)
}

// loadConfig reads --config, or the default path when it is unset.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			c := config.DefaultConfig()
			return c, c.Validate()
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// currentConfig returns the loaded config, or defaults when commands run
// without the root pre-run hook.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
