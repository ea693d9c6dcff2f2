package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/mergeflow/internal/config"
	"github.com/existflow/mergeflow/internal/logger"
	"github.com/existflow/mergeflow/internal/tui"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
	dbPath     string

	// cfg is loaded once per invocation by the root pre-run
	cfg *config.Config
	// runID tags every log line written by one invocation
	runID = logger.NewRunID()
)

var rootCmd = &cobra.Command{
	Use:   "mergeflow",
	Short: "MergeFlow - photo editing project tracker",
	Long: `MergeFlow tracks photo-editing projects for a small team: who is
working on what, what is late, and how each editor is performing.

Run 'mergeflow' without arguments to launch the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config from file (or defaults if not exists)
		loaded, err := config.Load()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  %v, using defaults\n", err)
			loaded = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		configChanged := false
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel = logLevel
			configChanged = true
		}
		if cmd.Flags().Changed("log-file") {
			loaded.LogFile = logFile
			configChanged = true
		}
		if cmd.Flags().Changed("log-console") {
			loaded.LogConsole = logConsole
			configChanged = true
		}

		// Save config if changed via CLI flags
		if configChanged {
			if err := loaded.Save(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  Failed to save config: %v\n", err)
			}
		}

		// --db only applies to this invocation
		if cmd.Flags().Changed("db") {
			loaded.DBPath = dbPath
		}
		cfg = loaded

		logConfig := logger.DefaultConfig()
		logConfig.Level = logger.ParseLevel(cfg.LogLevel)
		logConfig.FilePath = cfg.LogFile
		logConfig.Console = cfg.LogConsole
		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("MergeFlow started",
			logger.F("command", cmd.Name()),
			logger.F("run", runID),
			logger.F("identity", cfg.Identity.String()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			logger.Info("Launching TUI")
			m := tui.NewModel(a.store, cfg.Identity)
			p := tea.NewProgram(m, tea.WithAltScreen())

			if _, err := p.Run(); err != nil {
				logger.Error("TUI error", logger.Err(err))
				return fmt.Errorf("failed to run TUI: %w", err)
			}

			logger.Info("TUI exited normally")
			return nil
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("MergeFlow exiting", logger.F("command", cmd.Name()), logger.F("run", runID))
		_ = logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	// Add logging flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path for this run")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(editorsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(contextCmd)
}
