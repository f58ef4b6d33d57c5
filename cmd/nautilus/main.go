package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nautilus/internal/config"
	"nautilus/internal/logging"
	"nautilus/internal/validate"
)

const defaultConfigPath = ".nautilus/config.yaml"

var (
	// Global flags
	verbose     bool
	configPath  string
	backendFlag string
	problemFile string
	logFile     string

	// Loaded configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nautilus",
	Short: "Interactive NAUTILUS and E-NAUTILUS decision sessions",
	Long: `nautilus guides a decision maker from the nadir point towards the Pareto
optimal set of a multiobjective problem, one iteration at a time.

Every round either takes preference information (percentages, relative
ranks, or direct improvements) or a choice between candidate points.
Answer "c" to stop with the current solution or "q" to quit.

Run without arguments to solve with NAUTILUS and continue with E-NAUTILUS
while iterations remain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if cfg, err = loadConfig(); err != nil {
			return err
		}
		if err := logging.Initialize(cfg.Logging.Options()); err != nil {
			logger.Warn("file logging disabled", zap.Error(err))
		}
		if err := logging.InitAudit(); err != nil {
			logger.Warn("audit log disabled", zap.Error(err))
		}
		logging.Boot("nautilus starting: command=%s config=%s", cmd.Name(), configPath)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSolve,
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if backendFlag != "" {
		c.Session.Backend = backendFlag
	}
	if problemFile != "" {
		c.Problem.PointsFile = problemFile
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", configPath, err)
	}
	logging.BootDebug("config %s: backend=%s problem=%s points_file=%s",
		configPath, c.Session.Backend, c.Problem.Name, c.Problem.PointsFile)
	logger.Debug("configuration loaded",
		zap.String("path", configPath),
		zap.String("backend", c.Session.Backend),
		zap.String("problem", c.Problem.Name),
		zap.String("points_file", c.Problem.PointsFile))
	return c, nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "", "Prompt backend: auto, terminal, line, scripted (default from config)")
	rootCmd.PersistentFlags().StringVarP(&problemFile, "problem-file", "p", "", "YAML point set to solve instead of the built-in problem")
	rootCmd.PersistentFlags().StringVar(&logFile, "logfile", "", "Also write the session transcript to this file")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(nautilusCmd)
	rootCmd.AddCommand(enautilusCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(problemCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, validate.ErrQuit) {
			fmt.Fprintln(os.Stderr, "User exit")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
