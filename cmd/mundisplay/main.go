package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aaronzipp/mun-display/internal/committee"
	"github.com/aaronzipp/mun-display/internal/config"
)

const programName = "mundisplay"

var (
	globalFlags = struct {
		debug   bool
		envFile string
	}{}
	configFile string
)

// newLogger builds the process logger. Debug comes from the flag, the
// config file or a non-empty DEBUG variable.
func newLogger(cfg *config.Config) *slog.Logger {
	logLevel := slog.LevelInfo
	addSource := false
	if globalFlags.debug || cfg.Debug || os.Getenv("DEBUG") != "" {
		logLevel = slog.LevelDebug
		addSource = true
	}
	logger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: addSource,
			Level:     logLevel,
		}),
	)
	slog.SetDefault(logger)
	return logger
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// loadCommittees reads the catalog named in the config, or the built-in one
func loadCommittees(cfg *config.Config) (*committee.Catalog, error) {
	if cfg.CommitteesFile == "" {
		return committee.Default()
	}
	return committee.LoadFile(cfg.CommitteesFile)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Model United Nations conference display",
		Run: func(cmd *cobra.Command, args []string) {
			serveRun(cmd, args)
		},
	}

	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.envFile, "env", ".env", "dotenv file to load before reading the environment")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadDotEnv(globalFlags.envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", globalFlags.envFile, err)
		}
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	}

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(consoleCommand())
	rootCmd.AddCommand(committeesCommand())

	if err := rootCmd.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
