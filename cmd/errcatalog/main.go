package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	imerrors "github.com/btakita/import-meta-resolve"
)

var (
	Version = "0.1.0-dev"
)

var log zerolog.Logger

func main() {
	var (
		logLevel string
		windows  bool
	)

	rootCmd := &cobra.Command{
		Use:   "errcatalog",
		Short: "Inspect the resolver's coded-error registry",
		Long: `errcatalog inspects the coded-error registry of the import-meta-resolve
port: every ERR_* code, its base kind, its message rule, and how the
constructed errors come out.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			setupLogging(cfg.LogLevel)
			imerrors.SetWindowsSemantics(cfg.Windows)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&windows, "windows", runtime.GOOS == "windows", "Use Windows path semantics in message text")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExplainCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	log = zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
