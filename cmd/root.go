package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jake/detectlang/internal/config"
	"github.com/jake/detectlang/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        *zap.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "detectlang",
		Short: "Identify programming languages from file paths and extensions",
		Long: `detectlang maps file paths and extensions to a language name and ID.
The ID is a lowercase, slug-safe form of the name ("C++" -> "cpp").

Detection only looks at the extension of a path. Files are never opened.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default ./.detectlangrc.yaml, then ~/.config/detectlang/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("format", "f", config.FormatText, "Output format: text, json or yaml")

	// Bind flags to viper
	a.v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	a.v.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.AddCommand(
		newDetectCmd(a),
		newScanCmd(a),
		newTreeCmd(a),
		newListCmd(a),
	)
	return rootCmd
}

// Execute runs the CLI and exits non-zero on error. It is called by main.main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command) error {
	for name, key := range walkFlagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}
	// --no-gitignore inverts scan.gitignore, so it cannot be bound directly.
	if f := cmd.Flags().Lookup("no-gitignore"); f != nil && f.Changed {
		a.v.Set("scan.gitignore", f.Value.String() != "true")
	}

	opts := config.DefaultLoadOptions()
	opts.ConfigFile = a.configFile
	cfg, err := config.Load(a.v, opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	a.log = logger
	a.log.Debug("loaded config", zap.Any("config", cfg))
	return nil
}
