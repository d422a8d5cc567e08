// Package cli implements the falloff command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/falloff"
	"honnef.co/go/falloff/internal/config"
	"honnef.co/go/falloff/internal/observability"
)

// Version is the command's version, set at build time with
// -ldflags "-X honnef.co/go/falloff/internal/cli.Version=…".
var Version = "devel"

// app carries state from the root command's pre-run to its subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

// NewRootCmd returns a fresh command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:           "falloff",
		Short:         "Sample non-symmetric potentials along a stroke.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = observability.NewLogger(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))
			falloff.SetLogger(observability.NewSlogLogger(a.log))
			a.log.Debug("loaded configuration", zap.String("version", Version), zap.String("file", a.cfgFile))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
			falloff.SetLogger(nil)
		},
	}
	root.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "YAML config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	mustBind(a.v, "logger.level", flags.Lookup("log-level"))
	mustBind(a.v, "logger.format", flags.Lookup("log-format"))

	root.AddCommand(newSampleCmd(a))
	return root
}

// Execute runs the command tree with ctx and args.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("falloff: %w", err)
	}
	return nil
}
