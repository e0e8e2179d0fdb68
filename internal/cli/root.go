// Package cli implements the vst3shim command: tooling that inspects the
// factory a module exports the way a host would see it.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/justyntemme/vst3shim/internal/gain"
	"github.com/justyntemme/vst3shim/pkg/bridge"
	"github.com/justyntemme/vst3shim/pkg/factory"
	"github.com/justyntemme/vst3shim/pkg/framework/config"
	"github.com/justyntemme/vst3shim/pkg/framework/debug"
)

type app struct {
	logLevel string

	factory *factory.Factory
	closer  io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "vst3shim",
		Short: "Inspect the VST3 plugin factory of a vst3shim module",
		Long: `vst3shim inspects the plugin factory built into this binary: it lists the
classes in every query generation, writes moduleinfo files and probes the
factory through the same C vtable a host calls.

Logging follows the module configuration (VST3SHIM_LOG_LEVEL,
VST3SHIM_LOG_FILE, VST3SHIM_LOG_FORMAT, VST3SHIM_LOG_ENABLED).`,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error, off); overrides VST3SHIM_LOG_LEVEL")

	cmd.AddCommand(newClassesCmd(a))
	cmd.AddCommand(newModuleInfoCmd(a))
	cmd.AddCommand(newProbeCmd(a))
	cmd.AddCommand(newUIDCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), failStyle.Render("error:"), err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	logger, closer, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	debug.SetDefault(logger)
	a.closer = closer

	f, err := gain.NewFactory()
	if err != nil {
		return err
	}
	a.factory = f
	bridge.Register(f)

	debug.Debug().Str("command", cmd.Name()).Int32("classes", f.CountClasses()).Msg("factory registered")
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
