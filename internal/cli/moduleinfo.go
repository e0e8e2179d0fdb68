package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/justyntemme/vst3shim/internal/gain"
	"github.com/justyntemme/vst3shim/pkg/framework/debug"
)

func newModuleInfoCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "moduleinfo",
		Short: "Write the moduleinfo description of the factory",
		Long: `Moduleinfo renders the factory as a VST3 moduleinfo file, the description
bundles ship in Contents/Resources so hosts can scan without loading code.

Example:
  vst3shim moduleinfo -o Gain.vst3/Contents/Resources/moduleinfo.json
  vst3shim moduleinfo --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mi, err := a.factory.ModuleInfo(gain.ModuleName, gain.ModuleVersion)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := write(w, format, mi.WriteJSON, mi.WriteYAML); err != nil {
				return err
			}
			debug.Info().Str("format", format).Str("output", output).Int("classes", len(mi.Classes)).Msg("moduleinfo written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func write(w io.Writer, format string, asJSON, asYAML func(io.Writer) error) error {
	switch format {
	case "json":
		return asJSON(w)
	case "yaml", "yml":
		return asYAML(w)
	}
	return fmt.Errorf("unknown format %q (want json or yaml)", format)
}
