package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/justyntemme/vst3shim/pkg/framework/plugin"
	"github.com/justyntemme/vst3shim/pkg/vst3"
)

func newUIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uid <plugin-id>...",
		Short: "Derive class IDs from plugin identifiers",
		Long: `Uid prints the processor and controller class IDs derived from a
reverse-DNS plugin identifier, in the forms needed to pin them in code.

Example:
  vst3shim uid com.example.mydelay`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, id := range args {
				info := plugin.Info{ID: id}
				if err := info.ValidateUID(); err != nil {
					return err
				}
				fmt.Fprintln(out, titleStyle.Render(id))
				printUID(out, "processor", info.UID())
				printUID(out, "controller", info.ControllerUID())
			}
			return nil
		},
	}
	return cmd
}

func printUID(w io.Writer, role string, id vst3.TUID) {
	l1, l2, l3, l4 := id.Words()
	fmt.Fprintf(w, "  %-10s %s  %s\n", role, id.Hex(), dimStyle.Render(id.String()))
	fmt.Fprintf(w, "  %-10s vst3.InlineUID(0x%08X, 0x%08X, 0x%08X, 0x%08X)\n", "", l1, l2, l3, l4)
}
