package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/justyntemme/vst3shim/internal/probe"
	"github.com/justyntemme/vst3shim/pkg/bridge"
	"github.com/justyntemme/vst3shim/pkg/framework/debug"
)

func newProbeCmd(a *app) *cobra.Command {
	var (
		direct  bool
		timings bool
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Run a host's scan sequence against the factory and check every answer",
		Long: `Probe resolves GetPluginFactory, queries each factory interface, reads the
factory info and enumerates every class in all three query generations,
then checks the answers: interface identity, record consistency across
generations, untouched outputs on failure and unique class IDs.

By default every call goes through the exported C vtable. --direct calls
the Go factory instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var host probe.Host = abiHost{bridge.Open()}
			if direct {
				host = probe.Direct(a.factory)
			}

			p := debug.NewProfiler()
			p.SetEnabled(timings)
			report := probe.Run(host, p)

			out := cmd.OutOrStdout()
			printReport(out, report)
			if timings {
				fmt.Fprintln(out)
				fmt.Fprintln(out, headerStyle.Render("Timings"))
				fmt.Fprint(out, p.Report())
			}

			if !report.Passed() {
				return fmt.Errorf("probe found contract violations")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&direct, "direct", false, "call the Go factory without crossing the C boundary")
	cmd.Flags().BoolVar(&timings, "timings", false, "report per-call timings")
	return cmd
}

func printReport(w io.Writer, r probe.Report) {
	fmt.Fprintln(w, titleStyle.Render(r.Factory.Vendor))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d classes, flags %#x", len(r.Classes), r.Factory.Flags)))
	fmt.Fprintln(w)

	for _, c := range r.Checks {
		if c.Passed() {
			fmt.Fprintf(w, "%s %s\n", passStyle.Render("PASS"), c.Name)
			continue
		}
		fmt.Fprintf(w, "%s %s: %s\n", failStyle.Render("FAIL"), c.Name, c.Detail())
	}
}
