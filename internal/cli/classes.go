package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justyntemme/vst3shim/pkg/factory"
)

func newClassesCmd(a *app) *cobra.Command {
	var generation string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the classes the factory reports",
		Long: `Classes enumerates the factory in one query generation and prints what a
host receives. The minimal generation carries only CID, cardinality,
category and name.

Example:
  vst3shim classes
  vst3shim classes --generation minimal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGeneration(generation)
			if err != nil {
				return err
			}
			return printClasses(cmd.OutOrStdout(), a.factory, g)
		},
	}

	cmd.Flags().StringVarP(&generation, "generation", "g", "wide", "query generation: minimal, extended or wide")
	return cmd
}

func parseGeneration(s string) (factory.Generation, error) {
	switch strings.ToLower(s) {
	case "minimal", "1", factory.Minimal.String():
		return factory.Minimal, nil
	case "extended", "2", factory.Extended.String():
		return factory.Extended, nil
	case "wide", "unicode", "3", factory.ExtendedWide.String():
		return factory.ExtendedWide, nil
	}
	return 0, fmt.Errorf("unknown generation %q (want minimal, extended or wide)", s)
}

func printClasses(w io.Writer, f *factory.Factory, g factory.Generation) error {
	info := f.Info()
	fmt.Fprintln(w, titleStyle.Render(info.Vendor))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%s  %s  via %s", info.URL, info.Email, g)))
	fmt.Fprintln(w)

	count := f.CountClasses()
	if count == 0 {
		fmt.Fprintln(w, dimStyle.Render("  no classes registered"))
		return nil
	}

	extended := g != factory.Minimal
	header := fmt.Sprintf("%-3s │ %-32s │ %-26s │ %-20s", "#", "CID", "CATEGORY", "NAME")
	if extended {
		header += fmt.Sprintf(" │ %-16s │ %-8s │ %s", "SUBCATEGORIES", "VERSION", "FLAGS")
	}
	fmt.Fprintln(w, headerStyle.Render(header))

	for i := int32(0); i < count; i++ {
		d, res := f.ClassInfoAt(i, g)
		if !res.OK() {
			return fmt.Errorf("%s(%d): %s", g, i, res)
		}
		row := fmt.Sprintf("%-3d │ %-32s │ %-26s │ %-20s", i, d.CID.Hex(), d.Category, d.Name)
		if extended {
			row += fmt.Sprintf(" │ %-16s │ %-8s │ %#x", d.SubCategories, d.Version, d.ClassFlags)
		}
		fmt.Fprintln(w, row)
	}
	return nil
}
