package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framer/pkg/render/schematic"
)

func (c *CLI) partsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parts [preset]",
		Short: "Print the cut list for the four frame members",
		Long: `Print the cut list for a preset (default: ruby).

For each side:
  cut       outer length, the length to cut the moulding to
  opening   inner length along the visible window
  inlay     how far the lip overlaps the largest painting
  coverage  how far the lip overlaps the smallest painting

Use --units tape for tape measure readings, with --denominator and
--rounding to control the graduation.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: c.completePresets,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParts(cmd.Context(), cmd.OutOrStdout(), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full layout and cut list as JSON")

	return cmd
}

func (c *CLI) runParts(ctx context.Context, w io.Writer, args []string, asJSON bool) error {
	key, plan, s, err := c.buildPlan(ctx, args)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := schematic.RenderJSON(plan, schematic.WithUnits(s.mode), schematic.WithTapeOptions(s.tape...))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	rows := make([][]string, 0, len(plan.Parts))
	for _, p := range plan.Parts {
		rows = append(rows, []string{
			p.Side.String(),
			s.format(p.OuterLength),
			s.format(p.InnerLength),
			s.format(p.InlayWidth),
			s.format(p.CoverageWidth),
		})
	}

	printTitle(w, "%s cut list (%s)", plan.Painting.Name, key)
	printTable(w, []string{"SIDE", "CUT", "OPENING", "INLAY", "COVERAGE"}, rows)
	printKeyValue(w, "stock", fmt.Sprintf("%g\" x %g\"", plan.Stock.WidthIn, plan.Stock.HeightIn))
	printKeyValue(w, "total length", s.format(plan.Parts.TotalStock()))
	return nil
}
