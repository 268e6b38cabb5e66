package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framer/pkg/geom"
	"github.com/matzehuels/framer/pkg/render/schematic"
	"github.com/matzehuels/framer/pkg/units"
)

func (c *CLI) layoutCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout [preset]",
		Short: "Print the frame layout boundaries",
		Long: `Print the four boundaries of the frame layout for a preset (default: ruby):

  painting (max)  the largest measured painting
  painting (min)  the smallest measured painting
  opening         the visible window left by the frame lip
  exterior        the outside edge of the frame

Corners are listed bottom-left, bottom-right, top-right, top-left, in
centimeters with the exterior's bottom-left corner at the origin.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: c.completePresets,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full layout and cut list as JSON")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, w io.Writer, args []string, asJSON bool) error {
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

	l := plan.Layout
	printTitle(w, "%s layout (%s)", plan.Painting.Name, key)
	for _, b := range []struct {
		name string
		b    geom.Boundary
	}{
		{"painting (max)", l.PaintingMax},
		{"painting (min)", l.PaintingMin},
		{"opening", l.Overlap},
		{"exterior", l.Exterior},
	} {
		printKeyValue(w, b.name, corners(b.b))
		printDetail(w, "%s x %s", s.format(units.FromCM(b.b.Width())), s.format(units.FromCM(b.b.Height())))
	}
	return nil
}

func corners(b geom.Boundary) string {
	pts := make([]string, len(geom.Corners))
	for i, c := range geom.Corners {
		p := b.Corner(c)
		pts[i] = fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
	}
	return strings.Join(pts, " ")
}
