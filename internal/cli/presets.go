package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/units"
)

func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the known paintings",
		Long: `List the built-in paintings and any loaded with --presets.

Sizes are the measured minimum and maximum; hidden depths are the amount of
each edge the frame lip should cover.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPresets(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) runPresets(ctx context.Context, w io.Writer) error {
	s, err := c.settings()
	if err != nil {
		return err
	}
	cat, err := c.catalog(ctx, s)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, cat.Len())
	for _, key := range cat.Keys() {
		p, err := cat.Get(key)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			key,
			p.Name,
			sizeRange(s, p.WidthMin, p.WidthMax),
			sizeRange(s, p.HeightMin, p.HeightMax),
			hiddenEdges(s, p),
			cat.Source(key),
		})
	}

	printTable(w, []string{"KEY", "NAME", "WIDTH", "HEIGHT", "HIDDEN L/T/R/B", "SOURCE"}, rows)
	return nil
}

func sizeRange(s settings, lo, hi float64) string {
	if lo == hi {
		return s.format(units.FromCM(hi))
	}
	return s.format(units.FromCM(lo)) + " - " + s.format(units.FromCM(hi))
}

func hiddenEdges(s settings, p frame.PaintingSpec) string {
	return fmt.Sprintf("%s / %s / %s / %s",
		s.format(units.FromCM(p.HideLeft)), s.format(units.FromCM(p.HideTop)),
		s.format(units.FromCM(p.HideRight)), s.format(units.FromCM(p.HideBottom)))
}
