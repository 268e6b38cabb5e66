package frame_test

import (
	"fmt"

	"github.com/matzehuels/framer/pkg/frame"
	"github.com/matzehuels/framer/pkg/units"
)

func ExampleBuild() {
	ruby := frame.PaintingSpec{
		Name:     "Ruby",
		WidthMin: 23.7, WidthMax: 24.3,
		HeightMin: 34.7, HeightMax: 35.3,
		HideLeft: 0.5, HideTop: 0.5, HideRight: 0.5, HideBottom: 3,
	}

	plan, err := frame.Build(ruby, frame.DefaultStock)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, p := range plan.Parts {
		fmt.Printf("%-6s cut %s (%s), opening %s, lip %s / %s\n",
			p.Side,
			p.OuterLength.Format(units.ModeCM),
			p.OuterLength.Format(units.ModeTape),
			p.InnerLength.Format(units.ModeCM),
			p.InlayWidth.Format(units.ModeCM),
			p.CoverageWidth.Format(units.ModeCM))
	}
	// Output:
	// bottom cut 33.46 cm (13 3/16"), opening 23.30 cm, lip 3.00 cm / 2.70 cm
	// right  cut 41.96 cm (16 17/32"), opening 31.80 cm, lip 0.50 cm / 0.20 cm
	// top    cut 33.46 cm (13 3/16"), opening 23.30 cm, lip 0.50 cm / 0.20 cm
	// left   cut 41.96 cm (16 17/32"), opening 31.80 cm, lip 0.50 cm / 0.20 cm
}

func ExampleComputeLayout_degenerate() {
	p := frame.PaintingSpec{WidthMin: 10, WidthMax: 10, HeightMin: 10, HeightMax: 10, HideLeft: 6, HideRight: 6}
	_, err := frame.Build(p, frame.DefaultStock)
	fmt.Println(err)
	// Output:
	// DEGENERATE_LAYOUT: hidden edges leave no opening: -2x10 cm
}
