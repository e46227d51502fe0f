package markplot_test

import (
	"fmt"

	"github.com/markplot/markplot"
)

func ExampleProjection_Project() {
	data := markplot.SortByX([]markplot.Point{
		markplot.Pt(5, 5),
		markplot.Pt(0, 5),
		markplot.Pt(12, 8),
		markplot.Pt(3, 2),
	})
	pr := markplot.Projection{
		LengthPerX:  10,
		LengthPerY:  10,
		TotalHeight: 10,
		ViewHeight:  100,
	}
	for _, pt := range pr.Project(data) {
		fmt.Println(pt)
	}
	// Output:
	// (-1, 101)
	// (0, 50)
	// (30, 20)
	// (50, 50)
	// (120, 80)
	// (121, 101)
}

func ExampleLocateMark() {
	pixels := []markplot.Point{
		markplot.Pt(-1, 101),
		markplot.Pt(0, 50),
		markplot.Pt(30, 20),
		markplot.Pt(50, 50),
		markplot.Pt(51, 101),
	}
	m, _ := markplot.LocateMark(pixels, 40)
	fmt.Println(m.Pos, m.Clamp)

	m, _ = markplot.LocateMark(pixels, 500)
	fmt.Println(m.Pos, m.Clamp)
	// Output:
	// (40, 35) none
	// (50, 50) end
}

func ExampleApproximate() {
	pts := []markplot.Point{markplot.Pt(0, 0), markplot.Pt(4, 2)}
	for _, pt := range markplot.Approximate(pts, 4) {
		fmt.Println(pt)
	}
	// Output:
	// (0, 0)
	// (1.1875, 0.3125)
	// (2, 1)
	// (2.8125, 1.6875)
	// (4, 2)
}

func ExampleRibbon() {
	prefix := []markplot.Point{markplot.Pt(0, 10), markplot.Pt(20, 10), markplot.Pt(30, 10)}
	fmt.Println(markplot.Ribbon(prefix, 4, 25).SVG(markplot.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M0,14 L20,14 L20,10 L0,10 Z
}
