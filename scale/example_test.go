package scale_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tabular/frame"
	"github.com/katalvlaran/tabular/scale"
)

// ExampleStandardize demonstrates the single-series primitive.
//
// Scenario:
//
//	z-score the series [1 2 3 4 5]: mean 3, sample sd √2.5 ≈ 1.5811.
//
// Complexity: O(N) time, O(N) memory.
func ExampleStandardize() {
	z, err := scale.Standardize([]float64{1, 2, 3, 4, 5}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, v := range z {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%.4f", v)
	}
	fmt.Println()
	// Output:
	// -1.2649 -0.6325 0.0000 0.6325 1.2649
}

// ExampleStandardizeTable demonstrates the table operation on mixed kinds:
// numeric columns are z-scored, the text column rides along untouched.
func ExampleStandardizeTable() {
	length, _ := frame.NewFloatColumn("Petal.Length", []float64{1.4, 1.4, 1.3})
	species, _ := frame.NewStringColumn("Species", []string{"setosa", "setosa", "setosa"})
	tab, _ := frame.New(length, species)

	out, err := scale.StandardizeTable(tab, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	col, _ := out.Column("Petal.Length")
	vals, _ := col.Floats()
	for i, v := range vals {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%.4f", v)
	}
	fmt.Println()

	txt, _ := out.Column("Species")
	strs, _ := txt.Strings()
	fmt.Println(strs)
	// Output:
	// 0.5774 0.5774 -1.1547
	// [setosa setosa setosa]
}

// ExampleStandardizeTable_degenerate shows the fail-loud contract: a
// constant column is a typed error naming the culprit, never a NaN.
func ExampleStandardizeTable_degenerate() {
	flat, _ := frame.NewFloatColumn("flat", []float64{5, 5, 5})
	tab, _ := frame.New(flat)

	_, err := scale.StandardizeTable(tab, nil)
	fmt.Println(errors.Is(err, scale.ErrDegenerateColumn))
	fmt.Println(err)
	// Output:
	// true
	// column "flat": scale: column has zero variance
}
