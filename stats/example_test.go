package stats_test

import (
	"fmt"

	"github.com/katalvlaran/tabular/frame"
	"github.com/katalvlaran/tabular/stats"
)

// ExampleDescribe summarizes the numeric columns of a mixed table,
// the library's answer to an interactive summary() call.
func ExampleDescribe() {
	length, _ := frame.NewFloatColumn("Petal.Length", []float64{1.4, 4.7, 6.0, 5.1, 1.3})
	species, _ := frame.NewStringColumn("Species", []string{"setosa", "versicolor", "virginica", "virginica", "setosa"})
	tab, _ := frame.New(length, species)

	summaries, err := stats.Describe(tab)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range summaries {
		fmt.Printf("%s: n=%d min=%.1f median=%.1f max=%.1f mean=%.2f\n",
			s.Column, s.N, s.Min, s.Median, s.Max, s.Mean)
	}
	// Output:
	// Petal.Length: n=5 min=1.3 median=4.7 max=6.0 mean=3.70
}

// ExampleWelchTTest compares two groups without assuming equal variances.
func ExampleWelchTTest() {
	control := []float64{4.1, 3.9, 4.3, 4.0, 4.2}
	treated := []float64{5.0, 5.4, 4.9, 5.2, 5.1}

	res, err := stats.WelchTTest(treated, control)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("estimate=%.2f\n", res.Estimate)
	fmt.Printf("significant at 0.05: %v\n", res.PValue < 0.05)
	// Output:
	// estimate=1.02
	// significant at 0.05: true
}
