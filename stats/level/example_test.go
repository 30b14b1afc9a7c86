package level_test

import (
	"fmt"

	"github.com/cwbudde/algo-ledwave/stats/level"
)

func ExampleCalculate() {
	s := level.CalculateInts([]int{0, 10, 20, 10})
	fmt.Printf("mean=%.1f max=%.0f@%d var=%.1f\n", s.Mean, s.Max, s.MaxPos, s.Variance)

	// Output:
	// mean=10.0 max=20@2 var=50.0
}
