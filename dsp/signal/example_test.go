package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-ledwave/dsp/signal"
)

func ExampleQuantizedRaisedSine() {
	q, err := signal.QuantizedRaisedSine(8, 200)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)

	// Output:
	// [100 171 200 171 100 29 0 29]
}

func ExampleNormalize() {
	x, err := signal.Normalize([]float64{-0.5, 0.25, 1}, 0.8)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", x[0], x[1], x[2])

	// Output:
	// -0.40 0.20 0.80
}
