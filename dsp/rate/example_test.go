package rate_test

import (
	"fmt"

	"github.com/cwbudde/algo-rate/dsp/rate"
)

func ExampleNewRate() {
	r, _ := rate.NewRate(2.0, rate.QualityQuick)
	defer r.Close()

	in := make([]float64, 8)
	for i := range in {
		in[i] = float64(i)
	}
	r.Input(in)
	r.Process()
	r.Flush()

	out := make([]float64, len(in))
	n := r.Output(out)
	fmt.Printf("in=%d out=%d\n", len(in), n)
	// Output:
	// in=8 out=4
}
