package trajectory_test

import (
	"fmt"

	"github.com/trajolab/trajo/trajectory"
)

// ExampleNew builds a small timed trajectory and prints its shape, derived
// timestamps and per-dimension mean.
func ExampleNew() {
	tr, err := trajectory.New([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, trajectory.Options{SampleRateHz: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(tr)
	fmt.Println("times:", tr.TimeIndices())
	fmt.Println("mean: ", tr.Mean())
	// Output:
	// Trajectory(steps=3, dims=3, rate=2Hz)
	// times: [0 0.5 1]
	// mean:  [4 5 6]
}

// ExampleTrajectory_Stats summarizes a trajectory dimension by dimension.
func ExampleTrajectory_Stats() {
	tr, err := trajectory.New([][]float64{
		{1, 0},
		{4, 0},
		{7, 3},
	}, trajectory.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s := tr.Stats()
	fmt.Println("min:   ", s.Min)
	fmt.Println("max:   ", s.Max)
	fmt.Println("median:", s.Median)
	fmt.Println("zeros: ", s.ZeroCount)
	// Output:
	// min:    [1 0]
	// max:    [7 3]
	// median: [4 0]
	// zeros:  [0 2]
}
