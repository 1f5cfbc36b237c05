package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/skinny/pkg/animation"
	skinnytest "github.com/go-drift/skinny/pkg/testing"
)

// This example steps a controller frame by frame with a fake clock.
func ExampleController() {
	clock := skinnytest.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	controller := animation.NewController(100 * time.Millisecond)
	defer controller.Dispose()

	opacity := animation.TweenFloat64(0.2, 1)
	controller.AddListener(func(v float64) {
		fmt.Printf("opacity %.2f\n", opacity.At(v))
	})
	controller.AddStatusListener(func(s animation.Status) {
		fmt.Println(s)
	})

	controller.Start()
	for range 2 {
		clock.Step(50 * time.Millisecond)
	}
	// Output:
	// running
	// opacity 0.60
	// opacity 1.00
	// completed
}

// This example looks up a curve by its CSS name.
func ExampleCurveByName() {
	curve, err := animation.CurveByName("ease-in-out")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", curve(0), curve(0.5), curve(1))
	// Output:
	// 0.00 0.50 1.00
}
