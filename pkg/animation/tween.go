package animation

// Tween interpolates between Begin and End for a progress value.
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp interpolates between a and b at t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// At returns the interpolated value at t.
func (tw Tween[T]) At(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Of returns the interpolated value at the controller's current value.
func (tw Tween[T]) Of(c *Controller) T {
	return tw.At(c.Value())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 creates a float64 tween.
func TweenFloat64(begin, end float64) Tween[float64] {
	return Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}
