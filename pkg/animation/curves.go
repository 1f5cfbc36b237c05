package animation

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Standard curves, equivalent to their CSS counterparts.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.42, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.58, 1.0)
	EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

var namedCurves = map[string]func(float64) float64{
	"linear":      LinearCurve,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
}

// CurveByName returns a standard curve by its CSS name. An empty name is
// linear.
func CurveByName(name string) (func(float64) float64, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return LinearCurve, nil
	}
	if c, ok := namedCurves[name]; ok {
		return c, nil
	}
	names := make([]string, 0, len(namedCurves))
	for n := range namedCurves {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("unknown curve %q (want one of %s)", name, strings.Join(names, ", "))
}

// CubicBezier returns an easing function for the curve from (0,0) to (1,1)
// with control points (x1,y1) and (x2,y2), like CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	bx := bezier{x1, x2}
	by := bezier{y1, y2}
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return by.at(bx.solve(t))
	}
}

// bezier is one coordinate of a cubic bezier with fixed end points 0 and 1.
type bezier struct {
	p1, p2 float64
}

func (b bezier) at(u float64) float64 {
	v := 1 - u
	return 3*v*v*u*b.p1 + 3*v*u*u*b.p2 + u*u*u
}

func (b bezier) slope(u float64) float64 {
	v := 1 - u
	return 3*v*v*b.p1 + 6*v*u*(b.p2-b.p1) + 3*u*u*(1-b.p2)
}

// solve finds u in [0,1] with at(u) == x. Newton steps first, bisection when
// the slope is too flat to converge.
func (b bezier) solve(x float64) float64 {
	const epsilon = 1e-7

	u := x
	for range 8 {
		d := b.at(u) - x
		if math.Abs(d) < epsilon {
			return u
		}
		s := b.slope(u)
		if math.Abs(s) < epsilon {
			break
		}
		u -= d / s
	}

	lo, hi := 0.0, 1.0
	u = min(max(u, lo), hi)
	for range 20 {
		d := b.at(u) - x
		if math.Abs(d) < epsilon {
			break
		}
		if d > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}
