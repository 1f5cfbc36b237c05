// Package layout holds the geometry types and the layout engine abstraction
// shared by the containers.
//
// Sizes use -1 for "unset" on either axis, matching how size hints and
// constraints are passed around: a constraint of Size{Width: 200, Height: -1}
// asks for the preferred size given a fixed width of 200.
package layout

import "fmt"

// Unset marks an unconstrained or unknown extent.
const Unset = -1.0

// Size is a width and height pair.
type Size struct {
	Width  float64
	Height float64
}

// UnsetSize has both extents unset.
var UnsetSize = Size{Width: Unset, Height: Unset}

// IsValid reports whether both extents are set.
func (s Size) IsValid() bool {
	return s.Width >= 0 && s.Height >= 0
}

// ExpandedTo returns the per axis maximum of s and o.
func (s Size) ExpandedTo(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Margins are insets on each edge of a box.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Horizontal returns the sum of the left and right insets.
func (m Margins) Horizontal() float64 { return m.Left + m.Right }

// Vertical returns the sum of the top and bottom insets.
func (m Margins) Vertical() float64 { return m.Top + m.Bottom }

// Orientation is a set of axes.
type Orientation int

const (
	// Horizontal is the x axis.
	Horizontal Orientation = 1 << iota
	// Vertical is the y axis.
	Vertical
)

// String returns a human-readable representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case 0:
		return "none"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Horizontal | Vertical:
		return "both"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// SizeHintKind selects which size hint is requested.
type SizeHintKind int

const (
	// MinimumSize is the smallest usable size.
	MinimumSize SizeHintKind = iota
	// PreferredSize is the natural size.
	PreferredSize
	// MaximumSize is the largest useful size.
	MaximumSize
)

// ConstraintType tells which extent is computed from which.
type ConstraintType int

const (
	// WidthForHeight computes a width for a given height.
	WidthForHeight ConstraintType = iota
	// HeightForWidth computes a height for a given width.
	HeightForWidth
)

// String returns a human-readable representation of the constraint type.
func (t ConstraintType) String() string {
	switch t {
	case WidthForHeight:
		return "widthForHeight"
	case HeightForWidth:
		return "heightForWidth"
	default:
		return fmt.Sprintf("ConstraintType(%d)", int(t))
	}
}
