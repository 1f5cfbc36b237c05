// Package aspect defines the 64-bit keys used to look up skin hints.
//
// An [Aspect] packs several independent classification axes into a single
// integer so that hint tables can be plain maps with integer keys. From the
// most significant bit down:
//
//	bits 48-63  unused
//	bits 32-47  State       16 flag bits (system 32-39, user 40-47)
//	bits 20-31  Subcontrol  12 bit id, 0 is the control itself
//	bits 16-19  Primitive   3 bit box primitive id plus the Fundamental bit
//	bits 12-15  Edge/Corner 4 flag bits, 0 means all edges or corners
//	bit  11     Modifier    Animator
//	bits  8-10  Type        Flag, Metric or Color
//	bits  0-7   Index       0-255
//
// Aspects are combined with bitwise OR only:
//
//	key := aspect.Margin | aspect.Top | aspect.Metric
//
// Changing any field width is a breaking change for stored hint tables.
package aspect

import "fmt"

// Aspect is a packed skin hint key.
type Aspect uint64

// Bit offsets and masks of the individual fields.
const (
	indexShift      = 0
	typeShift       = 8
	modifierShift   = 11
	edgeShift       = 12
	primitiveShift  = 16
	subcontrolShift = 20
	stateShift      = 32

	indexMask       Aspect = 0xFF << indexShift
	typeMask        Aspect = 0x7 << typeShift
	modifierMask    Aspect = 0x1 << modifierShift
	edgeMask        Aspect = 0xF << edgeShift
	boxPrimMask     Aspect = 0x7 << primitiveShift
	primitiveMask   Aspect = 0xF << primitiveShift
	subcontrolMask  Aspect = 0xFFF << subcontrolShift
	stateMask       Aspect = 0xFFFF << stateShift
	systemStateMask Aspect = 0xFF << stateShift
	userStateMask   Aspect = 0xFF00 << stateShift

	// MaxSubcontrols is the size of the subcontrol id space.
	MaxSubcontrols = 1 << 12
	// MaxIndex is the largest value of the index field.
	MaxIndex = 0xFF
	// SystemStateCount is the number of state bits reserved for the toolkit.
	SystemStateCount = 8
	// UserStateCount is the number of state bits left to applications.
	UserStateCount = 8
)

// Type tells how the hint value stored under an aspect is interpreted.
const (
	// Flag hints hold enums or plain integers.
	Flag Aspect = 0 << typeShift
	// Metric hints hold distances in pixels.
	Metric Aspect = 1 << typeShift
	// Color hints hold a packed ARGB value.
	Color Aspect = 2 << typeShift
)

// Animator marks the hint as animation timing data for the transition of the
// value rather than the value itself.
const Animator Aspect = 1 << modifierShift

// Box primitives. They occupy the low three bits of the primitive nibble.
const (
	Background Aspect = 0 << primitiveShift
	Margin     Aspect = 1 << primitiveShift
	Padding    Aspect = 2 << primitiveShift
	RadiusX    Aspect = 3 << primitiveShift
	RadiusY    Aspect = 4 << primitiveShift
	Border     Aspect = 5 << primitiveShift
	Shadow     Aspect = 6 << primitiveShift

	// Radius addresses both radii at once.
	Radius = RadiusX | RadiusY

	// Fundamental is the top bit of the primitive nibble. It disables edge and
	// corner routing, the edge bits become a plain offset instead.
	Fundamental Aspect = 8 << primitiveShift
)

// Edges, interpreted for Margin, Padding, Border and Shadow.
const (
	Left   Aspect = 1 << edgeShift
	Top    Aspect = 2 << edgeShift
	Right  Aspect = 4 << edgeShift
	Bottom Aspect = 8 << edgeShift

	Horizontal = Left | Right
	Vertical   = Top | Bottom

	// AllEdges is the zero edge set, matching every edge.
	AllEdges Aspect = 0
)

// Corners, interpreted for the radius primitives. They share the bits of the
// edges.
const (
	TopLeftCorner     Aspect = 1 << edgeShift
	TopRightCorner    Aspect = 2 << edgeShift
	BottomRightCorner Aspect = 4 << edgeShift
	BottomLeftCorner  Aspect = 8 << edgeShift

	LeftCorners   = TopLeftCorner | BottomLeftCorner
	RightCorners  = TopRightCorner | BottomRightCorner
	TopCorners    = TopLeftCorner | TopRightCorner
	BottomCorners = BottomLeftCorner | BottomRightCorner

	// AllCorners is the zero corner set, matching every corner.
	AllCorners Aspect = 0
)

// Subcontrol zero addresses the control itself.
const Control Aspect = 0

// States.
const (
	// Automatic is the unspecified state; it matches any state on lookup.
	Automatic Aspect = 0

	FirstSystemState Aspect = 1 << stateShift
	LastSystemState  Aspect = 1 << (stateShift + SystemStateCount - 1)
	FirstUserState   Aspect = 1 << (stateShift + SystemStateCount)
	LastUserState    Aspect = 1 << (stateShift + SystemStateCount + UserStateCount - 1)

	// NoState sets every state bit. It is an explicit empty state used by
	// animators and never acts as a wildcard.
	NoState = stateMask
)

// Fundamental metrics. The offset lives in the edge bits.
const (
	Size          = Fundamental | Metric | 0<<edgeShift
	Position      = Fundamental | Metric | 1<<edgeShift
	MinimumWidth  = Fundamental | Metric | 2<<edgeShift
	MinimumHeight = Fundamental | Metric | 3<<edgeShift
	MaximumWidth  = Fundamental | Metric | 4<<edgeShift
	MaximumHeight = Fundamental | Metric | 5<<edgeShift
	Spacing       = Fundamental | Metric | 6<<edgeShift
)

// Fundamental flags.
const (
	Alignment   = Fundamental | Flag | 0<<edgeShift
	Style       = Fundamental | Flag | 1<<edgeShift
	SizeMode    = Fundamental | Flag | 2<<edgeShift
	Decoration  = Fundamental | Flag | 3<<edgeShift
	GraphicRole = Fundamental | Flag | 4<<edgeShift
	FontRole    = Fundamental | Flag | 5<<edgeShift
)

// Fundamental colors.
const (
	TextColor  = Fundamental | Color | 0<<edgeShift
	StyleColor = Fundamental | Color | 1<<edgeShift
	LinkColor  = Fundamental | Color | 2<<edgeShift
)

// Box model combinations.
const (
	MarginLeft   = Margin | Left
	MarginTop    = Margin | Top
	MarginRight  = Margin | Right
	MarginBottom = Margin | Bottom

	PaddingLeft   = Padding | Left
	PaddingTop    = Padding | Top
	PaddingRight  = Padding | Right
	PaddingBottom = Padding | Bottom

	BorderLeft   = Border | Left
	BorderTop    = Border | Top
	BorderRight  = Border | Right
	BorderBottom = Border | Bottom

	RadiusTopLeft     = Radius | TopLeftCorner
	RadiusTopRight    = Radius | TopRightCorner
	RadiusBottomRight = Radius | BottomRightCorner
	RadiusBottomLeft  = Radius | BottomLeftCorner
)

// AllAspects has every bit set and absorbs any other aspect.
const AllAspects Aspect = ^Aspect(0)

// SubcontrolID returns the aspect for subcontrol id. It panics when id does
// not fit into 12 bits.
func SubcontrolID(id int) Aspect {
	if id < 0 || id >= MaxSubcontrols {
		panic(fieldOverflow("subcontrol", id, MaxSubcontrols-1))
	}
	return Aspect(id) << subcontrolShift
}

// SystemState returns the n-th system state bit.
func SystemState(n int) Aspect {
	if n < 0 || n >= SystemStateCount {
		panic(fieldOverflow("system state", n, SystemStateCount-1))
	}
	return FirstSystemState << n
}

// UserState returns the n-th user state bit.
func UserState(n int) Aspect {
	if n < 0 || n >= UserStateCount {
		panic(fieldOverflow("user state", n, UserStateCount-1))
	}
	return FirstUserState << n
}

// Index returns the aspect selecting sub-resource i.
func Index(i int) Aspect {
	if i < 0 || i > MaxIndex {
		panic(fieldOverflow("index", i, MaxIndex))
	}
	return Aspect(i) << indexShift
}

// State returns the state bits.
func (a Aspect) State() Aspect { return a & stateMask }

// Subcontrol returns the subcontrol bits.
func (a Aspect) Subcontrol() Aspect { return a & subcontrolMask }

// SubcontrolIndex returns the subcontrol id.
func (a Aspect) SubcontrolIndex() int { return int((a & subcontrolMask) >> subcontrolShift) }

// Primitive returns the whole primitive nibble, including Fundamental.
func (a Aspect) Primitive() Aspect { return a & primitiveMask }

// BoxPrimitive returns the box primitive, or Background for fundamentals.
func (a Aspect) BoxPrimitive() Aspect {
	if a.IsFundamental() {
		return Background
	}
	return a & boxPrimMask
}

// IsFundamental reports whether a addresses a fundamental hint.
func (a Aspect) IsFundamental() bool { return a&Fundamental != 0 }

// Edges returns the edge bits. The result is only meaningful for edge based
// primitives.
func (a Aspect) Edges() Aspect {
	if a.IsFundamental() {
		return AllEdges
	}
	return a & edgeMask
}

// Corners returns the corner bits of a radius aspect.
func (a Aspect) Corners() Aspect { return a.Edges() }

// HasEdge reports whether a applies to edge e. An empty edge set applies to
// all edges.
func (a Aspect) HasEdge(e Aspect) bool {
	edges := a.Edges()
	return edges == AllEdges || edges&e != 0
}

// IsAnimator reports whether the Animator modifier is set.
func (a Aspect) IsAnimator() bool { return a&Animator != 0 }

// Type returns the type bits.
func (a Aspect) Type() Aspect { return a & typeMask }

// IndexValue returns the index field.
func (a Aspect) IndexValue() int { return int((a & indexMask) >> indexShift) }

// IsSystemState reports whether every state bit of a lies in the system range.
func (a Aspect) IsSystemState() bool {
	s := a.State()
	return s != Automatic && s&^systemStateMask == 0
}

// WithState returns a with its state replaced by s.
func (a Aspect) WithState(s Aspect) Aspect { return a&^stateMask | s&stateMask }

// WithoutState returns a with Automatic state.
func (a Aspect) WithoutState() Aspect { return a &^ stateMask }

// WithSubcontrol returns a with its subcontrol replaced by sc.
func (a Aspect) WithSubcontrol(sc Aspect) Aspect { return a&^subcontrolMask | sc&subcontrolMask }

// WithEdges returns a with its edge bits replaced. Fundamentals are returned
// unchanged since their edge bits are an offset.
func (a Aspect) WithEdges(e Aspect) Aspect {
	if a.IsFundamental() {
		return a
	}
	return a&^edgeMask | e&edgeMask
}

// WithType returns a with its type replaced by t.
func (a Aspect) WithType(t Aspect) Aspect { return a&^typeMask | t&typeMask }

// WithIndex returns a with its index replaced by i.
func (a Aspect) WithIndex(i int) Aspect { return a&^indexMask | Index(i) }

type overflowError struct {
	field string
	value int
	max   int
}

func (e overflowError) Error() string {
	return fmt.Sprintf("aspect: %s %d out of range [0,%d]", e.field, e.value, e.max)
}

func fieldOverflow(field string, value, max int) error {
	return overflowError{field: field, value: value, max: max}
}
