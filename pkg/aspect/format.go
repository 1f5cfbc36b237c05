package aspect

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

var primitiveNames = [8]string{
	"Background", "Margin", "Padding", "RadiusX", "RadiusY", "Border", "Shadow", "Radius",
}

var edgeNames = [4]string{"Left", "Top", "Right", "Bottom"}

var cornerNames = [4]string{"TopLeftCorner", "TopRightCorner", "BottomRightCorner", "BottomLeftCorner"}

var typeNames = map[Aspect]string{Flag: "Flag", Metric: "Metric", Color: "Color"}

var fundamentalNames = map[Aspect]string{
	Size:          "Size",
	Position:      "Position",
	MinimumWidth:  "MinimumWidth",
	MinimumHeight: "MinimumHeight",
	MaximumWidth:  "MaximumWidth",
	MaximumHeight: "MaximumHeight",
	Spacing:       "Spacing",
	Alignment:     "Alignment",
	Style:         "Style",
	SizeMode:      "SizeMode",
	Decoration:    "Decoration",
	GraphicRole:   "GraphicRole",
	FontRole:      "FontRole",
	TextColor:     "TextColor",
	StyleColor:    "StyleColor",
	LinkColor:     "LinkColor",
}

// tokens maps every fixed name accepted by Parse to its bits.
var tokens = func() map[string]Aspect {
	m := map[string]Aspect{
		"Automatic":     Automatic,
		"NoState":       NoState,
		"AllAspects":    AllAspects,
		"Animator":      Animator,
		"Fundamental":   Fundamental,
		"Horizontal":    Horizontal,
		"Vertical":      Vertical,
		"LeftCorners":   LeftCorners,
		"RightCorners":  RightCorners,
		"TopCorners":    TopCorners,
		"BottomCorners": BottomCorners,
	}
	for i, name := range primitiveNames {
		m[name] = Aspect(i) << primitiveShift
	}
	for i, name := range edgeNames {
		m[name] = Aspect(1<<i) << edgeShift
	}
	for i, name := range cornerNames {
		m[name] = Aspect(1<<i) << edgeShift
	}
	for a, name := range typeNames {
		m[name] = a
	}
	for a, name := range fundamentalNames {
		m[name] = a
	}
	for i, name := range systemStateNames {
		m[name] = SystemState(i)
	}
	return m
}()

// String returns the names of the set fields joined by "|", in the form
// accepted by [Parse].
func (a Aspect) String() string {
	if a == AllAspects {
		return "AllAspects"
	}
	var parts []string

	if a.Subcontrol() != Control {
		parts = append(parts, SubcontrolName(a))
	}
	if a.IsFundamental() {
		// primitive bits OR-ed onto a fundamental are kept verbatim
		if prim := a.BoxPrimitive(); prim != Background {
			parts = append(parts, primitiveNames[prim>>primitiveShift])
		}
		key := a & (Fundamental | typeMask | edgeMask)
		if name, ok := fundamentalNames[key]; ok {
			parts = append(parts, name)
		} else {
			parts = append(parts, "Fundamental", typeString(a.Type()),
				fmt.Sprintf("0x%x", uint64(a&edgeMask)))
		}
	} else {
		prim := a.BoxPrimitive()
		if prim != Background {
			parts = append(parts, primitiveNames[prim>>primitiveShift])
		}
		names := edgeNames
		if prim == RadiusX || prim == RadiusY || prim == Radius {
			names = cornerNames
		}
		edges := a.Edges() >> edgeShift
		for i := range names {
			if edges&(1<<i) != 0 {
				parts = append(parts, names[i])
			}
		}
		if t := a.Type(); t != Flag {
			parts = append(parts, typeString(t))
		}
	}
	if a.IsAnimator() {
		parts = append(parts, "Animator")
	}
	if i := a.IndexValue(); i != 0 {
		parts = append(parts, fmt.Sprintf("Index(%d)", i))
	}
	switch s := a.State(); s {
	case Automatic:
	case NoState:
		parts = append(parts, "NoState")
	default:
		for v := uint64(s >> stateShift); v != 0; v &= v - 1 {
			parts = append(parts, stateName(bits.TrailingZeros64(v)))
		}
	}
	if unused := a &^ (stateMask | subcontrolMask | primitiveMask | edgeMask |
		modifierMask | typeMask | indexMask); unused != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint64(unused)))
	}

	if len(parts) == 0 {
		return "Control"
	}
	return strings.Join(parts, "|")
}

func typeString(t Aspect) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", t>>typeShift)
}

// ParseError reports a token [Parse] could not resolve.
type ParseError struct {
	Input string
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("aspect: unknown token %q in %q", e.Token, e.Input)
}

// Parse reads the textual form produced by [Aspect.String]. Tokens are
// OR-ed together; besides names it accepts hexadecimal literals,
// Index(n), Subcontrol(n), Type(n) and UserState(n).
func Parse(s string) (Aspect, error) {
	var a Aspect
	for _, raw := range strings.Split(s, "|") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		v, ok := parseToken(tok)
		if !ok {
			return 0, &ParseError{Input: s, Token: tok}
		}
		a |= v
	}
	return a, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Aspect {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func parseToken(tok string) (Aspect, bool) {
	if v, ok := tokens[tok]; ok {
		return v, true
	}
	if sc, ok := LookupSubcontrol(tok); ok {
		return sc, true
	}
	if s, ok := lookupUserState(tok); ok {
		return s, true
	}
	if strings.HasPrefix(tok, "0x") {
		v, err := strconv.ParseUint(tok[2:], 16, 64)
		return Aspect(v), err == nil
	}
	if n, ok := call(tok, "Index"); ok && n <= MaxIndex {
		return Index(n), true
	}
	if n, ok := call(tok, "Subcontrol"); ok && n < MaxSubcontrols {
		return SubcontrolID(n), true
	}
	if n, ok := call(tok, "Type"); ok && n < 8 {
		return Aspect(n) << typeShift, true
	}
	if n, ok := call(tok, "UserState"); ok && n < UserStateCount {
		return UserState(n), true
	}
	return 0, false
}

// call parses "name(n)" with a non-negative n.
func call(tok, name string) (int, bool) {
	rest, ok := strings.CutPrefix(tok, name+"(")
	if !ok {
		return 0, false
	}
	digits, ok := strings.CutSuffix(rest, ")")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
