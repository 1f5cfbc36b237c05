package aspect

import (
	"errors"
	"testing"
)

func TestMarginTopComposition(t *testing.T) {
	a := Margin | Top
	if a != MarginTop {
		t.Fatalf("Margin|Top = %#x, want MarginTop %#x", uint64(a), uint64(MarginTop))
	}
	if got := a.BoxPrimitive(); got != Margin {
		t.Errorf("BoxPrimitive() = %v, want Margin", got)
	}
	if got := a.Edges(); got != Top {
		t.Errorf("Edges() = %v, want Top", got)
	}
	if a.IsFundamental() {
		t.Error("MarginTop should not be fundamental")
	}
}

func TestAllAspectsAbsorbs(t *testing.T) {
	values := []Aspect{
		Control, MarginTop, Size, TextColor, NoState, Animator | Metric,
		SubcontrolID(4095) | Index(255) | LastUserState, Radius | BottomLeftCorner,
	}
	for _, v := range values {
		if got := AllAspects | v; got != AllAspects {
			t.Errorf("AllAspects|%v = %#x", v, uint64(got))
		}
	}
}

func TestFieldsDoNotOverlap(t *testing.T) {
	masks := []struct {
		name string
		mask Aspect
	}{
		{"index", indexMask},
		{"type", typeMask},
		{"modifier", modifierMask},
		{"edge", edgeMask},
		{"primitive", primitiveMask},
		{"subcontrol", subcontrolMask},
		{"state", stateMask},
	}
	var seen Aspect
	for _, m := range masks {
		if seen&m.mask != 0 {
			t.Errorf("%s mask %#x overlaps previous fields", m.name, uint64(m.mask))
		}
		seen |= m.mask
	}
	if seen != 1<<48-1 {
		t.Errorf("fields cover %#x, want the low 48 bits", uint64(seen))
	}
}

func TestFundamentalsDoNotCollideWithBoxPrimitives(t *testing.T) {
	fundamentals := []Aspect{
		Size, Position, MinimumWidth, MinimumHeight, MaximumWidth, MaximumHeight, Spacing,
		Alignment, Style, SizeMode, Decoration, GraphicRole, FontRole,
		TextColor, StyleColor, LinkColor,
	}
	seen := map[Aspect]bool{}
	for _, f := range fundamentals {
		if seen[f] {
			t.Errorf("%v defined twice", f)
		}
		seen[f] = true
		if !f.IsFundamental() {
			t.Errorf("%v is not fundamental", f)
		}
		for _, prim := range []Aspect{Background, Margin, Padding, RadiusX, RadiusY, Border, Shadow, Radius} {
			for e := Aspect(0); e < 16; e++ {
				if prim|e<<edgeShift|f.Type() == f {
					t.Errorf("%v collides with a box primitive", f)
				}
			}
		}
		if f.Edges() != AllEdges {
			t.Errorf("%v.Edges() = %v, want AllEdges", f, f.Edges())
		}
	}
}

func TestTypes(t *testing.T) {
	tests := []struct {
		a    Aspect
		want Aspect
	}{
		{Size, Metric},
		{Alignment, Flag},
		{TextColor, Color},
		{Padding | Left | Metric, Metric},
		{Border | Color | Animator, Color},
	}
	for _, tt := range tests {
		if got := tt.a.Type(); got != tt.want {
			t.Errorf("%v.Type() = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestRadiusUnion(t *testing.T) {
	if Radius != RadiusX|RadiusY {
		t.Fatal("Radius should be RadiusX|RadiusY")
	}
	for _, p := range []Aspect{Background, Margin, Padding, RadiusX, RadiusY, Border, Shadow} {
		if p == Radius {
			t.Errorf("Radius collides with %v", p)
		}
	}
	a := RadiusTopLeft | Metric
	if a.Corners() != TopLeftCorner {
		t.Errorf("Corners() = %v, want TopLeftCorner", a.Corners())
	}
}

func TestNoStateIsNotAutomatic(t *testing.T) {
	if NoState == Automatic {
		t.Fatal("NoState must differ from Automatic")
	}
	if NoState.State() != NoState {
		t.Error("NoState should occupy only state bits")
	}
	for n := range SystemStateCount {
		if NoState&SystemState(n) == 0 {
			t.Errorf("NoState misses system state %d", n)
		}
	}
	for n := range UserStateCount {
		if NoState&UserState(n) == 0 {
			t.Errorf("NoState misses user state %d", n)
		}
	}
	if (Margin | NoState).WithoutState() != Margin {
		t.Error("WithoutState should clear NoState")
	}
}

func TestStateRanges(t *testing.T) {
	if SystemState(0) != FirstSystemState || SystemState(SystemStateCount-1) != LastSystemState {
		t.Error("system state range mismatch")
	}
	if UserState(0) != FirstUserState || UserState(UserStateCount-1) != LastUserState {
		t.Error("user state range mismatch")
	}
	if LastSystemState<<1 != FirstUserState {
		t.Error("user states should follow system states")
	}
	if !(Hovered | Pressed).IsSystemState() {
		t.Error("Hovered|Pressed should be system states")
	}
	if (Hovered | FirstUserState).IsSystemState() {
		t.Error("mixed states are not system states")
	}
}

func TestWithHelpers(t *testing.T) {
	sc := SubcontrolID(12)
	a := Padding | Left | Metric | Hovered

	if got := a.WithState(Pressed); got != Padding|Left|Metric|Pressed {
		t.Errorf("WithState = %v", got)
	}
	if got := a.WithSubcontrol(sc); got.Subcontrol() != sc || got.WithSubcontrol(Control) != a {
		t.Errorf("WithSubcontrol = %v", got)
	}
	if got := a.WithEdges(AllEdges); got != Padding|Metric|Hovered {
		t.Errorf("WithEdges = %v", got)
	}
	if got := Size.WithEdges(Top); got != Size {
		t.Errorf("WithEdges on fundamental = %v, want Size", got)
	}
	if got := a.WithType(Color); got.Type() != Color || got.WithType(Metric) != a {
		t.Errorf("WithType = %v", got)
	}
	if got := a.WithIndex(7); got.IndexValue() != 7 || got.WithIndex(0) != a {
		t.Errorf("WithIndex = %v", got)
	}
	if got := (Border | Top).HasEdge(Left); got {
		t.Error("Border|Top should not apply to Left")
	}
	if got := Border.HasEdge(Left); !got {
		t.Error("Border with all edges should apply to Left")
	}
}

func TestConstructorsPanicOnOverflow(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"subcontrol", func() { SubcontrolID(MaxSubcontrols) }},
		{"negative subcontrol", func() { SubcontrolID(-1) }},
		{"system state", func() { SystemState(SystemStateCount) }},
		{"user state", func() { UserState(UserStateCount) }},
		{"index", func() { Index(MaxIndex + 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestSubcontrolRegistry(t *testing.T) {
	panel := RegisterSubcontrol("TestButton.Panel")
	text := RegisterSubcontrol("TestButton.Text")

	if panel == Control || text == Control || panel == text {
		t.Fatalf("unexpected ids %v %v", panel, text)
	}
	if again := RegisterSubcontrol("TestButton.Panel"); again != panel {
		t.Errorf("re-registering returned %v, want %v", again, panel)
	}
	if got := SubcontrolName(text | Margin); got != "TestButton.Text" {
		t.Errorf("SubcontrolName = %q", got)
	}
	if panel.State() != Automatic || panel.Primitive() != Background {
		t.Error("subcontrol ids must stay inside the subcontrol field")
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	panel := RegisterSubcontrol("TestSlider.Groove")
	busy := RegisterUserState("TestBusy")

	values := []Aspect{
		Control,
		MarginTop,
		Margin | Top | Bottom | Metric,
		RadiusTopLeft | Metric,
		Size,
		TextColor | Hovered,
		panel | Border | Color | Animator | Index(3),
		panel | Padding | busy | Pressed,
		Background | Color | NoState | Animator,
		SubcontrolID(4000) | Shadow,
		Fundamental | Flag | 0xF<<edgeShift,
		Margin | Size,
		Border | TextColor | Top,
		Radius | Spacing | Disabled,
		AllAspects,
	}
	for _, v := range values {
		s := v.String()
		got, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if got != v {
			t.Errorf("Parse(%q) = %#x, want %#x", s, uint64(got), uint64(v))
		}
	}
}

func TestStringNames(t *testing.T) {
	tests := []struct {
		a    Aspect
		want string
	}{
		{Control, "Control"},
		{MarginTop, "Margin|Top"},
		{Padding | Horizontal | Metric, "Padding|Left|Right|Metric"},
		{Size | Hovered, "Size|Hovered"},
		{Color | Animator | NoState, "Color|Animator|NoState"},
		{RadiusX | TopCorners, "RadiusX|TopLeftCorner|TopRightCorner"},
		{Margin | Size, "Margin|Size"},
		{Border | TextColor | Top, "Border|LinkColor"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("Margin|Sideways")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Token != "Sideways" {
		t.Errorf("Token = %q", perr.Token)
	}
	if _, err := Parse("Index(256)"); err == nil {
		t.Error("Index(256) should not parse")
	}
}
