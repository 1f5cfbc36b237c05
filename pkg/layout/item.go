package layout

// Item is a child managed by a layout. Parenting and painting belong to the
// item system; layouts only toggle visibility.
type Item interface {
	SetVisible(visible bool)
	IsVisible() bool
}

// SizeHinter is implemented by items that report their own size hints.
// Extents of the constraint that are set fix that axis.
type SizeHinter interface {
	SizeHint(which SizeHintKind, constraint Size) Size
}

// Constrained is implemented by items whose preferred extent on one axis
// depends on the extent offered on the other, like wrapped text.
type Constrained interface {
	// ConstraintOrientation is Horizontal when the width depends on the
	// height and Vertical when the height depends on the width.
	ConstraintOrientation() Orientation
	HeightForWidth(width float64) float64
	WidthForHeight(height float64) float64
}

// Geometric is implemented by items that accept geometry updates.
type Geometric interface {
	SetGeometry(r Rect)
}

// LayoutItem is the entry a layout engine keeps for each of its items.
type LayoutItem interface {
	// Item returns the managed item, which may be nil for spacers.
	Item() Item
	HasDynamicConstraint() bool
	DynamicConstraintOrientation() Orientation
	SizeHint(which SizeHintKind, constraint Size) Size
	SetRetainSizeWhenHidden(retain bool)
	RetainSizeWhenHidden() bool
}

// Engine is the view of a layout engine a container needs.
type Engine interface {
	ItemCount() int
	// LayoutItemAt returns nil for indexes out of range.
	LayoutItemAt(index int) LayoutItem
	// IndexOf returns -1 when item is not managed by the engine.
	IndexOf(item Item) int
	// AdjustItemAt pushes the current geometry to the item at index, even
	// when it is hidden.
	AdjustItemAt(index int)
	// RepairIfNeeded fixes engine internal bookkeeping after a removal.
	RepairIfNeeded()
}

// Observer is notified by an engine when items come and go.
type Observer interface {
	ItemInserted(item LayoutItem, index int)
	ItemRemoved(item LayoutItem, index int)
}

// ConstraintFor returns the result of the constraint function of item for
// the given type, or -1 when the item has none.
func ConstraintFor(t ConstraintType, item Item, widthOrHeight float64) float64 {
	c, ok := item.(Constrained)
	if !ok {
		return Unset
	}
	if t == WidthForHeight {
		return c.WidthForHeight(widthOrHeight)
	}
	return c.HeightForWidth(widthOrHeight)
}

// ConstrainedMetric resolves a constraint for a box with the given margins.
// The value is shrunk by the margins of its axis before fn is called, and
// the margins of the other axis are added to the result. An unset value is
// passed through unchanged and negative results of fn are returned as -1.
func ConstrainedMetric(t ConstraintType, margins Margins, widthOrHeight float64,
	fn func(t ConstraintType, widthOrHeight float64) float64) float64 {

	along, across := margins.Horizontal(), margins.Vertical()
	if t == WidthForHeight {
		along, across = across, along
	}
	inner := Unset
	if widthOrHeight >= 0 {
		inner = max(widthOrHeight-along, 0)
	}

	v := fn(t, inner)
	if v < 0 {
		return Unset
	}
	return v + across
}
