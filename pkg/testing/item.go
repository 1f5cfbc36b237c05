package testing

import (
	"github.com/go-drift/skinny/pkg/layout"
)

// Item is a fake layout item that records what containers and transitions
// do to it.
type Item struct {
	Name     string
	Visible  bool
	Hint     layout.Size
	Geometry layout.Rect
	Opacity  float64
	Offset   [2]float64

	// VisibilityChanges counts calls to SetVisible that changed the value.
	VisibilityChanges int
	// GeometryUpdates counts calls to SetGeometry.
	GeometryUpdates int
}

// NewItem returns a hidden, fully opaque item with the given preferred size.
func NewItem(name string, hint layout.Size) *Item {
	return &Item{Name: name, Hint: hint, Opacity: 1}
}

// SetVisible implements layout.Item.
func (i *Item) SetVisible(v bool) {
	if i.Visible != v {
		i.VisibilityChanges++
	}
	i.Visible = v
}

// IsVisible implements layout.Item.
func (i *Item) IsVisible() bool { return i.Visible }

// SizeHint implements layout.SizeHinter.
func (i *Item) SizeHint(which layout.SizeHintKind, constraint layout.Size) layout.Size {
	return i.Hint
}

// SetGeometry implements layout.Geometric.
func (i *Item) SetGeometry(r layout.Rect) {
	i.Geometry = r
	i.GeometryUpdates++
}

// SetOpacity records the opacity set by a fade transition.
func (i *Item) SetOpacity(o float64) { i.Opacity = o }

// SetTranslation records the offset set by a slide transition.
func (i *Item) SetTranslation(dx, dy float64) { i.Offset = [2]float64{dx, dy} }

func (i *Item) String() string { return i.Name }

// ConstrainedItem is a fake item whose dependent extent is Area divided by
// the independent one, like text that wraps.
type ConstrainedItem struct {
	Item
	Orientation layout.Orientation
	Area        float64
}

// NewConstrainedItem returns a constrained item. For a Vertical orientation
// the height depends on the width.
func NewConstrainedItem(name string, hint layout.Size, o layout.Orientation, area float64) *ConstrainedItem {
	return &ConstrainedItem{Item: *NewItem(name, hint), Orientation: o, Area: area}
}

// ConstraintOrientation implements layout.Constrained.
func (c *ConstrainedItem) ConstraintOrientation() layout.Orientation { return c.Orientation }

// HeightForWidth implements layout.Constrained.
func (c *ConstrainedItem) HeightForWidth(width float64) float64 {
	if width <= 0 {
		return layout.Unset
	}
	return c.Area / width
}

// WidthForHeight implements layout.Constrained.
func (c *ConstrainedItem) WidthForHeight(height float64) float64 {
	if height <= 0 {
		return layout.Unset
	}
	return c.Area / height
}
