package stack

import (
	"github.com/go-drift/skinny/pkg/layout"
)

var (
	_ layout.SizeHinter  = (*Box)(nil)
	_ layout.Constrained = (*Box)(nil)
)

// SetPadding sets the insets between the box and its children.
func (b *Box) SetPadding(m layout.Margins) { b.padding = m }

// Padding returns the insets between the box and its children.
func (b *Box) Padding() layout.Margins { return b.padding }

// SizeHint returns the size hint of the box, padding included, so a box
// can be a child of another layout. Unknown extents stay -1.
func (b *Box) SizeHint(which layout.SizeHintKind, constraint layout.Size) layout.Size {
	hint := b.contentHint(which)
	if hint.Width >= 0 {
		hint.Width += b.padding.Horizontal()
	}
	if hint.Height >= 0 {
		hint.Height += b.padding.Vertical()
	}
	return hint
}

// contentHint returns the size hint of the children.
//
// Children without a dynamic constraint contribute their hint directly.
// Children whose width depends on their height are then asked for their
// width at the resulting height, and children whose height depends on
// their width are asked for their height at the resulting width.
func (b *Box) contentHint(which layout.SizeHintKind) layout.Size {
	width, height := layout.Unset, layout.Unset
	var dynamic layout.Orientation

	count := b.engine.ItemCount()
	for i := range count {
		li := b.engine.LayoutItemAt(i)
		if li.HasDynamicConstraint() {
			dynamic |= li.DynamicConstraintOrientation()
			continue
		}
		hint := li.SizeHint(which, layout.UnsetSize)
		if hint.Width >= width {
			width = hint.Width
		}
		if hint.Height >= height {
			height = hint.Height
		}
	}

	if dynamic&layout.Horizontal != 0 {
		constraint := layout.Size{Width: layout.Unset, Height: height}
		for i := range count {
			li := b.engine.LayoutItemAt(i)
			if li.HasDynamicConstraint() && li.DynamicConstraintOrientation() == layout.Horizontal {
				if hint := li.SizeHint(which, constraint); hint.Width > width {
					width = hint.Width
				}
			}
		}
	}

	if dynamic&layout.Vertical != 0 {
		constraint := layout.Size{Width: width, Height: layout.Unset}
		for i := range count {
			li := b.engine.LayoutItemAt(i)
			if li.HasDynamicConstraint() && li.DynamicConstraintOrientation() == layout.Vertical {
				if hint := li.SizeHint(which, constraint); hint.Height > height {
					height = hint.Height
				}
			}
		}
	}

	return layout.Size{Width: width, Height: height}
}

// ConstraintOrientation is the axis that depends on the other one for the
// constrained children: Vertical when any child computes its height from
// its width, Horizontal when all of them compute their width from their
// height, 0 when no child is constrained.
func (b *Box) ConstraintOrientation() layout.Orientation {
	var o layout.Orientation
	for i := range b.engine.ItemCount() {
		if li := b.engine.LayoutItemAt(i); li.HasDynamicConstraint() {
			o |= li.DynamicConstraintOrientation()
		}
	}
	if o&layout.Vertical != 0 {
		return layout.Vertical
	}
	return o
}

// HeightForWidth returns the height the box needs for width, including
// padding, or -1 when no child depends on the width.
func (b *Box) HeightForWidth(width float64) float64 {
	return layout.ConstrainedMetric(layout.HeightForWidth, b.padding, width, b.constrainedValue)
}

// WidthForHeight returns the width the box needs for height, including
// padding, or -1 when no child depends on the height.
func (b *Box) WidthForHeight(height float64) float64 {
	return layout.ConstrainedMetric(layout.WidthForHeight, b.padding, height, b.constrainedValue)
}

// constrainedValue is the largest answer of any child.
func (b *Box) constrainedValue(t layout.ConstraintType, widthOrHeight float64) float64 {
	value := layout.Unset
	for i := range b.engine.ItemCount() {
		if item := b.ItemAt(i); item != nil {
			value = max(value, layout.ConstraintFor(t, item, widthOrHeight))
		}
	}
	return value
}
