// Package stack provides a container that shows one of its children at a
// time, with optional animated transitions between them.
//
// Children are managed by a layout engine that reports insertions and
// removals to the [Box]. All children share one cell; the box tracks which
// of them is current and keeps every other child hidden:
//
//	box := stack.New()
//	box.AddItem(home)
//	box.AddItem(settings)
//	box.SetCurrentIndex(1) // settings shown, home hidden
//
// When the box is attached to a window, visible and painted at least once,
// switching the current item hands off to an [Animator]; otherwise the
// visibility of the two items is swapped immediately.
package stack

import (
	"reflect"
	"slices"

	"github.com/go-drift/skinny/pkg/layout"
)

// mutableEngine is implemented by engines that accept items directly.
type mutableEngine interface {
	InsertAt(index int, item layout.Item, row, column int) int
	RemoveAt(index int)
}

// geometryEngine is implemented by engines that know their layout rectangle.
type geometryEngine interface {
	Geometry() layout.Rect
}

// Box is a container whose children are stacked on top of each other, with
// at most one of them visible.
//
// Box is not safe for concurrent use; it belongs to the UI goroutine.
type Box struct {
	engine       layout.Engine
	currentIndex int

	animator Animator
	provider AnimatorProvider
	fallback Animator

	padding layout.Margins

	window  Window
	visible bool
	painted bool

	listeners      []indexListener
	nextListenerID int
}

type indexListener struct {
	id int
	fn func(int)
}

// New returns an empty box backed by a [layout.GridEngine].
func New() *Box {
	engine := layout.NewGridEngine()
	b := NewWithEngine(engine)
	engine.SetObserver(b)
	return b
}

// NewWithEngine returns an empty box on top of engine. The engine must
// report insertions and removals through [Box.ItemInserted] and
// [Box.ItemRemoved].
func NewWithEngine(engine layout.Engine) *Box {
	return &Box{
		engine:       engine,
		currentIndex: -1,
		visible:      true,
	}
}

// Engine returns the layout engine of the box.
func (b *Box) Engine() layout.Engine { return b.engine }

// AddItem appends item. It does nothing when the engine does not accept
// items directly.
func (b *Box) AddItem(item layout.Item) {
	b.InsertItem(b.engine.ItemCount(), item)
}

// InsertItem inserts item at index. Negative indexes append.
func (b *Box) InsertItem(index int, item layout.Item) {
	e, ok := b.engine.(mutableEngine)
	if !ok || item == nil {
		return
	}
	if index < 0 {
		index = b.engine.ItemCount()
	}
	e.InsertAt(index, item, 0, 0)
}

// RemoveAt removes the item at index.
func (b *Box) RemoveAt(index int) {
	if e, ok := b.engine.(mutableEngine); ok {
		e.RemoveAt(index)
	}
}

// RemoveItem removes item if it is a child of the box.
func (b *Box) RemoveItem(item layout.Item) {
	b.RemoveAt(b.engine.IndexOf(item))
}

// ItemInserted is called by the engine after a child was added.
//
// The first child becomes current and visible; every later child starts
// hidden. Children keep their size when hidden, otherwise the engine would
// collapse the shared cell as soon as its first occupant is hidden.
func (b *Box) ItemInserted(li layout.LayoutItem, index int) {
	if li == nil {
		return
	}
	item := li.Item()
	if item == nil {
		return
	}

	li.SetRetainSizeWhenHidden(true)

	if b.engine.ItemCount() == 1 {
		b.currentIndex = 0
		item.SetVisible(true)
		b.notify()
	} else {
		item.SetVisible(false)
	}
}

// ItemRemoved is called by the engine after a child was removed.
//
// Removing the current child selects the one that took its place, or the
// new last child when it was the last one. Removing an earlier child shifts
// the current index down by one without a change notification, since the
// current item stays the same.
func (b *Box) ItemRemoved(li layout.LayoutItem, index int) {
	switch {
	case index == b.currentIndex:
		newIndex := b.currentIndex
		if newIndex == b.engine.ItemCount() {
			newIndex--
		}
		b.currentIndex = -1
		if newIndex >= 0 {
			b.SetCurrentIndex(newIndex)
		} else {
			b.notify()
		}
	case index < b.currentIndex:
		b.currentIndex--
	}

	b.engine.RepairIfNeeded()
}

// SetCurrentIndex makes the child at index the visible one. Indexes out of
// range hide all children. Setting the current index again does nothing.
func (b *Box) SetCurrentIndex(index int) {
	if index < 0 || index >= b.engine.ItemCount() {
		index = -1
	}
	if index == b.currentIndex {
		return
	}

	animator := b.EffectiveAnimator()
	if animator != nil {
		animator.Stop()
	}

	if b.window != nil && b.visible && b.painted && animator != nil {
		// hidden items miss geometry updates
		b.engine.AdjustItemAt(index)

		animator.SetStartIndex(b.currentIndex)
		animator.SetEndIndex(index)
		animator.SetWindow(b.window)
		animator.Start()
	} else {
		if item := b.ItemAt(b.currentIndex); item != nil {
			item.SetVisible(false)
		}
		if item := b.ItemAt(index); item != nil {
			item.SetVisible(true)
		}
	}

	b.currentIndex = index
	b.notify()
}

// SetCurrentItem makes item the visible child. An item that is not a child
// hides all children.
func (b *Box) SetCurrentItem(item layout.Item) {
	b.SetCurrentIndex(b.engine.IndexOf(item))
}

// CurrentIndex returns the index of the visible child, or -1.
func (b *Box) CurrentIndex() int { return b.currentIndex }

// CurrentItem returns the visible child, or nil.
func (b *Box) CurrentItem() layout.Item { return b.ItemAt(b.currentIndex) }

// ItemCount returns the number of children.
func (b *Box) ItemCount() int { return b.engine.ItemCount() }

// ItemAt returns the child at index, or nil when index is out of range.
func (b *Box) ItemAt(index int) layout.Item {
	li := b.engine.LayoutItemAt(index)
	if li == nil {
		return nil
	}
	return li.Item()
}

// Extent returns the size of the rectangle the box lays out into, or an
// unset size when the engine does not track one.
func (b *Box) Extent() layout.Size {
	if e, ok := b.engine.(geometryEngine); ok {
		return e.Geometry().Size()
	}
	return layout.UnsetSize
}

// OnCurrentIndexChanged registers fn to be called with the new index
// whenever the current index changes. Returns an unsubscribe function.
func (b *Box) OnCurrentIndexChanged(fn func(index int)) func() {
	id := b.nextListenerID
	b.nextListenerID++
	b.listeners = append(b.listeners, indexListener{id: id, fn: fn})
	return func() {
		b.listeners = slices.DeleteFunc(b.listeners, func(l indexListener) bool { return l.id == id })
	}
}

func (b *Box) notify() {
	// listeners run in subscription order and may unsubscribe while notified
	for _, l := range slices.Clone(b.listeners) {
		l.fn(b.currentIndex)
	}
}

// SetAnimator installs the animator for transitions and takes ownership of
// it. The previous animator is stopped and disposed. Nil removes the
// animator.
func (b *Box) SetAnimator(a Animator) {
	if sameAnimator(a, b.animator) {
		return
	}
	if b.animator != nil {
		b.animator.Stop()
		b.animator.Dispose()
	}
	if a != nil {
		a.Stop()
		if c, ok := a.(ContainerAware); ok {
			c.SetContainer(b)
		}
	}
	b.animator = a
}

// sameAnimator compares a and b without panicking on dynamic types that
// are not comparable, which are never considered equal.
func sameAnimator(a, b Animator) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	return t == reflect.TypeOf(b) && t.Comparable() && a == b
}

// Animator returns the animator set with SetAnimator, or nil.
func (b *Box) Animator() Animator { return b.animator }

// SetAnimatorProvider sets the source of the animator used when none is
// set explicitly. The animator obtained from a previous provider is
// disposed.
func (b *Box) SetAnimatorProvider(p AnimatorProvider) {
	b.disposeFallback()
	b.provider = p
}

// EffectiveAnimator returns the animator used for transitions: the one set
// with SetAnimator, else the one supplied by the animator provider for
// [TransitionHint], else nil. The provided animator is requested once and
// kept until the provider changes.
func (b *Box) EffectiveAnimator() Animator {
	if b.animator != nil {
		return b.animator
	}
	if b.fallback == nil && b.provider != nil {
		if a := b.provider.StackAnimator(TransitionHint); a != nil {
			if c, ok := a.(ContainerAware); ok {
				c.SetContainer(b)
			}
			b.fallback = a
		}
	}
	return b.fallback
}

func (b *Box) disposeFallback() {
	if b.fallback != nil {
		b.fallback.Stop()
		b.fallback.Dispose()
		b.fallback = nil
	}
}

// SetWindow attaches the box to a window. Nil detaches it.
func (b *Box) SetWindow(w Window) { b.window = w }

// Window returns the window the box is attached to, or nil.
func (b *Box) Window() Window { return b.window }

// SetVisible sets whether the box itself is shown.
func (b *Box) SetVisible(v bool) { b.visible = v }

// IsVisible reports whether the box itself is shown.
func (b *Box) IsVisible() bool { return b.visible }

// SetInitiallyPainted records that the box has been painted once.
func (b *Box) SetInitiallyPainted(p bool) { b.painted = p }

// IsInitiallyPainted reports whether the box has been painted once.
func (b *Box) IsInitiallyPainted() bool { return b.painted }

// Dispose stops and releases the animators and drops all listeners.
func (b *Box) Dispose() {
	b.SetAnimator(nil)
	b.disposeFallback()
	b.provider = nil
	b.listeners = nil
}
