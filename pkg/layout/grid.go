package layout

// GridItem is the engine entry of an item placed in a grid cell.
type GridItem struct {
	item   Item
	row    int
	column int
	retain bool
}

// Item returns the managed item.
func (g *GridItem) Item() Item { return g.item }

// Cell returns the row and column of the item.
func (g *GridItem) Cell() (row, column int) { return g.row, g.column }

// HasDynamicConstraint reports whether the item has a constraint function.
func (g *GridItem) HasDynamicConstraint() bool {
	return g.DynamicConstraintOrientation() != 0
}

// DynamicConstraintOrientation returns the axis whose extent depends on the
// other one, or 0.
func (g *GridItem) DynamicConstraintOrientation() Orientation {
	if c, ok := g.item.(Constrained); ok {
		return c.ConstraintOrientation()
	}
	return 0
}

// SizeHint returns the size hint of the item. When the constraint fixes the
// independent axis of a constrained item, the dependent axis is computed
// from it.
func (g *GridItem) SizeHint(which SizeHintKind, constraint Size) Size {
	hint := UnsetSize
	if h, ok := g.item.(SizeHinter); ok {
		hint = h.SizeHint(which, constraint)
	}
	if which != PreferredSize {
		return hint
	}
	if c, ok := g.item.(Constrained); ok {
		switch c.ConstraintOrientation() {
		case Horizontal:
			if constraint.Height >= 0 {
				hint = Size{Width: c.WidthForHeight(constraint.Height), Height: constraint.Height}
			}
		case Vertical:
			if constraint.Width >= 0 {
				hint = Size{Width: constraint.Width, Height: c.HeightForWidth(constraint.Width)}
			}
		}
	}
	return hint
}

// SetRetainSizeWhenHidden controls whether a hidden item keeps its cell.
func (g *GridItem) SetRetainSizeWhenHidden(retain bool) { g.retain = retain }

// RetainSizeWhenHidden reports whether a hidden item keeps its cell.
func (g *GridItem) RetainSizeWhenHidden() bool { return g.retain }

// isIgnored reports whether the engine skips the item for geometry.
func (g *GridItem) isIgnored() bool {
	return g.item == nil || (!g.item.IsVisible() && !g.retain)
}

// GridEngine is a small grid layout engine. Several items may share a cell,
// but each cell registers only its first occupant, so removing that
// occupant leaves the cell empty until the grid is rebuilt by Transpose.
// RepairIfNeeded does exactly that for cell (0, 0).
type GridEngine struct {
	items    []*GridItem
	cells    map[[2]int]*GridItem
	geometry Rect
	observer Observer
}

// NewGridEngine creates an empty engine.
func NewGridEngine() *GridEngine {
	return &GridEngine{cells: make(map[[2]int]*GridItem)}
}

// SetObserver installs the receiver of insert and remove notifications.
func (e *GridEngine) SetObserver(o Observer) {
	e.observer = o
}

// ItemCount returns the number of items.
func (e *GridEngine) ItemCount() int {
	return len(e.items)
}

// LayoutItemAt returns the entry at index, or nil.
func (e *GridEngine) LayoutItemAt(index int) LayoutItem {
	if index < 0 || index >= len(e.items) {
		return nil
	}
	return e.items[index]
}

// IndexOf returns the index of item, or -1.
func (e *GridEngine) IndexOf(item Item) int {
	if item == nil {
		return -1
	}
	for i, g := range e.items {
		if g.item == item {
			return i
		}
	}
	return -1
}

// Insert appends item at the given cell.
func (e *GridEngine) Insert(item Item, row, column int) int {
	return e.InsertAt(len(e.items), item, row, column)
}

// InsertAt inserts item at index, clamped to the valid range, and returns
// the index used.
func (e *GridEngine) InsertAt(index int, item Item, row, column int) int {
	index = min(max(index, 0), len(e.items))

	g := &GridItem{item: item, row: row, column: column}
	e.items = append(e.items, nil)
	copy(e.items[index+1:], e.items[index:])
	e.items[index] = g

	key := [2]int{row, column}
	if e.cells[key] == nil {
		e.cells[key] = g
	}
	if e.observer != nil {
		e.observer.ItemInserted(g, index)
	}
	return index
}

// RemoveAt removes the item at index. The observer is notified after the
// item is gone.
func (e *GridEngine) RemoveAt(index int) {
	if index < 0 || index >= len(e.items) {
		return
	}
	g := e.items[index]
	e.items = append(e.items[:index], e.items[index+1:]...)

	key := [2]int{g.row, g.column}
	if e.cells[key] == g {
		delete(e.cells, key)
	}
	if e.observer != nil {
		e.observer.ItemRemoved(g, index)
	}
}

// Remove removes item if it is managed by the engine.
func (e *GridEngine) Remove(item Item) {
	if i := e.IndexOf(item); i >= 0 {
		e.RemoveAt(i)
	}
}

// ItemAt returns the item registered for a cell.
func (e *GridEngine) ItemAt(row, column int) *GridItem {
	return e.cells[[2]int{row, column}]
}

// Transpose swaps rows and columns and rebuilds the cell registry.
func (e *GridEngine) Transpose() {
	e.cells = make(map[[2]int]*GridItem, len(e.items))
	for _, g := range e.items {
		g.row, g.column = g.column, g.row
		key := [2]int{g.row, g.column}
		if e.cells[key] == nil {
			e.cells[key] = g
		}
	}
}

// RepairIfNeeded re-registers cell (0, 0) when its occupant was removed
// while other items remain.
func (e *GridEngine) RepairIfNeeded() {
	if len(e.items) > 0 && e.ItemAt(0, 0) == nil {
		e.Transpose()
		e.Transpose()
	}
}

// SetGeometry sets the rectangle the engine lays out into.
func (e *GridEngine) SetGeometry(r Rect) {
	e.geometry = r
}

// Geometry returns the rectangle the engine lays out into.
func (e *GridEngine) Geometry() Rect {
	return e.geometry
}

// AdjustItemAt assigns the engine geometry to the item at index.
func (e *GridEngine) AdjustItemAt(index int) {
	if index < 0 || index >= len(e.items) {
		return
	}
	if g, ok := e.items[index].item.(Geometric); ok {
		g.SetGeometry(e.geometry)
	}
}

// UpdateGeometries assigns the engine geometry to every item that is not
// ignored. Hidden items without retained size are skipped.
func (e *GridEngine) UpdateGeometries() {
	for _, g := range e.items {
		if g.isIgnored() {
			continue
		}
		if geo, ok := g.item.(Geometric); ok {
			geo.SetGeometry(e.geometry)
		}
	}
}
