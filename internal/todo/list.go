package todo

// List is an ordered collection with an optional selection cursor that wraps
// around at both ends. "Nothing selected" is a distinct state, not an alias
// for index 0. The list owns its backing slice; Items returns a copy.
type List[T any] struct {
	items    []T
	selected int // index into items, or -1 for no selection
}

// NewList returns an empty list with no selection.
func NewList[T any]() *List[T] {
	return &List[T]{selected: -1}
}

// Next moves the selection forward, wrapping from the last item to the first.
// With no selection it selects the first item. No-op on an empty list.
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	if l.selected < 0 {
		l.selected = 0
		return
	}
	l.selected = (l.selected + 1) % len(l.items)
}

// Previous moves the selection backward, wrapping from the first item to the
// last. With no selection it selects the first item. No-op on an empty list.
func (l *List[T]) Previous() {
	if len(l.items) == 0 {
		return
	}
	if l.selected < 0 {
		l.selected = 0
		return
	}
	l.selected = (l.selected - 1 + len(l.items)) % len(l.items)
}

// Unselect clears the selection.
func (l *List[T]) Unselect() {
	l.selected = -1
}

// Append adds a value at the end. The current selection is untouched.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Selected returns the selected index, or false when nothing is selected.
func (l *List[T]) Selected() (int, bool) {
	if l.selected < 0 {
		return 0, false
	}
	return l.selected, true
}

// Items returns a copy of the items in order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
