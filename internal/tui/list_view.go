package tui

import "github.com/MKhiriev/axle-client/internal/store"

// listView is the cursor and page over one list store's state.
type listView[T any] struct {
	items   []T
	loading bool
	err     string
	idx     int
	page    int32
}

func newListView[T any]() listView[T] {
	return listView[T]{page: 1}
}

func (l *listView[T]) apply(s store.State[T]) {
	l.items = s.Items
	l.loading = s.Loading
	l.err = s.Err
	if l.idx >= len(l.items) {
		l.idx = max(len(l.items)-1, 0)
	}
}

func (l *listView[T]) up() {
	if l.idx > 0 {
		l.idx--
	}
}

func (l *listView[T]) down() {
	if l.idx < len(l.items)-1 {
		l.idx++
	}
}

func (l *listView[T]) selected() (T, bool) {
	var zero T
	if l.idx < 0 || l.idx >= len(l.items) {
		return zero, false
	}
	return l.items[l.idx], true
}

// prev and next move the page and report whether it changed. A short page
// is taken to be the last one.
func (l *listView[T]) prev() bool {
	if l.page <= 1 {
		return false
	}
	l.page--
	l.idx = 0
	return true
}

func (l *listView[T]) next(pageSize int32) bool {
	if int32(len(l.items)) < pageSize {
		return false
	}
	l.page++
	l.idx = 0
	return true
}
