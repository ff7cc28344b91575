package store

import "sync"

// View is the read side of an [Observable]. Stores hand out Views so only
// the store itself can change its state.
type View[T any] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

// readOnly hides Set behind a View.
type readOnly[T any] struct {
	o *Observable[T]
}

func (r readOnly[T]) Get() T { return r.o.Get() }

func (r readOnly[T]) Subscribe(fn func(T)) (unsubscribe func()) { return r.o.Subscribe(fn) }

// ReadOnly returns a View of o that cannot change it.
func (o *Observable[T]) ReadOnly() View[T] {
	return readOnly[T]{o: o}
}

// Observable holds a value and notifies subscribers after each change.
// Listeners run on the goroutine that changed the value, outside any lock,
// in subscription order.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	nextID    uint64
	listeners []listener[T]
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Subscribe registers fn and returns a function removing it. The current
// value is not replayed.
func (o *Observable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	o.listeners = append(o.listeners, listener[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			for i, l := range o.listeners {
				if l.id == id {
					o.listeners = append(o.listeners[:i:i], o.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Set stores v and notifies listeners.
func (o *Observable[T]) Set(v T) {
	o.store(v)()
}

// store swaps the value and returns the notification to run once the
// caller has released its own locks.
func (o *Observable[T]) store(v T) (notify func()) {
	o.mu.Lock()
	o.value = v
	ls := make([]func(T), len(o.listeners))
	for i, l := range o.listeners {
		ls[i] = l.fn
	}
	o.mu.Unlock()

	return func() {
		for _, fn := range ls {
			fn(v)
		}
	}
}
