package ringfinder

// Observable holds a value and notifies subscribers when it changes.
// It separates state ownership from the widgets that display it.
type Observable[T comparable] struct {
	value     T
	listeners []func(Change[T])
}

// Change describes a modification to the observable.
type Change[T any] struct {
	Old T
	New T
}

// NewObservable creates an observable seeded with v.
func NewObservable[T comparable](v T) *Observable[T] {
	return &Observable[T]{value: v}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	return o.value
}

// Set replaces the value. Subscribers are notified only if it differs.
func (o *Observable[T]) Set(v T) *Observable[T] {
	if v == o.value {
		return o
	}
	old := o.value
	o.value = v
	o.notify(Change[T]{Old: old, New: v})
	return o
}

// Update applies fn to a copy of the value and stores the result.
func (o *Observable[T]) Update(fn func(*T)) *Observable[T] {
	v := o.value
	fn(&v)
	return o.Set(v)
}

// Publish notifies subscribers with the current value even if unchanged.
func (o *Observable[T]) Publish() {
	o.notify(Change[T]{Old: o.value, New: o.value})
}

// Subscribe adds a change listener and returns an unsubscribe function.
func (o *Observable[T]) Subscribe(fn func(Change[T])) func() {
	o.listeners = append(o.listeners, fn)
	idx := len(o.listeners) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		o.listeners[idx] = nil
	}
}

func (o *Observable[T]) notify(c Change[T]) {
	for _, fn := range o.listeners {
		if fn != nil {
			fn(c)
		}
	}
}
