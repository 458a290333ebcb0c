// Package watch lets stores announce changes and turns those
// announcements into Bubble Tea messages.
package watch

import "sync"

// Subscribable is anything that can report changes to a callback.
type Subscribable interface {
	Subscribe(fn func()) (cancel func())
}

// Listeners is a set of change callbacks. The zero value is ready to use.
type Listeners struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func()
}

// Subscribe registers fn and returns a function that removes it.
// Calling the cancel function more than once is harmless.
func (l *Listeners) Subscribe(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.fns, id)
	}
}

// Notify calls every registered callback. Callbacks run outside the
// lock, so they may subscribe or cancel.
func (l *Listeners) Notify() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of registered callbacks.
func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}
