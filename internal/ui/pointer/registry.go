// Package pointer fans terminal mouse presses out to the controls that care
// about clicks landing outside of them.
package pointer

import (
	"sync"

	"github.com/atomicstack/datepop/internal/logging/events"
)

// Event is a primary-button press at a terminal cell.
type Event struct {
	X int
	Y int
}

// Listener receives every dispatched press.
type Listener func(Event)

// Region is a rectangle of terminal cells.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Registry is a shared, document-level set of press listeners.
type Registry struct {
	mu        sync.Mutex
	nextID    int
	listeners []entry
}

type entry struct {
	id int
	fn Listener
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers fn and returns the function that removes it again. The
// release function is idempotent.
func (r *Registry) Add(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.listeners = append(r.listeners, entry{id: id, fn: fn})
	live := len(r.listeners)
	r.mu.Unlock()
	events.Pointer.Add(id, live)

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *Registry) remove(id int) {
	r.mu.Lock()
	for i, e := range r.listeners {
		if e.id == id {
			r.listeners = append(r.listeners[:i:i], r.listeners[i+1:]...)
			break
		}
	}
	live := len(r.listeners)
	r.mu.Unlock()
	events.Pointer.Release(id, live)
}

// Dispatch delivers ev to every listener registered at the time of the
// call, in registration order.
func (r *Registry) Dispatch(ev Event) {
	r.mu.Lock()
	snapshot := make([]Listener, len(r.listeners))
	for i, e := range r.listeners {
		snapshot[i] = e.fn
	}
	r.mu.Unlock()
	for _, fn := range snapshot {
		fn(ev)
	}
}

// Len returns the number of live listeners.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listeners)
}
