package window

import "github.com/1broseidon/mono/internal/event"

// Listener receives events of the type it was registered for.
type Listener func(event.Event)

// ListenerID identifies one registration. IDs start at 1 and are never
// reused within a window, so removing by ID can only ever remove the
// registration that produced it. The zero ID matches nothing.
type ListenerID uint64

type listener struct {
	id ListenerID
	fn Listener
}

type registry struct {
	nextID ListenerID
	byType map[event.Type][]listener
}

func (r *registry) add(typ event.Type, fn Listener) ListenerID {
	if r.byType == nil {
		r.byType = make(map[event.Type][]listener)
	}
	r.nextID++
	r.byType[typ] = append(r.byType[typ], listener{id: r.nextID, fn: fn})
	return r.nextID
}

func (r *registry) remove(typ event.Type, id ListenerID) bool {
	list := r.byType[typ]
	for i := range list {
		if list[i].id != id {
			continue
		}
		// Copy rather than shift in place: a dispatch in progress may still
		// be iterating the old slice.
		next := make([]listener, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(r.byType, typ)
		} else {
			r.byType[typ] = next
		}
		return true
	}
	return false
}

// dispatch calls every listener registered for ev's type when dispatch
// started, in registration order.
func (r *registry) dispatch(ev event.Event) {
	for _, l := range r.byType[ev.Type()] {
		l.fn(ev)
	}
}

func (r *registry) count(typ event.Type) int {
	return len(r.byType[typ])
}

// AddEventListener registers fn for events of type typ and returns the ID
// needed to remove it. Listeners run synchronously inside Poll, in
// registration order. A nil fn is not registered and yields the zero ID.
func (w *Window) AddEventListener(typ event.Type, fn Listener) ListenerID {
	if fn == nil {
		w.logger.Warn("ignoring nil listener", "type", typ.String())
		return 0
	}
	return w.data.listeners.add(typ, fn)
}

// RemoveEventListener unregisters id from typ. Unknown IDs are ignored.
func (w *Window) RemoveEventListener(typ event.Type, id ListenerID) {
	if w.data.listeners.remove(typ, id) {
		w.logger.Debug("listener removed", "type", typ.String(), "id", uint64(id))
	}
}

// ListenerCount returns the number of listeners registered for typ.
func (w *Window) ListenerCount(typ event.Type) int {
	return w.data.listeners.count(typ)
}
