package huecurve

import "slices"

// Listener is a registered event callback. The pointer returned by
// [Emitter.On] identifies the registration; pass it to [Emitter.Off] to
// remove it.
type Listener[T any] struct {
	fn   func(T)
	once bool
}

// Emitter is a synchronous publish/subscribe primitive. Events are named by
// values of K and carry payloads of type T.
//
// The zero value is ready to use. An Emitter is not safe for concurrent use.
type Emitter[K comparable, T any] struct {
	listeners map[K][]*Listener[T]
}

// On registers fn to be called on every future emit of event. Registering
// the same function twice results in two independent registrations, both of
// which are called.
func (e *Emitter[K, T]) On(event K, fn func(T)) *Listener[T] {
	return e.add(event, &Listener[T]{fn: fn})
}

// Once is like [Emitter.On] but removes the listener after its first call.
func (e *Emitter[K, T]) Once(event K, fn func(T)) *Listener[T] {
	return e.add(event, &Listener[T]{fn: fn, once: true})
}

func (e *Emitter[K, T]) add(event K, l *Listener[T]) *Listener[T] {
	if e.listeners == nil {
		e.listeners = make(map[K][]*Listener[T])
	}
	e.listeners[event] = append(e.listeners[event], l)
	return l
}

// Off removes the registration l from event. Removing a listener that isn't
// registered is a no-op.
func (e *Emitter[K, T]) Off(event K, l *Listener[T]) {
	ls, ok := e.listeners[event]
	if !ok {
		return
	}
	ls = slices.DeleteFunc(slices.Clone(ls), func(o *Listener[T]) bool { return o == l })
	if len(ls) == 0 {
		delete(e.listeners, event)
	} else {
		e.listeners[event] = ls
	}
}

// Emit calls every listener registered for event, in registration order,
// with payload. Listeners added or removed by a listener take effect with the
// next emit.
func (e *Emitter[K, T]) Emit(event K, payload T) {
	ls := e.listeners[event]
	if len(ls) == 0 {
		return
	}
	// Off replaces the slice instead of modifying it, so ls stays a stable
	// snapshot for the duration of this loop.
	for _, l := range ls {
		if l.once {
			e.Off(event, l)
		}
		l.fn(payload)
	}
}

// Len returns the number of listeners registered for event.
func (e *Emitter[K, T]) Len(event K) int {
	return len(e.listeners[event])
}

// Clear removes all listeners for all events.
func (e *Emitter[K, T]) Clear() {
	clear(e.listeners)
}
