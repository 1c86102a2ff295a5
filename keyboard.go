package huecurve

import "strings"

// KeyEventKind distinguishes key transitions.
type KeyEventKind int

const (
	KeyDown KeyEventKind = iota + 1
	KeyUp
	// KeyPress is reported for keys that produce a character. It doesn't
	// affect key state.
	KeyPress
)

func (k KeyEventKind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case KeyPress:
		return "keypress"
	default:
		return "invalid"
	}
}

// KeyEvent is a raw keyboard event as delivered by the host.
type KeyEvent struct {
	Kind KeyEventKind
	// Key is the key's name as reported by the host, such as "Shift",
	// "Delete" or "a".
	Key string
}

// Name returns the normalized key name used for key state and per-key
// listeners.
func (ev KeyEvent) Name() string {
	return strings.ToLower(ev.Key)
}

// KeySource is the host's keyboard input surface.
type KeySource interface {
	// Subscribe arranges for fn to be called for every key event and returns
	// a function that stops delivery.
	Subscribe(fn func(KeyEvent)) (cancel func())
}

type keyRoute struct {
	kind KeyEventKind
	key  string
}

// Keyboard tracks which keys are held and dispatches key events, both to
// listeners for all keys and to listeners for individual keys.
//
// Key state only reflects events seen since the Keyboard was created or last
// reset. Hosts should call [Keyboard.Reset] when they lose input focus, as the
// matching key-up events will never be delivered.
//
// A Keyboard is not safe for concurrent use.
type Keyboard struct {
	keys   map[string]bool
	all    Emitter[KeyEventKind, KeyEvent]
	perKey Emitter[keyRoute, KeyEvent]
	cancel func()
	closed bool
}

// NewKeyboard returns a Keyboard attached to src. If src is nil, events have
// to be fed with [Keyboard.Handle].
func NewKeyboard(src KeySource) *Keyboard {
	kb := &Keyboard{keys: make(map[string]bool)}
	if src != nil {
		kb.cancel = src.Subscribe(kb.Handle)
	}
	return kb
}

// Handle processes a key event. Events are ignored after the Keyboard has
// been closed.
func (kb *Keyboard) Handle(ev KeyEvent) {
	if kb.closed {
		return
	}
	key := ev.Name()
	switch ev.Kind {
	case KeyDown:
		kb.keys[key] = true
	case KeyUp:
		kb.keys[key] = false
	case KeyPress:
	default:
		Logger().Debug("ignoring key event of unknown kind", "kind", int(ev.Kind), "key", ev.Key)
		return
	}
	kb.all.Emit(ev.Kind, ev)
	kb.perKey.Emit(keyRoute{ev.Kind, key}, ev)
}

// On registers fn for all events of the given kind.
func (kb *Keyboard) On(kind KeyEventKind, fn func(KeyEvent)) *Listener[KeyEvent] {
	return kb.all.On(kind, fn)
}

// Off removes a listener registered with [Keyboard.On].
func (kb *Keyboard) Off(kind KeyEventKind, l *Listener[KeyEvent]) {
	kb.all.Off(kind, l)
}

// OnKey registers fn for events of the given kind for one key. Key names are
// case-insensitive.
func (kb *Keyboard) OnKey(kind KeyEventKind, key string, fn func(KeyEvent)) *Listener[KeyEvent] {
	return kb.perKey.On(keyRoute{kind, strings.ToLower(key)}, fn)
}

// OffKey removes a listener registered with [Keyboard.OnKey].
func (kb *Keyboard) OffKey(kind KeyEventKind, key string, l *Listener[KeyEvent]) {
	kb.perKey.Off(keyRoute{kind, strings.ToLower(key)}, l)
}

// Test reports whether all of the named keys are currently held. Keys that
// have never been seen count as not held, and testing no keys at all
// succeeds.
func (kb *Keyboard) Test(keys ...string) bool {
	for _, key := range keys {
		if !kb.keys[strings.ToLower(key)] {
			return false
		}
	}
	return true
}

// Reset forgets all held keys.
func (kb *Keyboard) Reset() {
	clear(kb.keys)
}

// Close detaches the Keyboard from its source, forgets all held keys and
// removes all listeners. It is safe to call Close more than once.
func (kb *Keyboard) Close() {
	if kb.closed {
		return
	}
	kb.closed = true
	if kb.cancel != nil {
		kb.cancel()
		kb.cancel = nil
	}
	kb.Reset()
	kb.all.Clear()
	kb.perKey.Clear()
}
