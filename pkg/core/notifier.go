package core

// Listenable is anything that accepts change listeners.
type Listenable interface {
	// AddListener registers fn and returns an unregister function.
	AddListener(fn func()) func()
}

// Notifier is the minimal observable: an ordered list of non-owning
// listener callbacks. The zero value is ready to use.
//
// Notifier does not own listener lifetime; unsubscribing is the listener's
// responsibility via the function returned from AddListener. It is not an
// event bus: if a listener panics, the panic propagates to the notifying
// caller.
type Notifier struct {
	entries []*listenerEntry
}

type listenerEntry struct {
	fn      func()
	removed bool
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener appends fn to the listener list, preserving addition order,
// and returns a function that unregisters it. Unregistering twice is a
// no-op.
func (n *Notifier) AddListener(fn func()) func() {
	entry := &listenerEntry{fn: fn}
	n.entries = append(n.entries, entry)
	return func() {
		entry.removed = true
	}
}

// NotifyListeners invokes every live listener in addition order. The
// listener list itself is never mutated during notification; a listener
// removed mid-pass is skipped if not yet reached.
func (n *Notifier) NotifyListeners() {
	snapshot := make([]*listenerEntry, len(n.entries))
	copy(snapshot, n.entries)
	for _, entry := range snapshot {
		if !entry.removed {
			entry.fn()
		}
	}
	n.compact()
}

// ListenerCount returns the number of live listeners.
func (n *Notifier) ListenerCount() int {
	count := 0
	for _, entry := range n.entries {
		if !entry.removed {
			count++
		}
	}
	return count
}

// compact drops removed entries so long-lived notifiers do not accumulate
// dead slots.
func (n *Notifier) compact() {
	live := n.entries[:0]
	for _, entry := range n.entries {
		if !entry.removed {
			live = append(live, entry)
		}
	}
	n.entries = live
}
