package rectray

// Signals are typed latest-value channels for decoupled widget wiring:
// a drag handler sends a scroll fraction, a receiver on another node
// polls it during its own update. A signal never queues; each send
// overwrites the last value, and every receiver observes each version
// at most once.

type signalState[T any] struct {
	value   T
	version uint64
	closed  bool
}

// Sender is the write side of a signal.
type Sender[T any] struct {
	s *signalState[T]
}

// Receiver is the read side of a signal. Each Receiver tracks the last
// version it observed independently.
type Receiver[T any] struct {
	s    *signalState[T]
	seen uint64
}

// NewSignal creates a signal and returns its sender and one receiver.
// Additional receivers come from Sender.NewReceiver.
func NewSignal[T any]() (*Sender[T], *Receiver[T]) {
	s := &signalState[T]{}
	return &Sender[T]{s}, &Receiver[T]{s: s}
}

// Send publishes v, replacing any unread value. It reports false if
// the signal is closed.
func (sd *Sender[T]) Send(v T) bool {
	if sd.s.closed {
		return false
	}
	sd.s.value = v
	sd.s.version++
	return true
}

// Close marks the signal closed. Further sends are dropped; receivers
// can still poll the last value once.
func (sd *Sender[T]) Close() {
	sd.s.closed = true
}

// NewReceiver returns another independent receiver for the signal.
func (sd *Sender[T]) NewReceiver() *Receiver[T] {
	return &Receiver[T]{s: sd.s}
}

// Poll returns the latest value if it has not been observed by this
// receiver yet.
func (r *Receiver[T]) Poll() (T, bool) {
	if r.s.version == r.seen {
		var zero T
		return zero, false
	}
	r.seen = r.s.version
	return r.s.value, true
}

// Peek returns the latest value without consuming it. ok is false if
// nothing was ever sent.
func (r *Receiver[T]) Peek() (T, bool) {
	return r.s.value, r.s.version != 0
}

// Closed reports whether the sender closed the signal.
func (r *Receiver[T]) Closed() bool {
	return r.s.closed
}

// Poller is the read side shared by Receiver and adapters.
type Poller[T any] interface {
	Poll() (T, bool)
}

type adapter[A, B any] struct {
	r Poller[A]
	f func(A) B
}

func (a adapter[A, B]) Poll() (B, bool) {
	v, ok := a.r.Poll()
	if !ok {
		var zero B
		return zero, false
	}
	return a.f(v), true
}

// Adapt maps a signal's values through f, so a receiver of one type
// can feed a consumer of another.
func Adapt[A, B any](r Poller[A], f func(A) B) Poller[B] {
	return adapter[A, B]{r, f}
}
