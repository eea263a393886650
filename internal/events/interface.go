package events

// Publisher is the emitting side of the bus. Services depend on this
// interface rather than *Bus so tests can record emitted events.
type Publisher interface {
	Emit(event Event)
}

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)
