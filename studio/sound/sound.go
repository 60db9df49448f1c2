// Package sound holds the sound effects scenes can trigger and the queue
// that carries triggers from a frame's update to the audio output.
package sound

// ID identifies a sound effect.
type ID uint8

const (
	None ID = iota
	Kick
	// Write is the tape write blip of the turing scene.
	Write
)

func (id ID) String() string {
	switch id {
	case None:
		return "none"
	case Kick:
		return "kick"
	case Write:
		return "write"
	default:
		return "unknown"
	}
}

// Sink plays sound effects. Implementations must not block.
type Sink interface {
	Play(id ID)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ID)

func (f SinkFunc) Play(id ID) { f(id) }
