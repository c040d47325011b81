// Package input turns a raw terminal byte stream into per-frame controls.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/dodger/internal/world"
)

// keyHoldDuration is how long a key counts as held after its last byte.
// It spans more than one 20 Hz frame so auto-repeat reads as a steady hold.
const keyHoldDuration = 120 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit  bool // Pressed since the last frame, or the stream ended
	Reset bool // Pressed since the last frame
	Left  bool // Held
	Right bool // Held
}

// Controls returns the part of the input the simulation consumes.
func (in Input) Controls() world.Input {
	return world.Input{
		Left:  in.Left,
		Right: in.Right,
		Reset: in.Reset,
	}
}

// keyState tracks the last time each movement key was seen.
type keyState struct {
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks held keys across frames.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking.
// Events that arrived since the previous call are reported once.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

func (s *Stream) read(now time.Time) Input {
	var in Input
	buf := s.drain()

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		applyByte(&s.state, &in, b, now)
	}

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	if s.closed {
		in.Quit = true
	}
	return in
}

// drain collects every byte queued so far.
func (s *Stream) drain() []byte {
	var buf []byte
	if s.closed {
		return buf
	}
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// applyByte updates held keys and one-shot events for a single byte.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'r', 'R':
		in.Reset = true
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	}
}
