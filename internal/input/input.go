// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (and autorepeat), never releases.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit      bool
	LeftUp    bool // W
	LeftDown  bool // S
	RightUp   bool // Up arrow or I
	RightDown bool // Down arrow or K
	Space     bool
	Enter     bool
	NewGame   bool // N
	Closed    bool // Underlying reader reached EOF or failed
	Pressed   []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	leftUp    time.Time
	leftDown  time.Time
	rightUp   time.Time
	rightDown time.Time
	space     time.Time
	enter     time.Time
	newGame   time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	stopOnce sync.Once
	state    keyState
	closed   bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r fails or once Stop is called and it next has a
// byte to deliver.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop tells the reader goroutine to quit instead of waiting for a reader
// that no longer drains the stream. Safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence so both players can hold keys at the same time.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	applyBytes(&s.state, buf, now)

	// Keys are "pressed" if seen within hold duration
	return Input{
		Quit:      s.closed || now.Sub(s.state.quit) < keyHoldDuration,
		LeftUp:    now.Sub(s.state.leftUp) < keyHoldDuration,
		LeftDown:  now.Sub(s.state.leftDown) < keyHoldDuration,
		RightUp:   now.Sub(s.state.rightUp) < keyHoldDuration,
		RightDown: now.Sub(s.state.rightDown) < keyHoldDuration,
		Space:     now.Sub(s.state.space) < keyHoldDuration,
		Enter:     now.Sub(s.state.enter) < keyHoldDuration,
		NewGame:   now.Sub(s.state.newGame) < keyHoldDuration,
		Closed:    s.closed,
		Pressed:   buf,
	}
}

// applyBytes parses the collected bytes and updates key state timestamps.
func applyBytes(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				state.rightUp = now
				i += 2
				continue
			case 'B': // Down arrow
				state.rightDown = now
				i += 2
				continue
			case 'C', 'D': // Left/right arrows are unused
				i += 2
				continue
			}
		}

		applyByteToState(state, b, now)
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case 'w', 'W':
		state.leftUp = now
	case 's', 'S':
		state.leftDown = now
	case 'i', 'I':
		state.rightUp = now
	case 'k', 'K':
		state.rightDown = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case 'n', 'N':
		state.newGame = now
	}
}

// ResetKeyInput forgets every held key, e.g. so the SPACE that started a
// match is not still "held" on the first frame of play.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}
