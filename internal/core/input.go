package core

import (
	"fmt"
	"strings"
	"sync"
)

// KeyCode classifies a key event.
type KeyCode uint8

const (
	KeyNone   KeyCode = iota
	KeyRune           // Printable character, see Key.Rune
	KeyUp             // Up arrow (scan code 'H')
	KeyDown           // Down arrow (scan code 'P')
	KeyEscape         // Esc, the quit key
)

// Key is a single keyboard event as seen by the game loop.
type Key struct {
	Code KeyCode
	Rune rune // Set only when Code is KeyRune
}

// Common keys.
var (
	NoKey     = Key{}
	UpKey     = Key{Code: KeyUp}
	DownKey   = Key{Code: KeyDown}
	EscapeKey = Key{Code: KeyEscape}
)

// RuneKey returns the key for a printable character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// IsRune reports whether k is the printable character r, ignoring case.
func (k Key) IsRune(r rune) bool {
	if k.Code != KeyRune {
		return false
	}
	return strings.EqualFold(string(k.Rune), string(r))
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k.Code {
	case KeyNone:
		return "none"
	case KeyRune:
		return string(k.Rune)
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEscape:
		return "esc"
	default:
		return "unknown"
	}
}

// Extended-key scan codes delivered after a NUL prefix.
const (
	ScanUp   = 'H'
	ScanDown = 'P'
)

// DecodeInkey converts a DOS-style INKEY$ string to a Key.
// Extended keys arrive as NUL followed by a scan code; an empty string means
// no key was pending. Unknown extended codes decode to NoKey.
func DecodeInkey(s string) Key {
	switch {
	case s == "":
		return NoKey
	case s == "\x1b":
		return EscapeKey
	case len(s) == 2 && s[0] == 0:
		switch s[1] {
		case ScanUp:
			return UpKey
		case ScanDown:
			return DownKey
		}
		return NoKey
	}
	r := []rune(s)
	if len(r) != 1 {
		return NoKey
	}
	return RuneKey(r[0])
}

// ParseKey parses a key name such as "w", "up", "down", "esc" or "none".
func ParseKey(name string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "-":
		return NoKey, nil
	case "up":
		return UpKey, nil
	case "down":
		return DownKey, nil
	case "esc", "escape":
		return EscapeKey, nil
	}
	r := []rune(strings.TrimSpace(name))
	if len(r) != 1 {
		return NoKey, fmt.Errorf("unknown key %q", name)
	}
	return RuneKey(r[0]), nil
}

// ParseKeys parses a comma-separated key script.
func ParseKeys(script string) ([]Key, error) {
	if strings.TrimSpace(script) == "" {
		return nil, nil
	}
	parts := strings.Split(script, ",")
	keys := make([]Key, 0, len(parts))
	for i, p := range parts {
		k, err := ParseKey(p)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i+1, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// InputSource yields at most one pending key per call without blocking.
type InputSource interface {
	PollKey() (Key, bool)
}

// TypeAheadSize is the capacity of a KeyQueue, the size of the BIOS
// keyboard buffer.
const TypeAheadSize = 15

// KeyQueue is a bounded FIFO of key events. Backends push from their event
// goroutines and the game loop polls from its own.
type KeyQueue struct {
	mu   sync.Mutex
	keys []Key
}

var _ InputSource = (*KeyQueue)(nil)

// NewKeyQueue creates an empty queue.
func NewKeyQueue() *KeyQueue {
	return &KeyQueue{
		keys: make([]Key, 0, TypeAheadSize),
	}
}

// Push appends a key. It returns false and drops the key if the queue is
// full or the key is NoKey.
func (q *KeyQueue) Push(k Key) bool {
	if k.Code == KeyNone {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.keys) >= TypeAheadSize {
		return false
	}
	q.keys = append(q.keys, k)
	return true
}

// PollKey removes and returns the oldest key, if any.
func (q *KeyQueue) PollKey() (Key, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.keys) == 0 {
		return NoKey, false
	}
	k := q.keys[0]
	copy(q.keys, q.keys[1:])
	q.keys = q.keys[:len(q.keys)-1]
	return k, true
}

// Len returns the number of pending keys.
func (q *KeyQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.keys)
}

// ScriptedInput replays a fixed sequence, one entry per poll.
// NoKey entries stand for frames where nothing was pressed.
type ScriptedInput struct {
	keys []Key
	pos  int
}

var _ InputSource = (*ScriptedInput)(nil)

// NewScriptedInput creates a script from the given keys.
func NewScriptedInput(keys ...Key) *ScriptedInput {
	return &ScriptedInput{keys: keys}
}

// PollKey returns the next scripted key. Once the script runs out every
// poll reports no key.
func (s *ScriptedInput) PollKey() (Key, bool) {
	if s.pos >= len(s.keys) {
		return NoKey, false
	}
	k := s.keys[s.pos]
	s.pos++
	return k, k.Code != KeyNone
}

// Remaining returns how many scripted entries have not been polled yet.
func (s *ScriptedInput) Remaining() int {
	return len(s.keys) - s.pos
}
