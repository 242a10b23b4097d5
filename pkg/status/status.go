package status

import "strings"

// Level classifies a status message.
type Level string

const (
	LevelNone  Level = ""
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Message is the text and severity currently shown in the status bar.
type Message struct {
	Text  string `json:"text"`
	Level Level  `json:"level,omitempty"`
}

// Empty reports whether the message carries neither text nor level.
func (m Message) Empty() bool {
	return strings.TrimSpace(m.Text) == "" && m.Level == LevelNone
}

// Display receives every message written to a Slot.
type Display interface {
	ShowStatus(Message)
}

// DisplayFunc adapts a function into a Display.
type DisplayFunc func(Message)

// ShowStatus delegates to the underlying function.
func (fn DisplayFunc) ShowStatus(msg Message) {
	fn(msg)
}

// Slot stores the current status message. Last write wins; there is no
// history.
type Slot struct {
	current  Message
	displays []Display
}

// NewSlot constructs an empty slot notifying the supplied displays.
func NewSlot(displays ...Display) *Slot {
	s := &Slot{}
	for _, d := range displays {
		s.Attach(d)
	}
	return s
}

// Attach registers an additional display. Nil displays are ignored.
func (s *Slot) Attach(d Display) {
	if s == nil || d == nil {
		return
	}
	s.displays = append(s.displays, d)
}

// Set replaces the current message. An unknown level is stored as none.
func (s *Slot) Set(text string, level Level) {
	if s == nil {
		return
	}
	switch level {
	case LevelInfo, LevelError:
	default:
		level = LevelNone
	}
	s.current = Message{Text: text, Level: level}
	for _, d := range s.displays {
		d.ShowStatus(s.current)
	}
}

// Clear resets the slot to an empty message with no level.
func (s *Slot) Clear() {
	s.Set("", LevelNone)
}

// Current returns the latest message.
func (s *Slot) Current() Message {
	if s == nil {
		return Message{}
	}
	return s.current
}
