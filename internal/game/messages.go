package game

import "strings"

// MsgTone controls the colour of a HUD message.
type MsgTone uint8

const (
	MsgInfo    MsgTone = iota // white
	MsgPickup                 // tinted like the hazard
	MsgWarning                // red
	MsgCycle                  // magenta
)

// MessageLifetime is how long a HUD line stays on screen, in seconds.
const MessageLifetime = 3.0

// Message is a single HUD line.
type Message struct {
	Text string
	Tone MsgTone
	Age  float64
}

// MessageLog is a bounded FIFO of HUD lines that fade out with age.
type MessageLog struct {
	Messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize messages.
func NewMessageLog(maxSize int) *MessageLog {
	return &MessageLog{
		Messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends a message, evicting the oldest if full.
// Long messages are wrapped at 40 columns.
func (l *MessageLog) Add(text string, tone MsgTone) {
	const maxWidth = 40
	for _, line := range WrapText(text, maxWidth) {
		msg := Message{Text: line, Tone: tone}
		if len(l.Messages) >= l.maxSize {
			copy(l.Messages, l.Messages[1:])
			l.Messages[len(l.Messages)-1] = msg
		} else {
			l.Messages = append(l.Messages, msg)
		}
	}
}

// Update ages every message and drops the expired ones.
func (l *MessageLog) Update(dt float64) {
	kept := l.Messages[:0]
	for _, m := range l.Messages {
		m.Age += dt
		if m.Age < MessageLifetime {
			kept = append(kept, m)
		}
	}
	l.Messages = kept
}

// Clear drops every message.
func (l *MessageLog) Clear() { l.Messages = l.Messages[:0] }

// Recent returns the last n messages (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	if n > len(l.Messages) {
		n = len(l.Messages)
	}
	return l.Messages[len(l.Messages)-n:]
}

// WrapText splits text into lines no longer than maxWidth.
func WrapText(s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > maxWidth {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(result, line)
}
