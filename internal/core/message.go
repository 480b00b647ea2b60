package core

import (
	"time"

	"github.com/google/uuid"
)

// Message is the domain model for a chat message. Author fields are a
// snapshot of the sender's session at post time, never a live reference.
type Message struct {
	ID      string
	User    string
	Color   string
	IsOwner bool
	Text    string
	Time    string
	Pinned  bool
}

// MessageLog is the ordered, mutable sequence of chat messages shared by
// all connections. Append-only ordering: pin and delete never reorder the
// remaining entries.
type MessageLog struct {
	entries []Message
}

// NewMessageLog constructs an empty log.
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Append assigns the message an id and timestamp, stores it at the end of
// the log and returns the stored value.
func (l *MessageLog) Append(m Message) Message {
	m.ID = uuid.NewString()
	m.Time = time.Now().Format("15:04:05")
	l.entries = append(l.entries, m)
	return m
}

// All returns a copy of the full ordered sequence, for replay to new
// joiners and for full-list broadcasts after moderation.
func (l *MessageLog) All() []Message {
	out := make([]Message, len(l.entries))
	copy(out, l.entries)
	return out
}

// FindByID returns the message with the given id, if present.
func (l *MessageLog) FindByID(id string) (Message, bool) {
	for _, m := range l.entries {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}

// SetPinned marks the message with the given id as pinned. Returns false
// if the id is unknown. The flag is never cleared.
func (l *MessageLog) SetPinned(id string) bool {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Pinned = true
			return true
		}
	}
	return false
}

// DeleteByID removes the message with the given id, preserving the order
// of the remaining entries. Returns false if the id is unknown.
func (l *MessageLog) DeleteByID(id string) bool {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of stored messages.
func (l *MessageLog) Len() int {
	return len(l.entries)
}
