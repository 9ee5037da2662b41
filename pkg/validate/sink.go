package validate

import "strings"

// Sink receives diagnostic messages, one per detected problem.
type Sink interface {
	Add(message string)
}

// Log is an append-only Sink. The zero value is ready to use.
// A Log must not be shared between goroutines.
type Log struct {
	entries []string
}

// Add appends a message.
func (l *Log) Add(message string) {
	l.entries = append(l.entries, message)
}

// Entries returns the messages in the order they were added.
func (l *Log) Entries() []string {
	return l.entries
}

// Count returns the number of messages.
func (l *Log) Count() int {
	return len(l.entries)
}

// Empty reports whether no problem was recorded.
func (l *Log) Empty() bool {
	return len(l.entries) == 0
}

// String joins the messages with newlines.
func (l *Log) String() string {
	return strings.Join(l.entries, "\n")
}
