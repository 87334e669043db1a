package report

import "strings"

// Log is an append-only sequence of rendered report entries.
// Entries are never removed or mutated once appended.
type Log struct {
	entries []string
}

// Append adds a rendered entry to the end of the log.
func (l *Log) Append(entry string) {
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the entries in append order.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// String joins all entries with newlines.
func (l *Log) String() string {
	return strings.Join(l.entries, "\n")
}
