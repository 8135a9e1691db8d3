// Package history records evaluated expressions and their results.
package history

import "time"

// Entry is one evaluated expression.
type Entry struct {
	ID     int64
	Expr   string
	Result int
	// Err is the error text if the expression failed, empty otherwise.
	Err string
	Ts  time.Time
}

// Failed reports whether the expression produced an error.
func (e Entry) Failed() bool {
	return e.Err != ""
}

// Store is the interface for history persistence.
type Store interface {
	// Add appends e and sets its ID. A zero Ts is set to the current time.
	Add(e *Entry) error
	// Last returns up to n of the most recent entries, oldest first.
	Last(n int) ([]Entry, error)
	// Close releases resources.
	Close() error
}
