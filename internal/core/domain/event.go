package domain

import "time"

// Event is a single matching entry from the platform event log. The
// critical-event check is an existence check and only ever needs the first
// match.
type Event struct {
	ID       int
	Level    int
	Message  string
	LoggedAt time.Time
}
