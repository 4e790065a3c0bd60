package models

import "time"

type SessionStatus string

const (
	SessionIdle    SessionStatus = "idle"
	SessionActive  SessionStatus = "active"
	SessionStopped SessionStatus = "stopped"
)

// ShareSession is a time-bounded live-location sharing session. At most one
// session is active per daemon instance.
type ShareSession struct {
	ID        string        `json:"id,omitempty"`
	StartedAt time.Time     `json:"started_at,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Status    SessionStatus `json:"status"`
}

func (s ShareSession) ExpiresAt() time.Time {
	return s.StartedAt.Add(s.Duration)
}
