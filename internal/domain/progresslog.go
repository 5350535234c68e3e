package domain

import "time"

// ProgressLog is one reality-testing feedback entry. Logs are append-only:
// the system never mutates or deletes them, and they reference their target
// by name rather than id so they survive the target being abandoned.
type ProgressLog struct {
	ID         string
	UserID     string
	TargetName string
	Body       string
	LoggedAt   time.Time
}
