package domain

import "time"

// ChatMessage is one entry of a per-mode transcript. Every completed
// exchange appends two messages: the human prompt and the assistant's raw
// response. Transcripts are never truncated.
type ChatMessage struct {
	ID        string
	UserID    string
	Mode      Mode
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}
