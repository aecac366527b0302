package domain

import "time"

// NotificationEvent is published for every notification created for a user
type NotificationEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	CoinID    string    `json:"coin_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// JobCompletedEvent is published when a job run finishes, successfully or not
type JobCompletedEvent struct {
	RunID       string    `json:"run_id"`
	Job         JobName   `json:"job"`
	LockKey     string    `json:"lock_key"`
	TriggeredBy string    `json:"triggered_by"`
	Succeeded   bool      `json:"succeeded"`
	Stats       SyncStats `json:"stats"`
	Error       string    `json:"error,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}
