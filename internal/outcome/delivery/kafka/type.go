package kafka

import "time"

// TopicOutcomes carries every stage result.
const TopicOutcomes = "indexing.outcomes"

// OutcomeMessage - Kafka message for indexing.outcomes
type OutcomeMessage struct {
	Route      string    `json:"route"`
	Branch     string    `json:"branch"`
	Identifier string    `json:"identifier"`
	BaseURL    string    `json:"base_url"`
	URI        string    `json:"uri"`
	EventType  string    `json:"event_type,omitempty"`
	Status     string    `json:"status"` // ok, failed
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)
