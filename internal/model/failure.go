package model

import "time"

// PropagationFailure is a persisted failed branch awaiting retry.
type PropagationFailure struct {
	ID           string    `json:"id"`
	Route        string    `json:"route"`
	Branch       string    `json:"branch"`
	Identifier   string    `json:"identifier"`
	BaseURL      string    `json:"base_url"`
	EventType    string    `json:"event_type"`
	ErrorMessage string    `json:"error_message"`
	RetryCount   int       `json:"retry_count"`
	Resolved     bool      `json:"resolved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ChangeEvent rebuilds the event that produced the failure.
func (f PropagationFailure) ChangeEvent() ChangeEvent {
	return ChangeEvent{
		Identifier: f.Identifier,
		EventType:  f.EventType,
		BaseURL:    f.BaseURL,
	}
}
