package kafka

import (
	"strings"

	"indexing-srv/internal/model"
)

// RepositoryNamespace qualifies event types on the wire.
const RepositoryNamespace = "http://fedora.info/definitions/v4/repository#"

// EventMessage - Kafka message for repository change events
type EventMessage struct {
	Identifier string `json:"identifier"`
	EventType  string `json:"event_type"`
	BaseURL    string `json:"base_url"`
}

// ToChangeEvent maps the message to a change event. Namespaced event types
// are reduced to their local name.
func (m EventMessage) ToChangeEvent(defaultBaseURL string) model.ChangeEvent {
	ev := model.ChangeEvent{
		Identifier: strings.TrimSpace(m.Identifier),
		EventType:  strings.ReplaceAll(strings.TrimSpace(m.EventType), RepositoryNamespace, ""),
		BaseURL:    strings.TrimSuffix(strings.TrimSpace(m.BaseURL), "/"),
	}
	if ev.BaseURL == "" {
		ev.BaseURL = defaultBaseURL
	}
	return ev
}

// NewEventMessage builds the message for ev.
func NewEventMessage(ev model.ChangeEvent) EventMessage {
	return EventMessage{
		Identifier: ev.Identifier,
		EventType:  ev.EventType,
		BaseURL:    ev.BaseURL,
	}
}
