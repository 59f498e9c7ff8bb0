package rabbitmq

import (
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"indexing-srv/internal/model"
)

// ToChangeEvent reads a change event from message headers. Namespaced event
// types are reduced to their local name. Other headers are ignored.
func ToChangeEvent(headers amqp.Table, defaultBaseURL string) model.ChangeEvent {
	ev := model.ChangeEvent{
		Identifier: headerString(headers, HeaderIdentifier),
		EventType:  strings.ReplaceAll(headerString(headers, HeaderEventType), RepositoryNamespace, ""),
		BaseURL:    strings.TrimSuffix(headerString(headers, HeaderBaseURL), "/"),
	}
	if ev.BaseURL == "" {
		ev.BaseURL = defaultBaseURL
	}
	return ev
}

// ToHeaders writes ev as message headers.
func ToHeaders(ev model.ChangeEvent) amqp.Table {
	return amqp.Table{
		HeaderIdentifier: ev.Identifier,
		HeaderEventType:  ev.EventType,
		HeaderBaseURL:    ev.BaseURL,
	}
}

func headerString(headers amqp.Table, key string) string {
	switch v := headers[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	default:
		return ""
	}
}
