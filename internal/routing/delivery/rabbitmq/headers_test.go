package rabbitmq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"

	"indexing-srv/internal/model"
)

func TestToChangeEvent(t *testing.T) {
	tcs := map[string]struct {
		headers amqp.Table
		want    model.ChangeEvent
	}{
		"namespaced removal": {
			headers: amqp.Table{
				HeaderIdentifier: "/objects/42",
				HeaderEventType:  RepositoryNamespace + "NODE_REMOVED",
				HeaderBaseURL:    "http://localhost:8080/rest/",
				"JMSXGroupID":    "ignored",
			},
			want: model.ChangeEvent{
				Identifier: "/objects/42",
				EventType:  model.EventTypeNodeRemoved,
				BaseURL:    "http://localhost:8080/rest",
			},
		},
		"bytes and default base url": {
			headers: amqp.Table{
				HeaderIdentifier: []byte("/objects/7"),
				HeaderEventType:  []byte("NODE_ADDED"),
			},
			want: model.ChangeEvent{
				Identifier: "/objects/7",
				EventType:  "NODE_ADDED",
				BaseURL:    "http://repo/rest",
			},
		},
		"no headers": {
			headers: amqp.Table{HeaderIdentifier: int32(5)},
			want:    model.ChangeEvent{BaseURL: "http://repo/rest"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToChangeEvent(tc.headers, "http://repo/rest"))
		})
	}
}

func TestHeadersRoundTrip(t *testing.T) {
	ev := model.ChangeEvent{Identifier: "/objects/42", EventType: "NODE_REMOVED", BaseURL: "http://localhost:8080/rest"}

	got := ToChangeEvent(ToHeaders(ev), "")

	assert.Equal(t, ev, got)
	assert.True(t, got.IsDelete())
}
