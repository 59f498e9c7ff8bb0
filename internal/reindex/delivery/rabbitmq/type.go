package rabbitmq

import (
	"indexing-srv/internal/model"
	"indexing-srv/internal/reindex"
)

// ReindexMessage - RabbitMQ message for the reindex queue
type ReindexMessage struct {
	WalkID     string `json:"walk_id"`
	Identifier string `json:"identifier"`
	BaseURL    string `json:"base_url"`
}

// NewReindexMessage builds the message for a walk root.
func NewReindexMessage(item reindex.WalkItem) ReindexMessage {
	return ReindexMessage{
		WalkID:     item.WalkID,
		Identifier: item.Descriptor.Identifier,
		BaseURL:    item.Descriptor.BaseURL,
	}
}

// ToWalkItem maps the message to the walk root.
func (m ReindexMessage) ToWalkItem() reindex.WalkItem {
	return reindex.WalkItem{
		WalkID:     m.WalkID,
		Descriptor: model.ResourceDescriptor{Identifier: m.Identifier, BaseURL: m.BaseURL},
	}
}
