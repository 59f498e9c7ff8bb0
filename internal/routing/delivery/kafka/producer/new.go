package producer

import (
	"indexing-srv/internal/outcome"
	pkgKafka "indexing-srv/pkg/kafka"
	"indexing-srv/pkg/log"
)

// Producer republishes change events onto the event topic
type Producer interface {
	outcome.EventPublisher
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new event producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
