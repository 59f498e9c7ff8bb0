package producer

import (
	"indexing-srv/internal/outcome"
	pkgKafka "indexing-srv/pkg/kafka"
	"indexing-srv/pkg/log"
)

// Producer interface for outcome domain
type Producer interface {
	outcome.Publisher
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new outcome producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
