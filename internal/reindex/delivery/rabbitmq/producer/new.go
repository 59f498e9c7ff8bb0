package producer

import (
	"indexing-srv/internal/reindex"
	"indexing-srv/pkg/log"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

// Producer publishes walk requests
type Producer interface {
	reindex.Publisher
}

// implProducer implements the Producer interface
type implProducer struct {
	l     log.Logger
	ch    pkgRabbitMQ.IChannel
	queue string
}

// New creates a new reindex producer publishing to queue through the default exchange
func New(l log.Logger, ch pkgRabbitMQ.IChannel, queue string) Producer {
	return &implProducer{
		l:     l,
		ch:    ch,
		queue: queue,
	}
}
