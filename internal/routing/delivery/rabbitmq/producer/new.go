package producer

import (
	"indexing-srv/internal/outcome"
	"indexing-srv/pkg/log"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
)

// Producer republishes change events onto the event exchange
type Producer interface {
	outcome.EventPublisher
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	ch       pkgRabbitMQ.IChannel
	exchange string
	queue    string
}

// New creates a new event producer. Events go to exchange, or straight to
// queue through the default exchange when exchange is empty.
func New(l log.Logger, ch pkgRabbitMQ.IChannel, exchange, queue string) Producer {
	return &implProducer{
		l:        l,
		ch:       ch,
		exchange: exchange,
		queue:    queue,
	}
}
