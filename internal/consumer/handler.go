package consumer

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"indexing-srv/config"
	"indexing-srv/internal/model"
	"indexing-srv/internal/outcome"
	outcomeProducer "indexing-srv/internal/outcome/delivery/kafka/producer"
	outcomePostgre "indexing-srv/internal/outcome/repository/postgre"
	outcomeUsecase "indexing-srv/internal/outcome/usecase"
	"indexing-srv/internal/propagation"
	propagationUsecase "indexing-srv/internal/propagation/usecase"
	"indexing-srv/internal/reindex"
	reindexConsumer "indexing-srv/internal/reindex/delivery/rabbitmq/consumer"
	reindexRedis "indexing-srv/internal/reindex/repository/redis"
	reindexUsecase "indexing-srv/internal/reindex/usecase"
	routingKafkaConsumer "indexing-srv/internal/routing/delivery/kafka/consumer"
	routingKafkaProducer "indexing-srv/internal/routing/delivery/kafka/producer"
	routingRabbitConsumer "indexing-srv/internal/routing/delivery/rabbitmq/consumer"
	routingRabbitProducer "indexing-srv/internal/routing/delivery/rabbitmq/producer"
	routingUsecase "indexing-srv/internal/routing/usecase"
	"indexing-srv/pkg/fcrepo"
	"indexing-srv/pkg/queue"
	pkgRabbitMQ "indexing-srv/pkg/rabbitmq"
	"indexing-srv/pkg/solr"
	"indexing-srv/pkg/sparql"
)

// eventConsumer is implemented by the RabbitMQ and Kafka change event consumers
type eventConsumer interface {
	Consume(ctx context.Context)
}

// pipeline holds the stages and consumers for startup and shutdown
type pipeline struct {
	outcomeUC     outcome.UseCase
	propagationUC propagation.UseCase
	reindexUC     reindex.UseCase

	deletes *queue.Queue[model.ResourceDescriptor]
	updates *queue.Queue[model.ResourceDescriptor]
	walks   *queue.Queue[reindex.WalkItem]

	events  eventConsumer
	reindex *reindexConsumer.Consumer
	kafka   *routingKafkaConsumer.Consumer
	retry   *cron.Cron

	cancelConsumers context.CancelFunc
	consumersDone   chan struct{}
}

// setupDomains initializes all domain layers (repositories, usecases, queues, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*pipeline, error) {
	cfg := srv.config
	p := &pipeline{}

	// Outcome domain
	events, err := srv.newEventPublisher()
	if err != nil {
		return nil, fmt.Errorf("failed to create event publisher: %w", err)
	}
	p.outcomeUC = outcomeUsecase.New(
		srv.l,
		outcomePostgre.New(srv.l, srv.postgresDB),
		outcomeProducer.New(srv.l, srv.outcomeProducer),
		events,
		outcome.Config{BufferSize: cfg.Outcome.BufferSize},
	)
	srv.l.Infof(ctx, "Outcome domain initialized")

	// Stage queues
	p.deletes = queue.New[model.ResourceDescriptor](srv.l, "delete", cfg.Indexing.QueueSize, cfg.Indexing.DeleteWorkers)
	p.updates = queue.New[model.ResourceDescriptor](srv.l, "update", cfg.Indexing.QueueSize, cfg.Indexing.UpdateWorkers)
	p.walks = queue.New[reindex.WalkItem](srv.l, "reindex", cfg.Indexing.QueueSize, cfg.Indexing.ReindexWorkers)

	// Propagation domain
	repository := fcrepo.NewFcrepo(fcrepo.Config{Timeout: cfg.Repository.Timeout, Retries: cfg.Repository.Retries})
	p.propagationUC = propagationUsecase.New(
		srv.l,
		repository,
		sparql.NewSparql(sparql.Config{Endpoint: cfg.Triplestore.BaseURL, Timeout: cfg.Triplestore.Timeout}),
		solr.NewSolr(solr.Config{
			BaseURL:      cfg.SearchIndex.BaseURL,
			CommitWithin: cfg.SearchIndex.CommitWithin,
			Timeout:      cfg.SearchIndex.Timeout,
		}),
		p.outcomeUC,
		propagation.Config{DefaultTransform: cfg.Indexing.DefaultTransform},
	)
	srv.l.Infof(ctx, "Propagation domain initialized")

	// Reindex domain
	p.reindexUC = reindexUsecase.New(
		srv.l,
		reindexRedis.New(srv.redisClient, srv.l, cfg.Walker.VisitedTTL),
		repository,
		nil,
		p.walks,
		p.updates,
		p.outcomeUC,
		reindex.Config{
			ReindexPrefix: cfg.API.ReindexPrefix,
			BaseURL:       cfg.Repository.BaseURL,
			MaxDepth:      cfg.Walker.MaxDepth,
			FetchRate:     cfg.Walker.FetchRate,
			FetchBurst:    cfg.Walker.FetchBurst,
			VisitedTTL:    cfg.Walker.VisitedTTL,
		},
	)
	p.reindex, err = reindexConsumer.New(reindexConsumer.Config{
		Logger:   srv.l,
		Conn:     srv.rabbitConn,
		UseCase:  p.reindexUC,
		Queue:    cfg.RabbitMQ.ReindexQueue,
		Prefetch: cfg.RabbitMQ.Prefetch,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reindex consumer: %w", err)
	}
	srv.l.Infof(ctx, "Reindex domain initialized")

	// Routing domain
	routingUC := routingUsecase.New(srv.l, p.deletes, p.updates, p.outcomeUC)
	if cfg.Event.Source == config.EventSourceKafka {
		p.kafka, err = routingKafkaConsumer.New(routingKafkaConsumer.Config{
			Logger:         srv.l,
			Group:          srv.eventGroup,
			UseCase:        routingUC,
			Topic:          cfg.Kafka.EventTopic,
			DefaultBaseURL: cfg.Repository.BaseURL,
		})
		p.events = p.kafka
	} else {
		p.events, err = routingRabbitConsumer.New(routingRabbitConsumer.Config{
			Logger:         srv.l,
			Conn:           srv.rabbitConn,
			UseCase:        routingUC,
			Exchange:       cfg.RabbitMQ.EventExchange,
			Queue:          cfg.RabbitMQ.EventQueue,
			Prefetch:       cfg.RabbitMQ.Prefetch,
			DefaultBaseURL: cfg.Repository.BaseURL,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create event consumer: %w", err)
	}
	srv.l.Infof(ctx, "Routing domain initialized (source: %s)", cfg.Event.Source)

	// Scheduled failure retries
	if cfg.Outcome.RetrySchedule != "" {
		p.retry = newRetryCron(srv.l)
		if _, err := p.retry.AddFunc(cfg.Outcome.RetrySchedule, func() {
			srv.retryFailed(p.outcomeUC)
		}); err != nil {
			return nil, fmt.Errorf("failed to schedule failure retries: %w", err)
		}
	}

	return p, nil
}

// newEventPublisher returns the publisher failures are retried through,
// matching the configured event source.
func (srv *ConsumerServer) newEventPublisher() (outcome.EventPublisher, error) {
	if srv.config.Event.Source == config.EventSourceKafka {
		return routingKafkaProducer.New(srv.l, srv.eventProducer), nil
	}

	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return nil, err
	}
	return routingRabbitProducer.New(srv.l, ch, srv.config.RabbitMQ.EventExchange, srv.config.RabbitMQ.EventQueue), nil
}

func (srv *ConsumerServer) retryFailed(uc outcome.UseCase) {
	ctx := context.Background()
	out, err := uc.RetryFailed(ctx, outcome.RetryFailedInput{Limit: srv.config.Outcome.RetryBatch})
	if err != nil {
		srv.l.Errorf(ctx, "consumer.retryFailed: %v", err)
		return
	}
	if out.TotalRetried > 0 {
		srv.l.Infof(ctx, "consumer.retryFailed: retried %d failures, republished %d, failed %d",
			out.TotalRetried, out.Republished, out.Failed)
	}
}

// startPipeline starts the outcome sink and the stage workers. Workers run
// with a background context; in-flight work is never cancelled.
func (srv *ConsumerServer) startPipeline(ctx context.Context, p *pipeline) {
	workerCtx := context.WithoutCancel(ctx)

	p.outcomeUC.Start(workerCtx)
	p.deletes.Start(workerCtx, func(ctx context.Context, d model.ResourceDescriptor) {
		p.propagationUC.Delete(ctx, d)
	})
	p.updates.Start(workerCtx, func(ctx context.Context, d model.ResourceDescriptor) {
		p.propagationUC.Update(ctx, d)
	})
	p.walks.Start(workerCtx, p.reindexUC.Visit)

	if p.retry != nil {
		p.retry.Start()
		srv.l.Infof(ctx, "Failure retries scheduled: %s", srv.config.Outcome.RetrySchedule)
	}
}

// startConsumers starts the event and reindex consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, p *pipeline) error {
	consumerCtx, cancel := context.WithCancel(ctx)
	p.cancelConsumers = cancel
	p.consumersDone = make(chan struct{})

	if err := srv.declareEventTopology(); err != nil {
		cancel()
		close(p.consumersDone)
		return err
	}

	done := make(chan struct{}, 2)
	go func() {
		p.events.Consume(consumerCtx)
		done <- struct{}{}
	}()
	go func() {
		p.reindex.Consume(consumerCtx)
		done <- struct{}{}
	}()
	go func() {
		<-done
		<-done
		close(p.consumersDone)
	}()

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// declareEventTopology makes sure the retry publisher has an exchange to publish to.
func (srv *ConsumerServer) declareEventTopology() error {
	if srv.config.Event.Source != config.EventSourceRabbitMQ || srv.config.RabbitMQ.EventExchange == "" {
		return nil
	}
	ch, err := srv.rabbitConn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return ch.ExchangeDeclare(pkgRabbitMQ.ExchangeArgs{
		Name:    srv.config.RabbitMQ.EventExchange,
		Type:    pkgRabbitMQ.ExchangeTypeTopic,
		Durable: true,
	})
}

// stopConsumers stops consuming and waits for in-flight deliveries to be dispatched
func (srv *ConsumerServer) stopConsumers(ctx context.Context, p *pipeline) {
	if p.cancelConsumers != nil {
		p.cancelConsumers()
		<-p.consumersDone
	}

	if p.kafka != nil {
		if err := p.kafka.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing event consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}

// stopPipeline drains the stages in dependency order: walks feed updates,
// every stage feeds the outcome sink.
func (srv *ConsumerServer) stopPipeline(ctx context.Context, p *pipeline) {
	if p.retry != nil {
		<-p.retry.Stop().Done()
	}

	p.walks.Stop()
	p.updates.Stop()
	p.deletes.Stop()
	p.outcomeUC.Stop()

	srv.l.Infof(ctx, "Pipeline drained")
}
