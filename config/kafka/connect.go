package kafka

import (
	"errors"
	"fmt"
	"sync"

	"github.com/IBM/sarama"

	"indexing-srv/config"
	"indexing-srv/pkg/kafka"
)

var (
	instance kafka.IProducer
	once     sync.Once
	mu       sync.RWMutex
	initErr  error

	consumerInstance kafka.IConsumer
	consumerOnce     sync.Once
	consumerMu       sync.RWMutex
	consumerInitErr  error

	eventInstance kafka.IProducer
	eventMu       sync.Mutex
)

// Connect initializes the outcome producer using singleton pattern.
func Connect(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := kafka.NewProducer(kafka.Config{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Kafka producer: %w", e)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// ConnectConsumer initializes the change event consumer group using singleton pattern.
func ConnectConsumer(cfg config.KafkaConfig) (kafka.IConsumer, error) {
	consumerMu.Lock()
	defer consumerMu.Unlock()

	if consumerInstance != nil {
		return consumerInstance, nil
	}

	if consumerInitErr != nil {
		consumerOnce = sync.Once{}
		consumerInitErr = nil
	}

	var err error
	consumerOnce.Do(func() {
		client, e := kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Kafka consumer: %w", e)
			consumerInitErr = err
			return
		}

		consumerInstance = client
	})

	return consumerInstance, err
}

// ConnectEventProducer initializes the producer republishing change events onto
// the event topic.
func ConnectEventProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	eventMu.Lock()
	defer eventMu.Unlock()

	if eventInstance != nil {
		return eventInstance, nil
	}

	client, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.EventTopic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka event producer: %w", err)
	}

	eventInstance = client
	return eventInstance, nil
}

// HealthCheck checks if the producer is initialized
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return instance.HealthCheck()
}

// Disconnect closes the producers and the consumer group
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()
	consumerMu.Lock()
	defer consumerMu.Unlock()
	eventMu.Lock()
	defer eventMu.Unlock()

	if eventInstance != nil {
		if err := eventInstance.Close(); err != nil {
			return err
		}
		eventInstance = nil
	}

	if consumerInstance != nil {
		// the consumer server may already have closed the group
		if err := consumerInstance.Close(); err != nil && !errors.Is(err, sarama.ErrClosedConsumerGroup) {
			return err
		}
		consumerInstance = nil
		consumerOnce = sync.Once{}
		consumerInitErr = nil
	}

	if instance != nil {
		if err := instance.Close(); err != nil {
			return err
		}
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
	return nil
}
