package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Repository:  RepositoryConfig{BaseURL: "http://localhost:8080/rest"},
		Triplestore: TriplestoreConfig{BaseURL: "http://localhost:3030/update"},
		SearchIndex: SearchIndexConfig{BaseURL: "http://localhost:8983/solr/core"},
		Indexing:    IndexingConfig{DefaultTransform: "default"},
		API:         APIConfig{ReindexPrefix: "/reindex"},
		Event:       EventConfig{Source: EventSourceRabbitMQ},
		RabbitMQ:    RabbitMQConfig{URL: "amqp://localhost", EventQueue: "events", ReindexQueue: "reindex"},
		Kafka:       KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "indexing.outcomes"},
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validate(validConfig()))

	t.Run("missing base url", func(t *testing.T) {
		cfg := validConfig()
		cfg.Repository.BaseURL = ""
		assert.EqualError(t, validate(cfg), "repository.base_url is required")
	})

	t.Run("missing brokers", func(t *testing.T) {
		cfg := validConfig()
		cfg.Kafka.Brokers = nil
		assert.Error(t, validate(cfg))
	})

	t.Run("unknown event source", func(t *testing.T) {
		cfg := validConfig()
		cfg.Event.Source = "jms"
		assert.Error(t, validate(cfg))
	})

	t.Run("kafka source needs topic and group", func(t *testing.T) {
		cfg := validConfig()
		cfg.Event.Source = EventSourceKafka
		assert.Error(t, validate(cfg))

		cfg.Kafka.EventTopic = "repository.events"
		cfg.Kafka.GroupID = "indexing-srv"
		assert.NoError(t, validate(cfg))
	})
}

func TestValidateRetrySchedule(t *testing.T) {
	cfg := validConfig()
	cfg.Outcome.RetrySchedule = "@every 15m"
	assert.NoError(t, validate(cfg))

	cfg.Outcome.RetrySchedule = "*/5 * * * *"
	assert.NoError(t, validate(cfg))

	cfg.Outcome.RetrySchedule = "every so often"
	assert.Error(t, validate(cfg))
}
