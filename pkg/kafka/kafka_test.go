package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProducerConfig(t *testing.T) {
	assert.Error(t, validateProducerConfig(Config{Topic: "t"}))
	assert.Error(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}}))
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"localhost:9092"}, Topic: "t"}))
}

func TestValidateConsumerConfig(t *testing.T) {
	assert.Error(t, validateConsumerConfig(ConsumerConfig{GroupID: "g"}))
	assert.Error(t, validateConsumerConfig(ConsumerConfig{Brokers: []string{"localhost:9092"}}))
	assert.NoError(t, validateConsumerConfig(ConsumerConfig{Brokers: []string{"localhost:9092"}, GroupID: "g"}))
}
