package rabbitmq

import (
	"fmt"
	"sync"

	"indexing-srv/config"
	"indexing-srv/pkg/log"
	"indexing-srv/pkg/rabbitmq"
)

var (
	instance rabbitmq.IRabbitMQ
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the RabbitMQ connection using singleton pattern.
// The connection reconnects on its own after a drop.
func Connect(l log.Logger, cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
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
		conn, e := rabbitmq.NewRabbitMQ(l, cfg.URL, false)
		if e != nil {
			err = fmt.Errorf("failed to connect to RabbitMQ: %w", e)
			initErr = err
			return
		}
		instance = conn
	})

	return instance, err
}

// GetClient returns the singleton RabbitMQ connection.
func GetClient() rabbitmq.IRabbitMQ {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("RabbitMQ not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck reports whether the connection is up.
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("RabbitMQ not initialized")
	}
	if !instance.IsReady() {
		return fmt.Errorf("RabbitMQ connection is not ready")
	}
	return nil
}

// Disconnect closes the RabbitMQ connection
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
}
