package consumer

import (
	"context"

	"github.com/robfig/cron/v3"

	"indexing-srv/pkg/log"
)

// cronLogger routes scheduler logs through the service logger.
type cronLogger struct {
	l log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debugf(context.Background(), "consumer.cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Errorf(context.Background(), "consumer.cron: %s %v: %v", msg, keysAndValues, err)
}

// newRetryCron creates the scheduler for failure retries. A run still in
// progress makes the next tick a no-op, so one batch is republished at a time.
func newRetryCron(l log.Logger) *cron.Cron {
	logger := cronLogger{l: l}
	return cron.New(
		cron.WithLogger(logger),
		cron.WithChain(retryJobWrappers(logger)...),
	)
}

func retryJobWrappers(logger cron.Logger) []cron.JobWrapper {
	return []cron.JobWrapper{
		cron.Recover(logger),
		cron.SkipIfStillRunning(logger),
	}
}
