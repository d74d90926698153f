package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pcapi/internal/pkg/clock"
	"pcapi/internal/pkg/config"
	"pcapi/internal/pkg/errs"
	"pcapi/internal/usecase/shared"
)

const jobKindEvent = "event"

// Publisher delivers an outbox job to the message broker.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte, messageID string) error
}

type RelayResult struct {
	Claimed int
	Sent    int
	Retried int
	Failed  int
}

type OutboxCommands interface {
	RelayPendingJobs(ctx context.Context) (*RelayResult, error)
}

type outboxCommandsImpl struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
}

func NewOutboxCommands(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.RabbitMQConfig) OutboxCommands {
	return &outboxCommandsImpl{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
	}
}

// RelayPendingJobs publishes one batch of due jobs. Rows stay locked until the
// batch is done so concurrent relays pick different jobs.
func (uc *outboxCommandsImpl) RelayPendingJobs(ctx context.Context) (*RelayResult, error) {
	result := &RelayResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = RelayResult{}

		jobs, err := tx.Notifications().ClaimPending(ctx, tx.DB(), uc.batchSize)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result.Claimed = len(jobs)

		for _, job := range jobs {
			pubErr := uc.publisher.Publish(ctx, job.Topic, job.Payload, job.ID.String())
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
				result.Sent++
				continue
			}

			slog.Warn("failed to publish outbox job",
				"job_id", job.ID,
				"topic", job.Topic,
				"attempts", job.Attempts+1,
				"error", pubErr.Error())

			failed, err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), uc.maxAttempts, uc.nextRunAt(job.Attempts))
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if failed {
				result.Failed++
			} else {
				result.Retried++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *outboxCommandsImpl) nextRunAt(attempts int32) time.Time {
	return uc.clock.Now().Add(time.Duration(1<<attempts) * time.Minute)
}

// enqueueEvent writes the event in the caller's transaction; it is published
// by the relay once committed.
func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, payload any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode outbox payload")
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), jobKindEvent, topic, body, now); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
