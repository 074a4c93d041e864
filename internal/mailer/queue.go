package mailer

import (
	"context"
	"fmt"
)

// Enqueuer hands a message to an asynchronous transport.
type Enqueuer interface {
	SendMailMessage(ctx context.Context, msg Message) error
}

// QueueSender implements Sender by publishing to a queue drained by the mail
// worker. Send returns once the message is accepted by the queue.
type QueueSender struct {
	queue Enqueuer
}

func NewQueueSender(queue Enqueuer) *QueueSender {
	return &QueueSender{queue: queue}
}

func (s *QueueSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := s.queue.SendMailMessage(ctx, msg); err != nil {
		return fmt.Errorf("failed to enqueue email: %w", err)
	}
	return nil
}
