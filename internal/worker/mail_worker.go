package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/mailer"
	"github.com/kingrain94/business-feed-api/internal/service/queue"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// errPoison marks a message that can never be delivered and is dropped.
var errPoison = errors.New("undeliverable message")

type MailQueue interface {
	MailQueueURL() string
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// MailWorker drains the mail queue into a synchronous Sender.
type MailWorker struct {
	queue        MailQueue
	sender       mailer.Sender
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewMailWorker(
	queue MailQueue,
	sender mailer.Sender,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *MailWorker {
	return &MailWorker{
		queue:        queue,
		sender:       sender,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (w *MailWorker) Start() {
	w.logger.Info("Starting mail workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *MailWorker) Stop() {
	w.logger.Info("Stopping mail workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All mail workers stopped")
}

func (w *MailWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Mail worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Mail worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Mail worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *MailWorker) processMessages(ctx context.Context) error {
	queueURL := w.queue.MailQueueURL()

	messages, err := w.queue.ReceiveMessages(ctx, queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		err := w.processMessage(ctx, msg.Message)
		switch {
		case errors.Is(err, errPoison):
			w.logger.Warn("Dropping undeliverable mail message", zap.Error(err))
		case err != nil:
			// Left on the queue; SQS redelivers after the visibility timeout.
			w.logger.Error("Failed to deliver mail message", err, zap.String("email", msg.Message.Mail.To))
			continue
		}

		if err := w.queue.DeleteMessage(ctx, queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *MailWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeMail {
		return fmt.Errorf("%w: unknown message type %q", errPoison, msg.Type)
	}
	if err := msg.Mail.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errPoison, err)
	}

	w.logger.Info("Delivering mail message",
		zap.String("type", string(msg.Mail.Type)),
		zap.String("email", msg.Mail.To),
	)
	return w.sender.Send(ctx, msg.Mail)
}
