package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/repository"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// CleanupWorker periodically purges expired password-reset and
// email-verification tokens. Expired tokens are already rejected on use, so
// a missed sweep only delays reclaiming rows.
type CleanupWorker struct {
	repository   repository.Repository
	logger       *logger.Logger
	interval     time.Duration
	now          func() time.Time
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewCleanupWorker(repository repository.Repository, logger *logger.Logger, interval time.Duration) *CleanupWorker {
	return &CleanupWorker{
		repository:   repository,
		logger:       logger,
		interval:     interval,
		now:          time.Now,
		shutdownChan: make(chan struct{}),
	}
}

func (w *CleanupWorker) Start() {
	w.logger.Info("Starting token cleanup worker...")

	w.waitGroup.Add(1)
	go w.run()
}

func (w *CleanupWorker) Stop() {
	w.logger.Info("Stopping token cleanup worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("Token cleanup worker stopped")
}

func (w *CleanupWorker) run() {
	defer w.waitGroup.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			return
		case <-ticker.C:
			if _, err := w.sweep(context.Background()); err != nil {
				w.logger.Error("Token cleanup failed", err)
			}
		}
	}
}

// sweep deletes both token kinds and returns the total removed. A failure on
// the first kind does not skip the second.
func (w *CleanupWorker) sweep(ctx context.Context) (int64, error) {
	now := w.now().UTC()

	resets, resetErr := w.repository.PasswordResetToken().DeleteExpired(ctx, now)
	verifications, verifyErr := w.repository.EmailVerificationToken().DeleteExpired(ctx, now)

	if resets+verifications > 0 {
		w.logger.Info("Purged expired tokens",
			zap.Int64("password_reset", resets),
			zap.Int64("email_verification", verifications),
		)
	}

	switch {
	case resetErr != nil:
		return resets + verifications, fmt.Errorf("failed to purge password reset tokens: %w", resetErr)
	case verifyErr != nil:
		return resets + verifications, fmt.Errorf("failed to purge verification tokens: %w", verifyErr)
	}
	return resets + verifications, nil
}
