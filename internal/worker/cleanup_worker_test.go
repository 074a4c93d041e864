package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/repository/memory"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

type CleanupWorkerTestSuite struct {
	suite.Suite
	repo   *memory.Repository
	worker *CleanupWorker
	now    time.Time
}

func (s *CleanupWorkerTestSuite) SetupTest() {
	s.repo = memory.NewRepository()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.worker = NewCleanupWorker(s.repo, &logger.Logger{Logger: zap.NewNop()}, time.Hour)
	s.worker.now = func() time.Time { return s.now }
}

func TestCleanupWorker(t *testing.T) {
	suite.Run(t, new(CleanupWorkerTestSuite))
}

func (s *CleanupWorkerTestSuite) TestSweep_RemovesOnlyExpiredTokens() {
	// Arrange
	ctx := context.Background()
	s.Require().NoError(s.repo.PasswordResetToken().Create(ctx, &domain.PasswordResetToken{Token: "old-reset", UserID: "u1", ExpiryDate: s.now.Add(-time.Minute)}))
	s.Require().NoError(s.repo.PasswordResetToken().Create(ctx, &domain.PasswordResetToken{Token: "live-reset", UserID: "u1", ExpiryDate: s.now.Add(time.Minute)}))
	s.Require().NoError(s.repo.EmailVerificationToken().Create(ctx, &domain.EmailVerificationToken{Token: "old-verify", UserID: "u2", ExpiryDate: s.now}))
	s.Require().NoError(s.repo.EmailVerificationToken().Create(ctx, &domain.EmailVerificationToken{Token: "live-verify", UserID: "u2", ExpiryDate: s.now.Add(time.Hour)}))

	// Act
	removed, err := s.worker.sweep(ctx)

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(2), removed)

	_, err = s.repo.PasswordResetToken().GetByToken(ctx, "old-reset")
	s.Error(err)
	_, err = s.repo.EmailVerificationToken().GetByToken(ctx, "old-verify")
	s.Error(err)

	_, err = s.repo.PasswordResetToken().GetByToken(ctx, "live-reset")
	s.NoError(err)
	_, err = s.repo.EmailVerificationToken().GetByToken(ctx, "live-verify")
	s.NoError(err)
}

func (s *CleanupWorkerTestSuite) TestSweep_NothingToRemove() {
	// Act
	removed, err := s.worker.sweep(context.Background())

	// Assert
	s.NoError(err)
	s.Zero(removed)
}

func (s *CleanupWorkerTestSuite) TestStartStop() {
	// Arrange
	s.worker = NewCleanupWorker(s.repo, &logger.Logger{Logger: zap.NewNop()}, 10*time.Millisecond)

	// Act
	s.worker.Start()
	time.Sleep(30 * time.Millisecond)

	// Assert
	s.NotPanics(s.worker.Stop)
}
