package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/media"
	"github.com/kingrain94/business-feed-api/internal/policy"
	"github.com/kingrain94/business-feed-api/internal/repository"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// StoreOptions selects the upload path a file goes through.
type StoreOptions struct {
	RequireImage bool
	Public       bool
}

// FileContent is an open blob plus the metadata it is served with. The
// caller must close Body.
type FileContent struct {
	Metadata *domain.FileMetadata
	Body     io.ReadCloser
	Size     int64
}

type FileService struct {
	repo   repository.Repository
	blobs  media.BlobStore
	logger *logger.Logger
	now    func() time.Time
}

func NewFileService(repo repository.Repository, blobs media.BlobStore, logger *logger.Logger) *FileService {
	return &FileService{
		repo:   repo,
		blobs:  blobs,
		logger: logger,
		now:    time.Now,
	}
}

// Store sniffs, transcodes and writes upload, then records its metadata.
// A metadata failure removes the blob again so rows and blobs stay paired.
func (s *FileService) Store(ctx context.Context, uploaderID, businessID string, upload dto.FileUpload, opts StoreOptions) (*domain.FileMetadata, error) {
	processed, err := s.Prepare(upload, opts)
	if err != nil {
		return nil, err
	}
	return s.StorePrepared(ctx, uploaderID, businessID, processed, opts)
}

// Prepare sniffs and transcodes upload without writing anything.
func (s *FileService) Prepare(upload dto.FileUpload, opts StoreOptions) (*media.Processed, error) {
	processed, err := media.Process(upload.Filename, upload.Data, opts.RequireImage)
	if err != nil {
		return nil, mediaError(err)
	}
	return processed, nil
}

func (s *FileService) StorePrepared(ctx context.Context, uploaderID, businessID string, processed *media.Processed, opts StoreOptions) (*domain.FileMetadata, error) {
	if err := s.blobs.Put(ctx, processed.StoredFilename, processed.Data, processed.MimeType); err != nil {
		return nil, upstream("Failed to store file.", err)
	}

	metadata := &domain.FileMetadata{
		OriginalFilename: processed.OriginalFilename,
		StoredFilename:   processed.StoredFilename,
		FileHash:         processed.Hash,
		MimeType:         processed.MimeType,
		FileSize:         int64(len(processed.Data)),
		UploadedBy:       uploaderID,
		BusinessID:       businessID,
		UploadDate:       s.now().UTC(),
		FileType:         processed.FileType,
		Status:           domain.FileStatusActive,
		PublicAccess:     opts.Public,
	}

	created, err := s.repo.File().Create(ctx, metadata)
	if err != nil {
		if delErr := s.blobs.Delete(ctx, processed.StoredFilename); delErr != nil {
			s.logger.Warn("Failed to remove orphaned blob",
				zap.String("stored_filename", processed.StoredFilename),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("failed to save file metadata: %w", err)
	}

	s.logger.Info("File stored",
		zap.String("stored_filename", created.StoredFilename),
		zap.String("mime_type", created.MimeType),
		zap.Int64("size", created.FileSize),
		zap.Bool("public", created.PublicAccess),
	)
	return created, nil
}

// UploadImage is the private image upload bound to the caller's business.
func (s *FileService) UploadImage(ctx context.Context, caller *domain.User, upload dto.FileUpload) (*domain.FileMetadata, error) {
	return s.Store(ctx, caller.ID, caller.BusinessID, upload, StoreOptions{RequireImage: true})
}

func (s *FileService) Metadata(ctx context.Context, caller *domain.User, storedFilename string) (*domain.FileMetadata, error) {
	metadata, err := s.activeMetadata(ctx, storedFilename)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAccessFile(caller, metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

func (s *FileService) PublicMetadata(ctx context.Context, storedFilename string) (*domain.FileMetadata, error) {
	metadata, err := s.activeMetadata(ctx, storedFilename)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAccessPublicFile(metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

func (s *FileService) Get(ctx context.Context, caller *domain.User, storedFilename string) (*FileContent, error) {
	metadata, err := s.Metadata(ctx, caller, storedFilename)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, metadata)
}

func (s *FileService) GetPublic(ctx context.Context, storedFilename string) (*FileContent, error) {
	metadata, err := s.PublicMetadata(ctx, storedFilename)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, metadata)
}

func (s *FileService) List(ctx context.Context, caller *domain.User) ([]domain.FileMetadata, error) {
	if !caller.HasTenant() {
		return []domain.FileMetadata{}, nil
	}
	return s.repo.File().ListActiveByBusiness(ctx, caller.BusinessID)
}

// Delete flips the status to DELETED; the blob is kept.
func (s *FileService) Delete(ctx context.Context, caller *domain.User, storedFilename string) error {
	metadata, err := s.Metadata(ctx, caller, storedFilename)
	if err != nil {
		return err
	}
	metadata.Status = domain.FileStatusDeleted
	return s.repo.File().Update(ctx, metadata)
}

func (s *FileService) activeMetadata(ctx context.Context, storedFilename string) (*domain.FileMetadata, error) {
	metadata, err := s.repo.File().GetByStoredFilename(ctx, storedFilename)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	if !metadata.IsActive() {
		return nil, ErrFileNotFound
	}
	return metadata, nil
}

func (s *FileService) open(ctx context.Context, metadata *domain.FileMetadata) (*FileContent, error) {
	body, size, err := s.blobs.Open(ctx, metadata.StoredFilename)
	if errors.Is(err, media.ErrBlobNotFound) {
		s.logger.Warn("Metadata points at a missing blob", zap.String("stored_filename", metadata.StoredFilename))
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, upstream("Failed to read file.", err)
	}
	return &FileContent{Metadata: metadata, Body: body, Size: size}, nil
}

// mediaRejections are client faults; their text is returned without the
// decoder detail wrapped after it.
var mediaRejections = []error{media.ErrNotImage, media.ErrEmptyFile, media.ErrImageTooBig, media.ErrCorruptImage}

func mediaError(err error) error {
	for _, sentinel := range mediaRejections {
		if errors.Is(err, sentinel) {
			return invalid("%s", sentinel.Error())
		}
	}
	return upstream("Failed to process file.", err)
}
