package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/policy"
	"github.com/kingrain94/business-feed-api/internal/repository"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PostView is a post as seen by one caller.
type PostView struct {
	Post    domain.Post
	IsLiked bool
}

type PostService struct {
	repo   repository.Repository
	files  *FileService
	logger *logger.Logger
	now    func() time.Time
}

func NewPostService(repo repository.Repository, files *FileService, logger *logger.Logger) *PostService {
	return &PostService{
		repo:   repo,
		files:  files,
		logger: logger,
		now:    time.Now,
	}
}

func (s *PostService) Create(ctx context.Context, caller *domain.User, req dto.CreatePostRequest, image *dto.FileUpload) (*domain.Post, error) {
	if err := policy.CanCreatePost(caller); err != nil {
		return nil, err
	}
	if err := validatePostFields(&req.Title, &req.Description, &req.Location); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, invalid("Post image is required")
	}

	metadata, err := s.files.UploadImage(ctx, caller, *image)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		CreationDateUTC: s.now().UTC(),
		UserID:          caller.ID,
		BusinessID:      caller.BusinessID,
		ImageURL:        metadata.StoredFilename,
		Likes:           0,
	}
	created, err := s.repo.Post().Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return created, nil
}

// PageRequest converts the external 1-based page into the store's page.
// Page 0 and page 1 both address the first page.
func PageRequest(page, size int) domain.PageRequest {
	if page > 0 {
		page--
	} else {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return domain.PageRequest{Page: page, Size: size}
}

func (s *PostService) List(ctx context.Context, caller *domain.User, page domain.PageRequest) ([]PostView, error) {
	if !caller.HasTenant() {
		return []PostView{}, nil
	}

	posts, err := s.repo.Post().ListByBusiness(ctx, caller.BusinessID, page)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	liked, err := s.repo.Like().LikedPostIDs(ctx, caller.ID, ids)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, len(posts))
	for i := range posts {
		views[i] = PostView{Post: posts[i], IsLiked: liked[posts[i].ID]}
	}
	return views, nil
}

func (s *PostService) Update(ctx context.Context, caller *domain.User, postID string, req dto.UpdatePostRequest) (*domain.Post, error) {
	post, err := s.get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanUpdatePost(caller, post); err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if err := validatePostFields(&post.Title, &post.Description, &post.Location); err != nil {
		return nil, err
	}

	if err := s.repo.Post().Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, caller *domain.User, postID string) error {
	post, err := s.get(ctx, postID)
	if err != nil {
		return err
	}
	if err := policy.CanDeletePost(caller, post); err != nil {
		return err
	}

	if err := s.repo.Post().Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if err := s.repo.Like().DeleteByPost(ctx, post.ID); err != nil {
		s.logger.Warn("Failed to remove likes of deleted post", zap.String("post_id", post.ID), zap.Error(err))
	}
	return nil
}

// ToggleLike flips the caller's like and returns the new state.
func (s *PostService) ToggleLike(ctx context.Context, caller *domain.User, postID string) (bool, error) {
	post, err := s.get(ctx, postID)
	if err != nil {
		return false, err
	}
	if err := policy.CanToggleLike(caller, post); err != nil {
		return false, err
	}

	liked, err := s.repo.Like().Toggle(ctx, caller.ID, post.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, ErrPostNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}
	return liked, nil
}

func (s *PostService) get(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.repo.Post().GetByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return post, err
}

// validatePostFields trims the fields in place and enforces length limits.
func validatePostFields(title, description, location *string) error {
	*title = strings.TrimSpace(*title)
	*description = strings.TrimSpace(*description)
	*location = strings.TrimSpace(*location)

	switch {
	case *title == "":
		return invalid("Title is required")
	case utf8.RuneCountInString(*title) > domain.MaxPostTitleLength:
		return invalid("Title must be at most %d characters", domain.MaxPostTitleLength)
	case utf8.RuneCountInString(*description) > domain.MaxPostDescriptionLength:
		return invalid("Description must be at most %d characters", domain.MaxPostDescriptionLength)
	case utf8.RuneCountInString(*location) > domain.MaxPostLocationLength:
		return invalid("Location must be at most %d characters", domain.MaxPostLocationLength)
	}
	return nil
}
