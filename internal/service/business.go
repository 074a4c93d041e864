package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrain94/business-feed-api/internal/api/dto"
	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/media"
	"github.com/kingrain94/business-feed-api/internal/policy"
	"github.com/kingrain94/business-feed-api/internal/repository"
	"github.com/kingrain94/business-feed-api/pkg/logger"
)

// BusinessImages are the optional branding uploads of a business form.
type BusinessImages struct {
	Logo      *dto.FileUpload
	Wallpaper *dto.FileUpload
}

type BusinessService struct {
	repo   repository.Repository
	files  *FileService
	logger *logger.Logger
}

func NewBusinessService(repo repository.Repository, files *FileService, logger *logger.Logger) *BusinessService {
	return &BusinessService{
		repo:   repo,
		files:  files,
		logger: logger,
	}
}

func (s *BusinessService) Create(ctx context.Context, caller *domain.User, req dto.BusinessRequest, images BusinessImages) (*domain.Business, error) {
	if err := policy.CanManageBusinesses(caller); err != nil {
		return nil, err
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, invalid("Business name is required")
	}

	business := &domain.Business{}
	applyBusinessFields(business, req)

	prepared, err := s.prepareImages(images)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Business().Create(ctx, business)
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	// Images are bound to the business id, so they are stored after the row exists.
	if prepared.logo != nil || prepared.wallpaper != nil {
		err := s.storeImages(ctx, caller, created, prepared)
		if err == nil {
			if err = s.repo.Business().Update(ctx, created); err != nil {
				err = fmt.Errorf("failed to update business images: %w", err)
			}
		}
		if err != nil {
			s.discard(ctx, created)
			return nil, err
		}
	}

	s.logger.Info("Business created", zap.String("business_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// Update checks the caller's right to the business before looking it up, so
// foreign ids answer 403 whether or not they exist.
func (s *BusinessService) Update(ctx context.Context, caller *domain.User, id string, req dto.BusinessRequest, images BusinessImages) (*domain.Business, error) {
	if err := policy.CanUpdateBusiness(caller, id); err != nil {
		return nil, err
	}
	if req.Deleted != nil && caller.Role != domain.RoleSuperAdmin {
		return nil, ErrInsufficientRole
	}

	business, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, invalid("Business name cannot be empty")
	}
	if req.Deleted != nil {
		deleted, err := strconv.ParseBool(strings.TrimSpace(*req.Deleted))
		if err != nil {
			return nil, invalid("Invalid value for deleted: %s", *req.Deleted)
		}
		business.Deleted = deleted
	}
	applyBusinessFields(business, req)

	prepared, err := s.prepareImages(images)
	if err != nil {
		return nil, err
	}
	if err := s.storeImages(ctx, caller, business, prepared); err != nil {
		return nil, err
	}
	if err := s.repo.Business().Update(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}
	return business, nil
}

func (s *BusinessService) List(ctx context.Context, caller *domain.User) ([]domain.Business, error) {
	if err := policy.CanManageBusinesses(caller); err != nil {
		return nil, err
	}
	return s.repo.Business().ListActive(ctx)
}

// Delete is a soft delete. Members of the business are locked out by the
// lifecycle gate from then on.
func (s *BusinessService) Delete(ctx context.Context, caller *domain.User, id string) error {
	if err := policy.CanManageBusinesses(caller); err != nil {
		return err
	}
	business, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	business.Deleted = true
	if err := s.repo.Business().Update(ctx, business); err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}
	s.logger.Info("Business deleted", zap.String("business_id", id), zap.String("deleted_by", caller.ID))
	return nil
}

func (s *BusinessService) Info(ctx context.Context, caller *domain.User, id string) (*domain.Business, error) {
	if err := policy.CanViewBusinessInfo(caller, id); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *BusinessService) get(ctx context.Context, id string) (*domain.Business, error) {
	business, err := s.repo.Business().GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, err
	}
	return business, nil
}

// discard soft-deletes a business whose creation failed part way.
func (s *BusinessService) discard(ctx context.Context, business *domain.Business) {
	business.Deleted = true
	if err := s.repo.Business().Update(ctx, business); err != nil {
		s.logger.Warn("Failed to discard incomplete business",
			zap.String("business_id", business.ID),
			zap.Error(err),
		)
	}
}

var imageOptions = StoreOptions{RequireImage: true}

type preparedImages struct {
	logo      *media.Processed
	wallpaper *media.Processed
}

func (s *BusinessService) prepareImages(images BusinessImages) (preparedImages, error) {
	var prepared preparedImages
	var err error
	if images.Logo != nil {
		if prepared.logo, err = s.files.Prepare(*images.Logo, imageOptions); err != nil {
			return preparedImages{}, err
		}
	}
	if images.Wallpaper != nil {
		if prepared.wallpaper, err = s.files.Prepare(*images.Wallpaper, imageOptions); err != nil {
			return preparedImages{}, err
		}
	}
	return prepared, nil
}

func (s *BusinessService) storeImages(ctx context.Context, caller *domain.User, business *domain.Business, prepared preparedImages) error {
	if prepared.logo != nil {
		metadata, err := s.files.StorePrepared(ctx, caller.ID, business.ID, prepared.logo, imageOptions)
		if err != nil {
			return err
		}
		business.LogoImage = metadata.StoredFilename
	}
	if prepared.wallpaper != nil {
		metadata, err := s.files.StorePrepared(ctx, caller.ID, business.ID, prepared.wallpaper, imageOptions)
		if err != nil {
			return err
		}
		business.WallpaperImage = metadata.StoredFilename
	}
	return nil
}

func applyBusinessFields(b *domain.Business, req dto.BusinessRequest) {
	setTrimmed(&b.Name, req.Name)
	setTrimmed(&b.AdminID, req.AdminID)
	setTrimmed(&b.Description, req.Description)
	setTrimmed(&b.Website, req.Website)
	setTrimmed(&b.Email, req.Email)
	setTrimmed(&b.InstaLink, req.InstaLink)
	setTrimmed(&b.FbLink, req.FbLink)
	setTrimmed(&b.TwitterLink, req.TwitterLink)
	setTrimmed(&b.Address, req.Address)
	setTrimmed(&b.ContactInfo, req.ContactInfo)
	setTrimmed(&b.BrandColorRGB, req.BrandColorRGB)
}
