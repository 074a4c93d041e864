package dto

import (
	"github.com/kingrain94/business-feed-api/internal/domain"
)

// FromUser never copies the password hash
func FromUser(user *domain.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		Role:            string(user.Role),
		BusinessID:      user.BusinessID,
		PhoneNumber:     user.PhoneNumber,
		ProfileStatus:   string(user.ProfileStatus),
		EmailVerified:   user.EmailVerified,
		ProfilePicture:  user.ProfilePicture,
		Provider:        string(user.Provider),
		Notifications:   user.Notifications,
		CreationDateUTC: user.CreationDateUTC,
	}
}

func FromUsers(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *FromUser(&users[i])
	}
	return responses
}

func FromBusiness(b *domain.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:             b.ID,
		Name:           b.Name,
		AdminID:        b.AdminID,
		LogoImage:      b.LogoImage,
		Description:    b.Description,
		WallpaperImage: b.WallpaperImage,
		Website:        b.Website,
		Email:          b.Email,
		InstaLink:      b.InstaLink,
		FbLink:         b.FbLink,
		TwitterLink:    b.TwitterLink,
		Address:        b.Address,
		ContactInfo:    b.ContactInfo,
		BrandColorRGB:  b.BrandColorRGB,
		Deleted:        b.Deleted,
	}
}

func FromBusinesses(businesses []domain.Business) []BusinessResponse {
	responses := make([]BusinessResponse, len(businesses))
	for i := range businesses {
		responses[i] = *FromBusiness(&businesses[i])
	}
	return responses
}

func BusinessInfoFrom(b *domain.Business) *BusinessInfoResponse {
	return &BusinessInfoResponse{
		ID:             b.ID,
		Name:           b.Name,
		LogoImage:      b.LogoImage,
		Description:    b.Description,
		WallpaperImage: b.WallpaperImage,
		Website:        b.Website,
		Email:          b.Email,
		InstaLink:      b.InstaLink,
		FbLink:         b.FbLink,
		TwitterLink:    b.TwitterLink,
		Address:        b.Address,
		ContactInfo:    b.ContactInfo,
		BrandColorRGB:  b.BrandColorRGB,
	}
}

func FromPost(post *domain.Post, liked bool) *PostResponse {
	return &PostResponse{
		ID:              post.ID,
		Title:           post.Title,
		Description:     post.Description,
		Location:        post.Location,
		CreationDateUTC: post.CreationDateUTC,
		UserID:          post.UserID,
		Likes:           post.Likes,
		BusinessID:      post.BusinessID,
		ImageURL:        post.ImageURL,
		IsLiked:         liked,
	}
}

func FromFileMetadata(f *domain.FileMetadata) *FileMetadataResponse {
	return &FileMetadataResponse{
		ID:               f.ID,
		OriginalFilename: f.OriginalFilename,
		StoredFilename:   f.StoredFilename,
		FileHash:         f.FileHash,
		MimeType:         f.MimeType,
		FileSize:         f.FileSize,
		UploadedBy:       f.UploadedBy,
		BusinessID:       f.BusinessID,
		UploadDate:       f.UploadDate,
		FileType:         string(f.FileType),
		Status:           string(f.Status),
		PublicAccess:     f.PublicAccess,
	}
}

func FromFileMetadataList(files []domain.FileMetadata) []FileMetadataResponse {
	responses := make([]FileMetadataResponse, len(files))
	for i := range files {
		responses[i] = *FromFileMetadata(&files[i])
	}
	return responses
}
