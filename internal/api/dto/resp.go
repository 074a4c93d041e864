package dto

import "time"

type UserResponse struct {
	ID              string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	FirstName       string    `json:"firstName" example:"Alice"`
	LastName        string    `json:"lastName" example:"Smith"`
	Email           string    `json:"email" example:"alice@example.com"`
	Role            string    `json:"role" example:"DEFAULT"`
	BusinessID      string    `json:"businessID" example:"550e8400-e29b-41d4-a716-446655440001"`
	PhoneNumber     string    `json:"phoneNumber" example:"+15550100"`
	ProfileStatus   string    `json:"profileStatus" example:"ACTIVE"`
	EmailVerified   bool      `json:"emailVerified" example:"true"`
	ProfilePicture  string    `json:"profilePicture" example:"0f8fad5b-d9cb-469f-a165-70867728950e.png"`
	Provider        string    `json:"provider" example:"EMAIL"`
	Notifications   string    `json:"notifications" example:"ALL"`
	CreationDateUTC time.Time `json:"creationDateUtc" example:"2025-07-17T21:20:48Z"`
}

// RegisterResponse is returned by registration
type RegisterResponse struct {
	Message string        `json:"message" example:"User registered successfully. Please check your email for verification link."`
	User    *UserResponse `json:"user,omitempty"`
	Token   string        `json:"token,omitempty"`
}

// LoginResponse is returned by login and /me
type LoginResponse struct {
	Message string        `json:"message" example:"User logged in successfully"`
	User    *UserResponse `json:"user,omitempty"`
	Token   string        `json:"token,omitempty"`
}

type BusinessResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	AdminID        string `json:"adminID"`
	LogoImage      string `json:"logoImage"`
	Description    string `json:"description"`
	WallpaperImage string `json:"wallpaperImage"`
	Website        string `json:"website"`
	Email          string `json:"email"`
	InstaLink      string `json:"instaLink"`
	FbLink         string `json:"fbLink"`
	TwitterLink    string `json:"twitterLink"`
	Address        string `json:"address"`
	ContactInfo    string `json:"contactInfo"`
	BrandColorRGB  string `json:"brandColorRGB"`
	Deleted        bool   `json:"deleted"`
}

// BusinessInfoResponse is the member-facing subset of a business
type BusinessInfoResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	LogoImage      string `json:"logoImage"`
	Description    string `json:"description"`
	WallpaperImage string `json:"wallpaperImage"`
	Website        string `json:"website"`
	Email          string `json:"email"`
	InstaLink      string `json:"instaLink"`
	FbLink         string `json:"fbLink"`
	TwitterLink    string `json:"twitterLink"`
	Address        string `json:"address"`
	ContactInfo    string `json:"contactInfo"`
	BrandColorRGB  string `json:"brandColorRGB"`
}

type PostResponse struct {
	ID              string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440002"`
	Title           string    `json:"title" example:"Grand opening"`
	Description     string    `json:"description" example:"Join us on Friday"`
	Location        string    `json:"location" example:"Main street 1"`
	CreationDateUTC time.Time `json:"creationDateUtc" example:"2025-07-17T21:20:48Z"`
	UserID          string    `json:"userId" example:"550e8400-e29b-41d4-a716-446655440000"`
	Likes           int       `json:"likes" example:"3"`
	BusinessID      string    `json:"businessId" example:"550e8400-e29b-41d4-a716-446655440001"`
	ImageURL        string    `json:"imageUrl" example:"0f8fad5b-d9cb-469f-a165-70867728950e.jpg"`
	IsLiked         bool      `json:"isLiked" example:"false"`
}

type LikeResponse struct {
	Liked bool `json:"liked" example:"true"`
}

type FileMetadataResponse struct {
	ID               string    `json:"id"`
	OriginalFilename string    `json:"originalFilename" example:"avatar.png"`
	StoredFilename   string    `json:"storedFilename" example:"0f8fad5b-d9cb-469f-a165-70867728950e.png"`
	FileHash         string    `json:"fileHash"`
	MimeType         string    `json:"mimeType" example:"image/png"`
	FileSize         int64     `json:"fileSize" example:"2048"`
	UploadedBy       string    `json:"uploadedBy"`
	BusinessID       string    `json:"businessId"`
	UploadDate       time.Time `json:"uploadDate" example:"2025-07-17T21:20:48Z"`
	FileType         string    `json:"fileType" example:"IMAGE"`
	Status           string    `json:"status" example:"ACTIVE"`
	PublicAccess     bool      `json:"publicAccess" example:"false"`
}

type HealthResponse struct {
	Status string `json:"status" example:"UP"`
}

type InfoResponse struct {
	Name    string `json:"name" example:"Business Feed"`
	Version string `json:"version" example:"dev"`
}
