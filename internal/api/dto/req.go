package dto

type RegisterRequest struct {
	FirstName string `json:"firstName" example:"Alice"`
	LastName  string `json:"lastName" example:"Smith"`
	Email     string `json:"email" binding:"required" example:"alice@example.com"`
	Password  string `json:"password" binding:"required" example:"Passw0rd!"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"Passw0rd!"`
}

// EmailRequest is the body of the reset request and resend verification calls
type EmailRequest struct {
	Email string `json:"email" binding:"required" example:"alice@example.com"`
}

// ResetPasswordForm is posted by the HTML reset page
type ResetPasswordForm struct {
	Token           string `form:"token"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

// UpdateUserRequest is a multipart form; nil fields are left unchanged.
// The profile picture travels as a separate file part.
type UpdateUserRequest struct {
	FirstName       *string `form:"firstName"`
	LastName        *string `form:"lastName"`
	Notifications   *string `form:"notifications"`
	PhoneNumber     *string `form:"phoneNumber"`
	Password        *string `form:"password"`
	CurrentPassword *string `form:"currentPassword"`
	BusinessID      *string `form:"businessID"`
	Role            *string `form:"role"`
	ProfileStatus   *string `form:"profileStatus"`
}

// BusinessRequest is used for both create and update. On update nil fields
// are left unchanged.
type BusinessRequest struct {
	Name          *string `form:"name"`
	AdminID       *string `form:"adminID"`
	Description   *string `form:"description"`
	Website       *string `form:"website"`
	Email         *string `form:"email"`
	InstaLink     *string `form:"instaLink"`
	FbLink        *string `form:"fbLink"`
	TwitterLink   *string `form:"twitterLink"`
	Address       *string `form:"address"`
	ContactInfo   *string `form:"contactInfo"`
	BrandColorRGB *string `form:"brandColorRGB"`
	Deleted       *string `form:"deleted"`
}

type CreatePostRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Location    string `form:"location"`
}

type UpdatePostRequest struct {
	Title       *string `json:"title" example:"Grand opening"`
	Description *string `json:"description" example:"Join us on Friday"`
	Location    *string `json:"location" example:"Main street 1"`
}

type PageQuery struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

// FileUpload is a whole multipart file read into memory
type FileUpload struct {
	Filename string
	Data     []byte
}
