package domain

import "time"

const (
	MaxPostTitleLength       = 255
	MaxPostDescriptionLength = 1000
	MaxPostLocationLength    = 255
)

type Post struct {
	ID              string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null;index" json:"title"`
	Description     string    `gorm:"type:varchar(1000)" json:"description"`
	Location        string    `gorm:"type:varchar(255)" json:"location"`
	CreationDateUTC time.Time `gorm:"column:creation_date_utc;type:timestamp with time zone;index" json:"creationDateUtc"`
	UserID          string    `gorm:"type:text;not null;index" json:"userId"`
	Likes           int       `gorm:"not null;default:0;check:likes >= 0" json:"likes"`
	BusinessID      string    `gorm:"column:business_id;type:text;not null;index" json:"businessId"`
	ImageURL        string    `gorm:"column:image_url;type:text" json:"imageUrl"`
}

func (Post) TableName() string {
	return "posts"
}

type Like struct {
	ID     string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID string `gorm:"type:text;not null;uniqueIndex:idx_likes_user_post" json:"userId"`
	PostID string `gorm:"type:text;not null;uniqueIndex:idx_likes_user_post;index" json:"postId"`
	Liked  bool   `gorm:"not null" json:"liked"`
}

func (Like) TableName() string {
	return "likes"
}

// PageRequest is a zero-based page of a creation-date descending listing
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}
