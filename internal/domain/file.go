package domain

import "time"

type FileType string

const (
	FileTypeImage   FileType = "IMAGE"
	FileTypeGeneric FileType = "GENERIC"
)

type FileStatus string

const (
	FileStatusActive  FileStatus = "ACTIVE"
	FileStatusDeleted FileStatus = "DELETED"
)

type FileMetadata struct {
	ID               string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OriginalFilename string     `gorm:"type:text;index" json:"originalFilename"`
	StoredFilename   string     `gorm:"type:text;not null;uniqueIndex" json:"storedFilename"`
	FileHash         string     `gorm:"type:char(64);index" json:"fileHash"`
	MimeType         string     `gorm:"type:text" json:"mimeType"`
	FileSize         int64      `gorm:"not null" json:"fileSize"`
	UploadedBy       string     `gorm:"type:text;index" json:"uploadedBy"`
	BusinessID       string     `gorm:"column:business_id;type:text;index" json:"businessId"`
	UploadDate       time.Time  `gorm:"type:timestamp with time zone" json:"uploadDate"`
	FileType         FileType   `gorm:"type:text;index" json:"fileType"`
	Status           FileStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	PublicAccess     bool       `gorm:"not null;default:false" json:"publicAccess"`
}

func (FileMetadata) TableName() string {
	return "files"
}

func (f *FileMetadata) IsActive() bool {
	return f.Status == FileStatusActive
}
