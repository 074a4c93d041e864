package domain

type Business struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name           string `gorm:"type:text;not null;index" json:"name"`
	AdminID        string `gorm:"column:admin_id;type:text" json:"adminID"`
	LogoImage      string `gorm:"type:text" json:"logoImage"`
	Description    string `gorm:"type:text" json:"description"`
	WallpaperImage string `gorm:"type:text" json:"wallpaperImage"`
	Website        string `gorm:"type:text" json:"website"`
	Email          string `gorm:"type:text" json:"email"`
	InstaLink      string `gorm:"type:text" json:"instaLink"`
	FbLink         string `gorm:"type:text" json:"fbLink"`
	TwitterLink    string `gorm:"type:text" json:"twitterLink"`
	Address        string `gorm:"type:text" json:"address"`
	ContactInfo    string `gorm:"type:text" json:"contactInfo"`
	BrandColorRGB  string `gorm:"column:brand_color_rgb;type:text" json:"brandColorRGB"`
	Deleted        bool   `gorm:"not null;default:false;index" json:"deleted"`
}

func (Business) TableName() string {
	return "businesses"
}
