package model

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a portfolio case study with an ordered image gallery.
type Project struct {
	ID          string     `json:"id" gorm:"primaryKey;size:100"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Client      string     `json:"client" gorm:"size:100;not null;index"`
	Agency      string     `json:"agency" gorm:"size:100;not null;index"`
	Type        StringList `json:"type" gorm:"type:text;not null"`
	Year        int        `json:"year" gorm:"not null;index"`
	Duration    *string    `json:"duration" gorm:"size:50"`
	Tools       StringList `json:"tools" gorm:"type:text"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Results     StringList `json:"results" gorm:"type:text"`
	Published   bool       `json:"published" gorm:"default:true;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Images []ProjectImage `json:"images" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name.
func (Project) TableName() string {
	return "projects"
}

// ProjectImage represents one uploaded gallery image. The stored filename is
// system-generated; the original name is kept as metadata only.
type ProjectImage struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ProjectID        string    `json:"project_id" gorm:"size:100;not null;index"`
	Filename         string    `json:"filename" gorm:"uniqueIndex;size:255;not null"`
	OriginalFilename string    `json:"original_filename" gorm:"size:255;not null"`
	URL              string    `json:"url" gorm:"-"`
	AltText          *string   `json:"alt_text" gorm:"size:255"`
	Caption          *string   `json:"caption" gorm:"type:text"`
	SortOrder        int       `json:"order" gorm:"column:sort_order;default:0;index"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (ProjectImage) TableName() string {
	return "project_images"
}

// AfterFind populates the serving URL for loaded records.
func (i *ProjectImage) AfterFind(tx *gorm.DB) error {
	i.URL = ImageURL(i.Filename)
	return nil
}

// AfterCreate populates the serving URL on freshly created records.
func (i *ProjectImage) AfterCreate(tx *gorm.DB) error {
	i.URL = ImageURL(i.Filename)
	return nil
}

// ImageURL returns the public path an uploaded image is served from.
func ImageURL(filename string) string {
	return "/api/images/" + filename
}
