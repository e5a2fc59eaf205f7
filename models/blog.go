package models

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// Blog represents a single authored article. Status is either "draft" or
// "published"; only published blogs appear on the public feed.
type Blog struct {
	ID         int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title      string `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Slug       string `json:"slug" db:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	Content    string `json:"content" db:"content" gorm:"type:text;not null"`
	ImageURL   string `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	Status     string `json:"status" db:"status" gorm:"type:varchar(20);not null;default:draft"`
	AuthorID   int    `json:"author_id" db:"author_id" gorm:"not null;index"`
	CategoryID *int   `json:"category_id,omitempty" db:"category_id" gorm:"index"`

	Author   User          `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Category *BlogCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Tags     []BlogTag     `json:"tags,omitempty" gorm:"many2many:blog_tag_links;"`
}

// ValidBlogStatus reports whether s is one of the two allowed status values.
func ValidBlogStatus(s string) bool {
	return s == BlogStatusDraft || s == BlogStatusPublished
}
