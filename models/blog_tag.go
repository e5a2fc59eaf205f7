package models

// BlogTag is a label attached to any number of blogs
type BlogTag struct {
	ID          int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string  `json:"name" db:"name" gorm:"type:varchar(100);not null;unique"`
	Description *string `json:"description,omitempty" db:"description" gorm:"type:text"`

	Blogs []Blog `json:"blogs,omitempty" gorm:"many2many:blog_tag_links;"`
}
