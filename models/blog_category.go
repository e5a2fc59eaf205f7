package models

// BlogCategory groups blogs under a single optional heading
type BlogCategory struct {
	ID          int     `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string  `json:"name" db:"name" gorm:"type:varchar(100);not null;unique"`
	Description *string `json:"description,omitempty" db:"description" gorm:"type:text"`

	Blogs []Blog `json:"blogs,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}
