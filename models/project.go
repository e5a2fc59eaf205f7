package models

import "time"

// Project represents a portfolio entry with an owned image gallery
type Project struct {
	ID             int        `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title          string     `json:"title" db:"title" gorm:"type:varchar(255);not null"`
	Category       string     `json:"category" db:"category" gorm:"type:varchar(100)"`
	Location       string     `json:"location" db:"location" gorm:"type:varchar(255)"`
	ImageURL       string     `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	Client         string     `json:"client" db:"client" gorm:"type:varchar(255)"`
	CompletionDate *time.Time `json:"completion_date,omitempty" db:"completion_date"`
	Value          string     `json:"value,omitempty" db:"value" gorm:"type:varchar(100)"`
	Description    string     `json:"description" db:"description" gorm:"type:text"`

	Images []ProjectImage `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
