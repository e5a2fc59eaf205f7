package models

// ProjectImage is a gallery image owned exclusively by one project.
// Deleting the project deletes its images.
type ProjectImage struct {
	ID        int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	URL       string `json:"url" db:"url" gorm:"type:text;not null"`
	ProjectID int    `json:"project_id" db:"project_id" gorm:"not null;index"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}
