package models

// Role represents a named permission group assigned to users
type Role struct {
	ID   int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name string `json:"name" db:"name" gorm:"type:varchar(50);not null;unique"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:RoleID;references:ID"`
}
