package models

// User represents an account able to authenticate against the API
type User struct {
	ID             int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name           string `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Email          string `json:"email" db:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	PhoneNumber    string `json:"phone_number,omitempty" db:"phone_number" gorm:"type:varchar(20)"`
	HashedPassword string `json:"-" db:"hashed_password" gorm:"type:varchar(128);not null"`
	IsActive       bool   `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	RoleID         int    `json:"role_id" db:"role_id" gorm:"not null;index"`

	Role  Role   `json:"role" gorm:"foreignKey:RoleID;references:ID"`
	Blogs []Blog `json:"blogs,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
}
