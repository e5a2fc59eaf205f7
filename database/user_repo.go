package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindAll returns users with their role, ordered by ascending id.
func (r *UserRepo) FindAll(skip, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.Preload("Role").Order("id asc").Offset(skip).Limit(limit).Find(&users).Error
	return users, err
}

// FindByID returns the user with the given id, or nil when absent.
func (r *UserRepo) FindByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with the given email, or nil when absent.
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user.
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// Update applies only the supplied fields and returns the updated user, or
// nil when the user does not exist.
func (r *UserRepo) Update(id int, fields map[string]any) (*models.User, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes a user by id.
func (r *UserRepo) Delete(id int) error {
	return r.db.Delete(&models.User{}, id).Error
}
