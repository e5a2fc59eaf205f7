package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

type RoleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) *RoleRepo {
	return &RoleRepo{db}
}

// FindAll returns roles ordered by ascending id.
func (r *RoleRepo) FindAll(skip, limit int) ([]*models.Role, error) {
	var roles []*models.Role
	err := r.db.Order("id asc").Offset(skip).Limit(limit).Find(&roles).Error
	return roles, err
}

// FindByID returns the role with the given id, or nil when it does not exist.
func (r *RoleRepo) FindByID(id int) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByName returns the role with the given name, or nil when absent.
func (r *RoleRepo) FindByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Add inserts a new role.
func (r *RoleRepo) Add(role *models.Role) error {
	return r.db.Create(role).Error
}

// Update applies only the supplied fields and returns the updated role, or
// nil when the role does not exist.
func (r *RoleRepo) Update(id int, fields map[string]any) (*models.Role, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&models.Role{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes a role by id.
func (r *RoleRepo) Delete(id int) error {
	return r.db.Delete(&models.Role{}, id).Error
}
