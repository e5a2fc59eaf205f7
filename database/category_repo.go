package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all blog categories ordered by ascending id.
func (r *CategoryRepo) FindAll(skip, limit int) ([]*models.BlogCategory, error) {
	var categories []*models.BlogCategory
	err := r.db.Order("id asc").Offset(skip).Limit(limit).Find(&categories).Error
	return categories, err
}

// FindByID returns the category with the given id, or nil when absent.
func (r *CategoryRepo) FindByID(id int) (*models.BlogCategory, error) {
	var category models.BlogCategory
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new category.
func (r *CategoryRepo) Add(category *models.BlogCategory) error {
	return r.db.Create(category).Error
}

// Update applies only the supplied fields and returns the updated category,
// or nil when it does not exist.
func (r *CategoryRepo) Update(id int, fields map[string]any) (*models.BlogCategory, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&models.BlogCategory{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes a category. Blogs referencing it keep existing with their
// category cleared.
func (r *CategoryRepo) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Blog{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BlogCategory{}, id).Error
	})
}
