package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all blog tags ordered by ascending id.
func (r *TagRepo) FindAll(skip, limit int) ([]*models.BlogTag, error) {
	var tags []*models.BlogTag
	err := r.db.Order("id asc").Offset(skip).Limit(limit).Find(&tags).Error
	return tags, err
}

// FindByID returns the tag with the given id, or nil when absent.
func (r *TagRepo) FindByID(id int) (*models.BlogTag, error) {
	var tag models.BlogTag
	err := r.db.First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByIDs resolves a set of tag ids against the table. Ids with no matching
// row are dropped from the result, not reported as errors.
func (r *TagRepo) FindByIDs(ids []int) ([]models.BlogTag, error) {
	var tags []models.BlogTag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.Where("id IN ?", ids).Order("id asc").Find(&tags).Error
	return tags, err
}

// Add inserts a new tag.
func (r *TagRepo) Add(tag *models.BlogTag) error {
	return r.db.Create(tag).Error
}

// Update applies only the supplied fields and returns the updated tag, or
// nil when it does not exist.
func (r *TagRepo) Update(id int, fields map[string]any) (*models.BlogTag, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&models.BlogTag{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes a tag and detaches it from every blog. The blogs survive.
func (r *TagRepo) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		tag := models.BlogTag{ID: id}
		if err := tx.Model(&tag).Association("Blogs").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.BlogTag{}, id).Error
	})
}
