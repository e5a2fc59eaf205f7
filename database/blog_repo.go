package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

func (r *BlogRepo) preloaded() *gorm.DB {
	return r.db.Preload("Tags").Preload("Category").Preload("Author").Preload("Author.Role")
}

// FindPublished returns the public feed: published blogs only, ascending id.
func (r *BlogRepo) FindPublished(skip, limit int) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.preloaded().
		Where("status = ?", models.BlogStatusPublished).
		Order("id asc").Offset(skip).Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// FindAll returns every blog regardless of status, ascending id.
func (r *BlogRepo) FindAll(skip, limit int) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.preloaded().Order("id asc").Offset(skip).Limit(limit).Find(&blogs).Error
	return blogs, err
}

// FindByAuthor returns the author's blogs in any status, newest id first.
func (r *BlogRepo) FindByAuthor(authorID int) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.preloaded().Where("author_id = ?", authorID).Order("id desc").Find(&blogs).Error
	return blogs, err
}

// FindByID returns the blog with the given id, or nil when absent.
func (r *BlogRepo) FindByID(id int) (*models.Blog, error) {
	var blog models.Blog
	err := r.preloaded().First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug returns the blog with the given slug, or nil when absent.
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.preloaded().Where("slug = ?", slug).First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Add inserts a blog and sets its tag association to the tags resolved from
// tagIDs, all inside one transaction. Unknown tag ids are dropped.
func (r *BlogRepo) Add(blog *models.Blog, tagIDs []int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		blog.Tags = nil
		if err := tx.Create(blog).Error; err != nil {
			return err
		}
		return replaceTags(tx, blog, tagIDs)
	})
}

// Update applies only the supplied fields and, when tagIDs is non-nil,
// replaces the blog's whole tag set with the resolved tags. Field update and
// tag reassignment commit or roll back together. Returns nil when the blog
// does not exist.
func (r *BlogRepo) Update(id int, fields map[string]any, tagIDs *[]int) (*models.Blog, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&models.Blog{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}
		if tagIDs != nil {
			return replaceTags(tx, &models.Blog{ID: id}, *tagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(id)
}

// Delete removes a blog and its tag association rows. The tags themselves
// survive.
func (r *BlogRepo) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		blog := models.Blog{ID: id}
		if err := tx.Model(&blog).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, id).Error
	})
}

// replaceTags resolves tagIDs against the blog_tags table and swaps the
// blog's association set for the result. Unknown ids silently resolve to
// nothing.
func replaceTags(tx *gorm.DB, blog *models.Blog, tagIDs []int) error {
	var tags []models.BlogTag
	if len(tagIDs) > 0 {
		if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
			return err
		}
	}
	return tx.Model(blog).Association("Tags").Replace(tags)
}
