package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects with their gallery images, ascending id.
func (r *ProjectRepo) FindAll(skip, limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Images").Order("id asc").Offset(skip).Limit(limit).Find(&projects).Error
	return projects, err
}

// FindByID returns the project with the given id, or nil when absent.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Images").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a project and one ProjectImage row per gallery URL in a single
// transaction, so a failed image insert leaves no partial project behind.
func (r *ProjectRepo) Add(project *models.Project, imageURLs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		project.Images = nil
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		for _, url := range imageURLs {
			image := models.ProjectImage{URL: url, ProjectID: project.ID}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update applies only the supplied fields and returns the updated project,
// or nil when it does not exist.
func (r *ProjectRepo) Update(id int, fields map[string]any) (*models.Project, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes a project and every gallery image it owns as one unit.
func (r *ProjectRepo) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
