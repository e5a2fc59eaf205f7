package database

import (
	"gorm.io/gorm"

	"github.com/dreamcraft-eng/dreamcraft-backend/models"
)

// DashboardStats carries the live counts shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers      int64 `json:"total_users"`
	PublishedBlogs  int64 `json:"published_blogs"`
	DraftBlogs      int64 `json:"draft_blogs"`
	TotalCategories int64 `json:"total_categories"`
	TotalTags       int64 `json:"total_tags"`
}

type StatsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db}
}

// Counts computes the dashboard aggregates as of the time of the call.
// Never cached; every request hits the store.
func (r *StatsRepo) Counts() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Blog{}).Where("status = ?", models.BlogStatusPublished).Count(&stats.PublishedBlogs).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Blog{}).Where("status = ?", models.BlogStatusDraft).Count(&stats.DraftBlogs).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.BlogCategory{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.BlogTag{}).Count(&stats.TotalTags).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
