package database

import (
	"gorm.io/gorm"
)

// Database aggregates the per-entity repositories over one shared GORM
// connection. Each repository method is a single logical unit of work;
// multi-step sequences run inside a transaction.
type Database struct {
	roleRepo     *RoleRepo
	userRepo     *UserRepo
	categoryRepo *CategoryRepo
	tagRepo      *TagRepo
	blogRepo     *BlogRepo
	projectRepo  *ProjectRepo
	statsRepo    *StatsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		roleRepo:     NewRoleRepo(db),
		userRepo:     NewUserRepo(db),
		categoryRepo: NewCategoryRepo(db),
		tagRepo:      NewTagRepo(db),
		blogRepo:     NewBlogRepo(db),
		projectRepo:  NewProjectRepo(db),
		statsRepo:    NewStatsRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) RoleRepo() *RoleRepo {
	return d.roleRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) StatsRepo() *StatsRepo {
	return d.statsRepo
}
