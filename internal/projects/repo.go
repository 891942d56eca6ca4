package projects

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/devfolio/devfolio-backend/pkg/db/models"
)

// Repository exposes project persistence operations. Every single-row lookup
// is scoped to the owning user in one predicate, so a project belonging to a
// different user is indistinguishable from a missing one.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a projects repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new project and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateProjectDTO) (*models.Project, error) {
	project := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// ListByUser returns a page of the user's projects ordered by display_order,
// with id as tiebreak.
func (r *Repository) ListByUser(ctx context.Context, userID int64, offset, limit int) ([]models.Project, error) {
	var list []models.Project
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("display_order ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID loads a project by id, scoped to its owner.
func (r *Repository) FindByID(ctx context.Context, projectID, userID int64) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", projectID, userID).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update merges the provided fields into the stored project and refreshes
// updated_at. Untouched fields keep their current values.
func (r *Repository) Update(ctx context.Context, projectID, userID int64, dto UpdateProjectDTO) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", projectID, userID).
		First(&project).Error
	if err != nil {
		return nil, err
	}

	if dto.ProjectName != nil {
		project.ProjectName = *dto.ProjectName
	}
	if dto.Description != nil {
		project.Description = *dto.Description
	}
	if dto.Highlights != nil {
		project.Highlights = *dto.Highlights
	}
	if dto.ProjectURL != nil {
		project.ProjectURL = dto.ProjectURL
	}
	if dto.GithubURL != nil {
		project.GithubURL = dto.GithubURL
	}
	if dto.StartDate != nil {
		project.StartDate = dto.StartDate
	}
	if dto.EndDate != nil {
		project.EndDate = dto.EndDate
	}
	if dto.TechnologiesUsed != nil {
		project.TechnologiesUsed = *dto.TechnologiesUsed
	}
	if dto.IsFeatured != nil {
		project.IsFeatured = *dto.IsFeatured
	}
	if dto.DisplayOrder != nil {
		project.DisplayOrder = *dto.DisplayOrder
	}
	if dto.IsActive != nil {
		project.IsActive = *dto.IsActive
	}

	now := time.Now().UTC()
	project.UpdatedAt = &now

	if err := r.db.WithContext(ctx).Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes the project, scoped to its owner. Returns the number of
// rows removed.
func (r *Repository) Delete(ctx context.Context, projectID, userID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", projectID, userID).
		Delete(&models.Project{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
