package projects

import (
	"time"

	"github.com/devfolio/devfolio-backend/pkg/db/models"
	"github.com/devfolio/devfolio-backend/pkg/types"
)

// ProjectDTO is the transport shape returned by the API. The enhanced fields
// stay empty until the enhancement pipeline fills them in.
type ProjectDTO struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	ProjectName string           `json:"project_name"`
	Description string           `json:"description"`
	Highlights  types.StringList `json:"highlights,omitempty"`

	DescriptionEnhanced   *string          `json:"description_enhanced,omitempty"`
	HighlightsEnhanced    types.StringList `json:"highlights_enhanced,omitempty"`
	EnhancementPromptUsed *string          `json:"enhancement_prompt_used,omitempty"`
	LastEnhancedAt        *time.Time       `json:"last_enhanced_at,omitempty"`

	ProjectURL       *string          `json:"project_url,omitempty"`
	GithubURL        *string          `json:"github_url,omitempty"`
	StartDate        *types.Date      `json:"start_date,omitempty"`
	EndDate          *types.Date      `json:"end_date,omitempty"`
	TechnologiesUsed types.StringList `json:"technologies_used,omitempty"`

	IsFeatured   bool `json:"is_featured"`
	DisplayOrder int  `json:"display_order"`
	IsActive     bool `json:"is_active"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateProjectDTO holds the data required to persist a new project.
type CreateProjectDTO struct {
	UserID      int64
	ProjectName string
	Description string
	Highlights  types.StringList

	ProjectURL       *string
	GithubURL        *string
	StartDate        *types.Date
	EndDate          *types.Date
	TechnologiesUsed types.StringList

	IsFeatured   *bool
	DisplayOrder *int
	IsActive     *bool
}

// UpdateProjectDTO carries the optional fields of a partial update. Nil
// fields are left untouched. The enhancement columns are not client-mutable.
type UpdateProjectDTO struct {
	ProjectName *string
	Description *string
	Highlights  *types.StringList

	ProjectURL       *string
	GithubURL        *string
	StartDate        *types.Date
	EndDate          *types.Date
	TechnologiesUsed *types.StringList

	IsFeatured   *bool
	DisplayOrder *int
	IsActive     *bool
}

func FromModel(p *models.Project) *ProjectDTO {
	if p == nil {
		return nil
	}

	return &ProjectDTO{
		ID:                    p.ID,
		UserID:                p.UserID,
		ProjectName:           p.ProjectName,
		Description:           p.Description,
		Highlights:            p.Highlights,
		DescriptionEnhanced:   p.DescriptionEnhanced,
		HighlightsEnhanced:    p.HighlightsEnhanced,
		EnhancementPromptUsed: p.EnhancementPromptUsed,
		LastEnhancedAt:        p.LastEnhancedAt,
		ProjectURL:            p.ProjectURL,
		GithubURL:             p.GithubURL,
		StartDate:             p.StartDate,
		EndDate:               p.EndDate,
		TechnologiesUsed:      p.TechnologiesUsed,
		IsFeatured:            p.IsFeatured,
		DisplayOrder:          p.DisplayOrder,
		IsActive:              p.IsActive,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func (c CreateProjectDTO) ToModel() *models.Project {
	isFeatured := false
	if c.IsFeatured != nil {
		isFeatured = *c.IsFeatured
	}
	displayOrder := 0
	if c.DisplayOrder != nil {
		displayOrder = *c.DisplayOrder
	}
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return &models.Project{
		UserID:           c.UserID,
		ProjectName:      c.ProjectName,
		Description:      c.Description,
		Highlights:       c.Highlights,
		ProjectURL:       c.ProjectURL,
		GithubURL:        c.GithubURL,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		TechnologiesUsed: c.TechnologiesUsed,
		IsFeatured:       isFeatured,
		DisplayOrder:     displayOrder,
		IsActive:         isActive,
	}
}
