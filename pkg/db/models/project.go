package models

import (
	"time"

	"github.com/devfolio/devfolio-backend/pkg/types"
)

// Project stores a portfolio entry together with placeholders for the
// AI-enhanced variants of its text fields.
type Project struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      int64  `gorm:"column:user_id;not null;index"`
	ProjectName string `gorm:"column:project_name;size:255;not null"`

	// User-authored content
	Description string           `gorm:"column:description;type:text;not null"`
	Highlights  types.StringList `gorm:"column:highlights;type:json"`

	// AI-enhanced variants, empty until an enhancement run populates them
	DescriptionEnhanced *string          `gorm:"column:description_enhanced;type:text"`
	HighlightsEnhanced  types.StringList `gorm:"column:highlights_enhanced;type:json"`

	// Enhancement tracking
	EnhancementPromptUsed *string    `gorm:"column:enhancement_prompt_used;type:text"`
	LastEnhancedAt        *time.Time `gorm:"column:last_enhanced_at"`

	ProjectURL       *string          `gorm:"column:project_url;size:500"`
	GithubURL        *string          `gorm:"column:github_url;size:500"`
	StartDate        *types.Date      `gorm:"column:start_date;type:date"`
	EndDate          *types.Date      `gorm:"column:end_date;type:date"`
	TechnologiesUsed types.StringList `gorm:"column:technologies_used;type:json"`
	IsFeatured       bool             `gorm:"column:is_featured;not null;default:false"`
	DisplayOrder     int              `gorm:"column:display_order;not null;default:0"`
	IsActive         bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        *time.Time       `gorm:"column:updated_at;autoUpdateTime:false"`
}
