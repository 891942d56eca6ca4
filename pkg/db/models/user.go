package models

import (
	"time"
)

// User is the core identity entity. updated_at stays NULL until the first
// mutation; repositories stamp it explicitly.
type User struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Username  string     `gorm:"column:username;size:100;not null;uniqueIndex"`
	Email     string     `gorm:"column:email;size:255;not null;uniqueIndex"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`

	Projects []Project `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
