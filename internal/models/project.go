package models

import (
	"time"

	"github.com/lib/pq"
)

// Project is a portfolio entry from the individual_projects table.
type Project struct {
	ID             string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PortfolioID    string         `gorm:"column:portfolio_id;type:uuid;index" json:"portfolio_id"`
	Title          string         `gorm:"column:title;type:text" json:"title"`
	TechnologyUsed pq.StringArray `gorm:"column:technology_used;type:text[]" json:"technology_used"`
	Description    *string        `gorm:"column:description;type:text" json:"description,omitempty"`
	Link           *string        `gorm:"column:link;type:text" json:"link,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
	IsDeleted bool       `gorm:"column:is_deleted" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz" json:"-"`
}

func (Project) TableName() string { return "individual_projects" }
