package models

import "time"

type Team struct {
	ID          string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string  `gorm:"column:name;type:text" json:"name"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
	IsDeleted bool       `gorm:"column:is_deleted" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz" json:"-"`
}

func (Team) TableName() string { return "team" }
