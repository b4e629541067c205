package models

import "time"

type BlogPost struct {
	ID        string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedBy *string `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`
	Title     string  `gorm:"column:title;type:text" json:"title"`
	Content   *string `gorm:"column:content;type:text" json:"content,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
	IsDeleted bool       `gorm:"column:is_deleted" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz" json:"-"`
}

func (BlogPost) TableName() string { return "blog" }
