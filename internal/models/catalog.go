package models

import "time"

type Service struct {
	ID          string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string  `gorm:"column:name;type:text" json:"name"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
	IsDeleted bool       `gorm:"column:is_deleted" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz" json:"-"`
}

func (Service) TableName() string { return "services" }

type Product struct {
	ID          string   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string   `gorm:"column:name;type:text" json:"name"`
	Description *string  `gorm:"column:description;type:text" json:"description,omitempty"`
	ServiceID   string   `gorm:"column:service_id;type:uuid;index" json:"service_id"`
	Free        *bool    `gorm:"column:free" json:"free,omitempty"`
	Price       *float64 `gorm:"column:price" json:"price,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
	IsDeleted bool       `gorm:"column:is_deleted" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz" json:"-"`
}

func (Product) TableName() string { return "product" }
