package models

import (
	"time"

	"github.com/lib/pq"
)

type About struct {
	ID              string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title           string         `gorm:"column:title;type:text" json:"title"`
	FounderName     *string        `gorm:"column:founder_name;type:text" json:"founder_name,omitempty"`
	Mission         *string        `gorm:"column:mission;type:text" json:"mission,omitempty"`
	Description     *string        `gorm:"column:description;type:text" json:"description,omitempty"`
	Story           *string        `gorm:"column:story;type:text" json:"story,omitempty"`
	CoreValues      pq.StringArray `gorm:"column:core_values;type:text[]" json:"core_values"`
	FounderImageURL *string        `gorm:"column:founder_image_url;type:text" json:"founder_image_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (About) TableName() string { return "about" }
