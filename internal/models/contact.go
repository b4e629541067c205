package models

import "time"

type ContactMessage struct {
	ID      string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"column:name;type:text" json:"name"`
	Email   string `gorm:"column:email;type:text" json:"email"`
	Message string `gorm:"column:message;type:text" json:"message"`
	Status  string `gorm:"column:status;type:text" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (ContactMessage) TableName() string { return "contact" }
