package models

import "time"

type Testimonial struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ClientID string `gorm:"column:client_id;type:uuid;index" json:"client_id"`
	Content  string `gorm:"column:content;type:text" json:"content"`
	Rating   *int   `gorm:"column:rating" json:"rating,omitempty"`
	Approved *bool  `gorm:"column:approved" json:"approved,omitempty"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
	IsDeleted bool       `gorm:"column:is_deleted" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz" json:"-"`
}

func (Testimonial) TableName() string { return "testimonials" }

type Client struct {
	ID             string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PlatformUserID string    `gorm:"column:platform_user_id;type:uuid;index" json:"platform_user_id"`
	Organization   *string   `gorm:"column:organization;type:text" json:"organization,omitempty"`
	JoinedAt       time.Time `gorm:"column:joined_at;type:timestamptz" json:"joined_at"`

	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
	IsDeleted bool       `gorm:"column:is_deleted" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz" json:"-"`
}

func (Client) TableName() string { return "clients" }

type PlatformUser struct {
	ID     string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid" json:"user_id"`

	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
	IsDeleted bool       `gorm:"column:is_deleted" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz" json:"-"`
}

func (PlatformUser) TableName() string { return "platform_user" }
