package models

import "time"

type Application struct {
	ID            string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	JobID         string  `gorm:"column:job_id;type:uuid;index" json:"job_id"`
	ApplicantName string  `gorm:"column:applicant_name;type:text" json:"applicant_name"`
	Email         string  `gorm:"column:email;type:text" json:"email"`
	Objective     *string `gorm:"column:objective;type:text" json:"objective,omitempty"`
	CVURL         *string `gorm:"column:cv_url;type:text" json:"cv_url,omitempty"`

	Reviewed bool `gorm:"column:reviewed" json:"reviewed"`
	Approved bool `gorm:"column:approved" json:"approved"`

	AppliedAt time.Time `gorm:"column:applied_at;type:timestamptz" json:"applied_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }
