package models

import "time"

// JobCircular is a public job posting. A nil RecruitmentExpireDate means the
// posting is open-ended.
type JobCircular struct {
	ID                    string     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedBy             *string    `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`
	Title                 string     `gorm:"column:title;type:text" json:"title"`
	Description           *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	RecruitmentExpireDate *time.Time `gorm:"column:recruitment_expire_date;type:date" json:"recruitment_expire_date,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
	IsDeleted bool       `gorm:"column:is_deleted" json:"-"`
	DeletedAt *time.Time `gorm:"column:deleted_at;type:timestamptz" json:"-"`
}

func (JobCircular) TableName() string { return "job_circular" }

// ExpiredAt reports whether the posting's recruitment window has closed as of
// the given date. Postings expiring today are still open.
func (j *JobCircular) ExpiredAt(today time.Time) bool {
	if j.RecruitmentExpireDate == nil {
		return false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return j.RecruitmentExpireDate.Before(day)
}
