package models

import "time"

// JobUpdate is an append-only progress note. There is no UpdatedAt because
// updates are never edited once written.
type JobUpdate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	JobID      uint      `gorm:"not null;index" json:"job_id"`
	UpdateText string    `gorm:"not null" json:"update_text"`
	UpdatedBy  uint      `gorm:"index" json:"updated_by"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Job    Job  `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Author User `gorm:"foreignKey:UpdatedBy" json:"-"`
}
