package models

import "time"

// BaseModel replaces gorm.Model so deletes are hard deletes. Rows removed
// through the API are gone, matching the cascade behavior on jobs.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
