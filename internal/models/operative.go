package models

type Operative struct {
	BaseModel

	Name         string `gorm:"not null" json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Skills       string `json:"skills"`
	Location     string `json:"location"`
	Availability string `gorm:"not null;default:available" json:"availability"` // "available", "unavailable", "on_job"

	// Relationships
	AssignedJobs []Job `gorm:"foreignKey:AssignedTo;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}
