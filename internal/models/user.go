package models

type User struct {
	BaseModel

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `gorm:"not null" json:"full_name"`
	Role         string `gorm:"not null;default:admin" json:"role"`

	// Relationships
	CreatedJobs        []Job             `gorm:"foreignKey:CreatedBy" json:"-"`
	CreatedAssessments []RiskAssessment  `gorm:"foreignKey:CreatedBy" json:"-"`
	CreatedStatements  []MethodStatement `gorm:"foreignKey:CreatedBy" json:"-"`
	JobUpdates         []JobUpdate       `gorm:"foreignKey:UpdatedBy" json:"-"`
}
