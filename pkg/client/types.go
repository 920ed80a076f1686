package client

import "time"

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"`
}

type Operative struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Skills       string    `json:"skills"`
	Location     string    `json:"location"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type OperativeRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Skills       string `json:"skills,omitempty"`
	Location     string `json:"location,omitempty"`
	Availability string `json:"availability,omitempty"`
}

type Job struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	ClientName     string    `json:"client_name"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	RequiredSkills string    `json:"required_skills"`
	CreatedBy      uint      `json:"created_by"`
	AssignedTo     *uint     `json:"assigned_to"`
	StartDate      *string   `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	CreatedByName  string    `json:"created_by_name"`
	AssignedToName *string   `json:"assigned_to_name"`
}

type JobRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	Location       string `json:"location,omitempty"`
	ClientName     string `json:"client_name,omitempty"`
	Status         string `json:"status,omitempty"`
	Priority       string `json:"priority,omitempty"`
	RequiredSkills string `json:"required_skills,omitempty"`
	AssignedTo     *uint  `json:"assigned_to,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
}

type RiskAssessment struct {
	ID              uint      `json:"id"`
	JobID           uint      `json:"job_id"`
	Title           string    `json:"title"`
	Hazards         string    `json:"hazards"`
	Risks           string    `json:"risks"`
	ControlMeasures string    `json:"control_measures"`
	CreatedBy       uint      `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RiskAssessmentRequest struct {
	JobID           uint   `json:"job_id,omitempty"`
	Title           string `json:"title"`
	Hazards         string `json:"hazards,omitempty"`
	Risks           string `json:"risks,omitempty"`
	ControlMeasures string `json:"control_measures,omitempty"`
}

type MethodStatement struct {
	ID                 uint      `json:"id"`
	JobID              uint      `json:"job_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Steps              string    `json:"steps"`
	EquipmentRequired  string    `json:"equipment_required"`
	SafetyRequirements string    `json:"safety_requirements"`
	CreatedBy          uint      `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type MethodStatementRequest struct {
	JobID              uint   `json:"job_id,omitempty"`
	Title              string `json:"title"`
	Description        string `json:"description,omitempty"`
	Steps              string `json:"steps,omitempty"`
	EquipmentRequired  string `json:"equipment_required,omitempty"`
	SafetyRequirements string `json:"safety_requirements,omitempty"`
}

type JobUpdate struct {
	ID            uint      `json:"id"`
	JobID         uint      `json:"job_id"`
	UpdateText    string    `json:"update_text"`
	UpdatedBy     uint      `json:"updated_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedByName string    `json:"updated_by_name,omitempty"`
}

type JobDetail struct {
	Job
	RiskAssessments  []RiskAssessment  `json:"riskAssessments"`
	MethodStatements []MethodStatement `json:"methodStatements"`
	Updates          []JobUpdate       `json:"updates"`
}

type DashboardStats struct {
	TotalJobs           int64 `json:"totalJobs"`
	ActiveJobs          int64 `json:"activeJobs"`
	PendingJobs         int64 `json:"pendingJobs"`
	CompletedJobs       int64 `json:"completedJobs"`
	TotalOperatives     int64 `json:"totalOperatives"`
	AvailableOperatives int64 `json:"availableOperatives"`
}
