package export

// Column sets for each exportable entity, in the order the dashboard
// presents them.
var (
	JobColumns = []Column{
		{Key: "id", Label: "ID"},
		{Key: "title", Label: "Title"},
		{Key: "description", Label: "Description"},
		{Key: "client_name", Label: "Client Name"},
		{Key: "location", Label: "Location"},
		{Key: "status", Label: "Status"},
		{Key: "priority", Label: "Priority"},
		{Key: "required_skills", Label: "Required Skills"},
		{Key: "assigned_to_name", Label: "Assigned To"},
		{Key: "start_date", Label: "Start Date"},
		{Key: "end_date", Label: "End Date"},
		{Key: "created_by_name", Label: "Created By"},
		{Key: "created_at", Label: "Created At"},
	}

	OperativeColumns = []Column{
		{Key: "id", Label: "ID"},
		{Key: "name", Label: "Name"},
		{Key: "email", Label: "Email"},
		{Key: "phone", Label: "Phone"},
		{Key: "skills", Label: "Skills"},
		{Key: "location", Label: "Location"},
		{Key: "availability", Label: "Availability"},
		{Key: "created_at", Label: "Created At"},
	}

	RiskAssessmentColumns = []Column{
		{Key: "id", Label: "ID"},
		{Key: "title", Label: "Title"},
		{Key: "job_id", Label: "Job ID"},
		{Key: "hazards", Label: "Hazards"},
		{Key: "risks", Label: "Risks"},
		{Key: "control_measures", Label: "Control Measures"},
		{Key: "created_at", Label: "Created At"},
		{Key: "updated_at", Label: "Updated At"},
	}

	MethodStatementColumns = []Column{
		{Key: "id", Label: "ID"},
		{Key: "title", Label: "Title"},
		{Key: "job_id", Label: "Job ID"},
		{Key: "description", Label: "Description"},
		{Key: "steps", Label: "Steps"},
		{Key: "equipment_required", Label: "Equipment Required"},
		{Key: "safety_requirements", Label: "Safety Requirements"},
		{Key: "created_at", Label: "Created At"},
		{Key: "updated_at", Label: "Updated At"},
	}
)
