package dto

// SupervisorResponse is a supervisory role.
type SupervisorResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// DepartmentResponse is a department.
type DepartmentResponse struct {
	ID         uint                `json:"id"`
	Name       string              `json:"name"`
	Supervisor *SupervisorResponse `json:"supervisor,omitempty"`
}

// TeamResponse is a team.
type TeamResponse struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	DepartmentID *uint                `json:"department_id,omitempty"`
	Supervisors  []SupervisorResponse `json:"supervisors,omitempty"`
}

// PositionResponse is a position.
type PositionResponse struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department,omitempty"`
}
