package dto

import "time"

// StaffSummary is a staff file as listed.
type StaffSummary struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	ActivityStatus *string `json:"activity_status,omitempty"`
	Alumni         bool    `json:"alumni"`
	TeamID         *uint   `json:"team_id,omitempty"`
	DepartmentID   *uint   `json:"department_id,omitempty"`
	Strikes        int     `json:"strikes"`
	Censures       int     `json:"censures"`
	PIPs           int     `json:"pips"`
}

// DiscordLink is a staff file's Discord account.
type DiscordLink struct {
	Username  string `json:"username"`
	DiscordID string `json:"discord_id"`
}

// StaffProfile is a staff file with its direct relations.
type StaffProfile struct {
	StaffSummary
	PersonalEmail  *string             `json:"personal_email,omitempty"`
	CompanyEmail   *string             `json:"company_email,omitempty"`
	PhotoLink      *string             `json:"photo_link,omitempty"`
	Phone          *string             `json:"phone,omitempty"`
	LegalSex       *string             `json:"legal_sex,omitempty"`
	GenderIdentity *string             `json:"gender_identity,omitempty"`
	Ethnicity      *string             `json:"ethnicity,omitempty"`
	AppStatus      *string             `json:"app_status,omitempty"`
	Discord        *DiscordLink        `json:"discord,omitempty"`
	Team           *TeamResponse       `json:"team,omitempty"`
	Department     *DepartmentResponse `json:"department,omitempty"`
	Supervises     *SupervisorResponse `json:"supervises,omitempty"`
	Positions      []PositionResponse  `json:"positions"`
}

// TenureResponse is one position history entry.
type TenureResponse struct {
	Title  string     `json:"title"`
	Dept   string     `json:"dept"`
	Team   *string    `json:"team,omitempty"`
	Joined time.Time  `json:"joined"`
	Quit   *time.Time `json:"quit,omitempty"`
}

// DisciplineResponse is one strike, censure or PIP entry.
type DisciplineResponse struct {
	ID            uint      `json:"id"`
	Details       string    `json:"details"`
	DateGiven     time.Time `json:"date_given"`
	Administrator string    `json:"administrator"`
	EvidenceLink  *string   `json:"evidence_link,omitempty"`
}

// BreakResponse is one leave period.
type BreakResponse struct {
	ID       uint      `json:"id"`
	DateFrom time.Time `json:"date_from"`
	DateTo   time.Time `json:"date_to"`
	Reason   string    `json:"reason"`
	Approval string    `json:"approval"`
}

// StaffHistory is a staff file's tenure and discipline record.
type StaffHistory struct {
	ID        uint                 `json:"id"`
	Name      string               `json:"name"`
	Positions []TenureResponse     `json:"positions"`
	Strikes   []DisciplineResponse `json:"strikes"`
	Censures  []DisciplineResponse `json:"censures"`
	PIPs      []DisciplineResponse `json:"pips"`
	Breaks    []BreakResponse      `json:"breaks"`
}
