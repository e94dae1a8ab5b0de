package handlers

import (
	"github.com/staffhq/staff-bot/internal/api/dto"
	"github.com/staffhq/staff-bot/internal/domain"
)

func staffSummary(s *domain.StaffFile) dto.StaffSummary {
	return dto.StaffSummary{
		ID:             s.ID,
		Name:           s.Name,
		ActivityStatus: s.ActivityStatus,
		Alumni:         s.Alumni,
		TeamID:         s.TeamID,
		DepartmentID:   s.DepartmentID,
		Strikes:        s.Strikes,
		Censures:       s.Censures,
		PIPs:           s.PIPs,
	}
}

func staffProfile(s *domain.StaffFile) dto.StaffProfile {
	resp := dto.StaffProfile{
		StaffSummary:   staffSummary(s),
		PersonalEmail:  s.PersonalEmail,
		CompanyEmail:   s.CompanyEmail,
		PhotoLink:      s.PhotoLink,
		Phone:          s.Phone,
		LegalSex:       s.LegalSex,
		GenderIdentity: s.GenderIdentity,
		Ethnicity:      s.Ethnicity,
		AppStatus:      s.AppStatus,
		Team:           teamResponse(s.Team),
		Department:     departmentResponse(s.Department),
		Supervises:     supervisorResponse(s.Supervisor),
		Positions:      make([]dto.PositionResponse, 0, len(s.Positions)),
	}
	if s.DiscordInformation != nil {
		resp.Discord = &dto.DiscordLink{
			Username:  s.DiscordInformation.Username,
			DiscordID: s.DiscordInformation.DiscordID,
		}
	}
	for i := range s.Positions {
		resp.Positions = append(resp.Positions, positionResponse(&s.Positions[i]))
	}
	return resp
}

func staffHistory(s *domain.StaffFile) dto.StaffHistory {
	resp := dto.StaffHistory{
		ID:        s.ID,
		Name:      s.Name,
		Positions: make([]dto.TenureResponse, 0, len(s.PositionHistories)),
		Strikes:   make([]dto.DisciplineResponse, 0, len(s.StrikeHistory)),
		Censures:  make([]dto.DisciplineResponse, 0, len(s.CensureHistory)),
		PIPs:      make([]dto.DisciplineResponse, 0, len(s.PIPHistory)),
		Breaks:    make([]dto.BreakResponse, 0, len(s.BreakRecords)),
	}
	for _, p := range s.PositionHistories {
		resp.Positions = append(resp.Positions, dto.TenureResponse{
			Title:  p.Title,
			Dept:   p.Dept,
			Team:   p.Team,
			Joined: p.Joined,
			Quit:   p.Quit,
		})
	}
	for _, e := range s.StrikeHistory {
		resp.Strikes = append(resp.Strikes, disciplineResponse(e.DisciplineEntry))
	}
	for _, e := range s.CensureHistory {
		resp.Censures = append(resp.Censures, disciplineResponse(e.DisciplineEntry))
	}
	for _, e := range s.PIPHistory {
		resp.PIPs = append(resp.PIPs, disciplineResponse(e.DisciplineEntry))
	}
	for _, b := range s.BreakRecords {
		resp.Breaks = append(resp.Breaks, dto.BreakResponse{
			ID:       b.ID,
			DateFrom: b.DateFrom,
			DateTo:   b.DateTo,
			Reason:   b.Reason,
			Approval: b.Approval,
		})
	}
	return resp
}

func disciplineResponse(e domain.DisciplineEntry) dto.DisciplineResponse {
	return dto.DisciplineResponse{
		ID:            e.ID,
		Details:       e.Details,
		DateGiven:     e.DateGiven,
		Administrator: e.Administrator,
		EvidenceLink:  e.EvidenceLink,
	}
}

func supervisorResponse(s *domain.Supervisor) *dto.SupervisorResponse {
	if s == nil {
		return nil
	}
	return &dto.SupervisorResponse{ID: s.ID, Title: s.Title}
}

func departmentResponse(d *domain.Department) *dto.DepartmentResponse {
	if d == nil {
		return nil
	}
	return &dto.DepartmentResponse{ID: d.ID, Name: d.Name, Supervisor: supervisorResponse(d.Supervisor)}
}

func teamResponse(t *domain.Team) *dto.TeamResponse {
	if t == nil {
		return nil
	}
	resp := &dto.TeamResponse{ID: t.ID, Name: t.Name, DepartmentID: t.DepartmentID}
	for i := range t.Supervisors {
		resp.Supervisors = append(resp.Supervisors, *supervisorResponse(&t.Supervisors[i]))
	}
	return resp
}

func positionResponse(p *domain.Position) dto.PositionResponse {
	resp := dto.PositionResponse{ID: p.ID, Title: p.Title}
	if p.Department != nil {
		resp.Department = p.Department.Name
	}
	return resp
}
