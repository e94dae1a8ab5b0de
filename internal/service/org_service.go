package service

import (
	"context"

	"github.com/staffhq/staff-bot/internal/domain"
	"github.com/staffhq/staff-bot/internal/repository"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// OrgService exposes the organization structure: departments, teams,
// supervisors and positions.
type OrgService struct {
	repos *repository.Repositories
}

// NewOrgService constructs the service.
func NewOrgService(repos *repository.Repositories) *OrgService {
	return &OrgService{repos: repos}
}

// ListDepartments returns every department with its supervisor.
func (s *OrgService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.repos.Departments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return depts, nil
}

// DepartmentTeams returns a department's teams, each with its supervisors.
func (s *OrgService) DepartmentTeams(ctx context.Context, departmentID uint) ([]domain.Team, error) {
	if _, err := s.repos.Departments.GetByID(ctx, departmentID); err != nil {
		return nil, apperrors.MapError(err)
	}
	teams, err := s.repos.Departments.Teams(ctx, departmentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	for i := range teams {
		sups, err := s.repos.Teams.Supervisors(ctx, teams[i].ID)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		teams[i].Supervisors = sups
	}
	return teams, nil
}

// ListPositions returns every position with its department.
func (s *OrgService) ListPositions(ctx context.Context) ([]domain.Position, error) {
	positions, err := s.repos.Positions.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return positions, nil
}
