package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staffhq/staff-bot/internal/api/dto"
	"github.com/staffhq/staff-bot/internal/service"
)

// OrgHandler exposes department, team and position queries.
type OrgHandler struct {
	org *service.OrgService
}

// NewOrgHandler constructs handler.
func NewOrgHandler(org *service.OrgService) *OrgHandler {
	return &OrgHandler{org: org}
}

// Departments handles GET /query/departments.
func (h *OrgHandler) Departments(c *fiber.Ctx) error {
	depts, err := h.org.ListDepartments(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		resp = append(resp, *departmentResponse(&depts[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// DepartmentTeams handles GET /query/departments/:id/teams.
func (h *OrgHandler) DepartmentTeams(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	teams, err := h.org.DepartmentTeams(c.UserContext(), id)
	if err != nil {
		return err
	}
	resp := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		resp = append(resp, *teamResponse(&teams[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Positions handles GET /query/positions.
func (h *OrgHandler) Positions(c *fiber.Ctx) error {
	positions, err := h.org.ListPositions(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.PositionResponse, 0, len(positions))
	for i := range positions {
		resp = append(resp, positionResponse(&positions[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}
