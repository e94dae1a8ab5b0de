package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/staffhq/staff-bot/internal/api/dto"
	"github.com/staffhq/staff-bot/internal/service"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// StaffHandler exposes staff file queries.
type StaffHandler struct {
	staff *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staff *service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// List handles GET /query/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	filters, err := parseStaffListFilters(c)
	if err != nil {
		return err
	}
	staff, err := h.staff.List(c.UserContext(), filters)
	if err != nil {
		return err
	}
	resp := make([]dto.StaffSummary, 0, len(staff))
	for i := range staff {
		resp = append(resp, staffSummary(&staff[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /query/staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	staff, err := h.staff.Profile(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffProfile(staff)})
}

// History handles GET /query/staff/:id/history.
func (h *StaffHandler) History(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	staff, err := h.staff.History(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffHistory(staff)})
}

// ByDiscordID handles GET /query/discord/:discordId.
func (h *StaffHandler) ByDiscordID(c *fiber.Ctx) error {
	staff, err := h.staff.ProfileByDiscordID(c.UserContext(), c.Params("discordId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffProfile(staff)})
}

func parseStaffListFilters(c *fiber.Ctx) (service.StaffListFilters, error) {
	filters := service.StaffListFilters{Name: c.Query("name")}
	if deptID := c.Query("department_id"); deptID != "" {
		id, err := parseID(deptID, "department_id")
		if err != nil {
			return filters, err
		}
		filters.DepartmentID = &id
	}
	if teamID := c.Query("team_id"); teamID != "" {
		id, err := parseID(teamID, "team_id")
		if err != nil {
			return filters, err
		}
		filters.TeamID = &id
	}
	if alumni := c.Query("alumni"); alumni != "" {
		if val, err := strconv.ParseBool(alumni); err == nil {
			filters.Alumni = &val
		}
	}
	offset, limit, err := parsePagination(c)
	if err != nil {
		return filters, err
	}
	filters.Offset = offset
	filters.Limit = limit
	return filters, nil
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
	maxPage         = 10000
)

// parsePagination turns page and page_size into an offset and limit. Pages
// past maxPage are rejected so the offset always fits the database column.
func parsePagination(c *fiber.Ctx) (offset, limit int, err error) {
	page := parseIntQuery(c, "page", 1)
	if page > maxPage {
		return 0, 0, apperrors.NewValidationError("page out of range",
			map[string]any{"page": c.Query("page"), "max": maxPage})
	}
	limit = parseIntQuery(c, "page_size", defaultPageSize)
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return (page - 1) * limit, limit, nil
}

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

func parseIDParam(c *fiber.Ctx, key string) (uint, error) {
	return parseID(c.Params(key), key)
}

func parseID(raw, key string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid "+key, map[string]any{key: raw})
	}
	return uint(id), nil
}
