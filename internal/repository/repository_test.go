package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/domain"
	"github.com/staffhq/staff-bot/internal/repository"
	"github.com/staffhq/staff-bot/internal/testutil"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

func newRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	return repository.New(testutil.NewGorm(t))
}

func seedStaff(t *testing.T, repos *repository.Repositories, name string) *domain.StaffFile {
	t.Helper()
	staff := &domain.StaffFile{Name: name}
	require.NoError(t, repos.Staff.Create(context.Background(), staff))
	return staff
}

func TestStaffNameIsUnique(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	seedStaff(t, repos, "Ada Lovelace")

	err := repos.Staff.Create(ctx, &domain.StaffFile{Name: "Ada Lovelace"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.Equal(t, apperrors.CodeConflict, apperrors.ToDomainError(err).Code)
}

func TestPositionTitleAndDepartmentNameAreUnique(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	require.NoError(t, repos.Positions.Create(ctx, &domain.Position{Title: "Moderator"}))
	assert.ErrorIs(t, repos.Positions.Create(ctx, &domain.Position{Title: "Moderator"}), gorm.ErrDuplicatedKey)

	require.NoError(t, repos.Departments.Create(ctx, &domain.Department{Name: "Support"}))
	assert.ErrorIs(t, repos.Departments.Create(ctx, &domain.Department{Name: "Support"}), gorm.ErrDuplicatedKey)
}

func TestStaffEmailMustBeEmailShaped(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	bad := "not-an-email"
	err := repos.Staff.Create(ctx, &domain.StaffFile{Name: "Grace", PersonalEmail: &bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	good := "grace@example.com"
	require.NoError(t, repos.Staff.Create(ctx, &domain.StaffFile{Name: "Grace", CompanyEmail: &good}))
}

func TestDiscordInformationValidation(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	staff := seedStaff(t, repos, "Linus")

	cases := []struct {
		name      string
		username  string
		discordID string
	}{
		{"missing discriminator", "linus", "123456789012345678"},
		{"short discriminator", "linus#12", "123456789012345678"},
		{"short snowflake", "linus#1234", "1234567890123456"},
		{"non-numeric snowflake", "linus#1234", "12345678901234567a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repos.Discord.Link(ctx, staff.ID, tc.username, tc.discordID)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidRecord)
		})
	}

	info, err := repos.Discord.Link(ctx, staff.ID, "linus#0001", "123456789012345678")
	require.NoError(t, err)
	assert.NotZero(t, info.ID)
}

func TestDiscordIDIsUnique(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	first := seedStaff(t, repos, "First")
	second := seedStaff(t, repos, "Second")

	_, err := repos.Discord.Link(ctx, first.ID, "first#0001", "111111111111111111")
	require.NoError(t, err)

	_, err = repos.Discord.Link(ctx, second.ID, "second#0002", "111111111111111111")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGetByDiscordIDLoadsProfile(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	dept := &domain.Department{Name: "Engineering"}
	require.NoError(t, repos.Departments.Create(ctx, dept))
	team := &domain.Team{Name: "Platform", DepartmentID: &dept.ID}
	require.NoError(t, repos.Teams.Create(ctx, team))
	sup := &domain.Supervisor{Title: "Lead"}
	require.NoError(t, repos.Supervisors.Create(ctx, sup))
	pos := &domain.Position{Title: "Engineer", DepartmentID: &dept.ID}
	require.NoError(t, repos.Positions.Create(ctx, pos))

	staff := &domain.StaffFile{Name: "Margaret", TeamID: &team.ID, DepartmentID: &dept.ID, SupervisorID: &sup.ID}
	require.NoError(t, repos.Staff.Create(ctx, staff))
	require.NoError(t, repos.Staff.AssignPosition(ctx, staff.ID, pos.ID))
	require.NoError(t, repos.Staff.AssignPosition(ctx, staff.ID, pos.ID))
	_, err := repos.Discord.Link(ctx, staff.ID, "margaret#1969", "222222222222222222")
	require.NoError(t, err)

	profile, err := repos.Staff.GetByDiscordID(ctx, "222222222222222222")
	require.NoError(t, err)
	assert.Equal(t, "Margaret", profile.Name)
	require.NotNil(t, profile.Team)
	assert.Equal(t, "Platform", profile.Team.Name)
	require.NotNil(t, profile.Department)
	assert.Equal(t, "Engineering", profile.Department.Name)
	require.NotNil(t, profile.Supervisor)
	assert.Equal(t, "Lead", profile.Supervisor.Title)
	require.NotNil(t, profile.DiscordInformation)
	assert.Equal(t, "margaret#1969", profile.DiscordInformation.Username)
	require.Len(t, profile.Positions, 1)
	assert.Equal(t, "Engineer", profile.Positions[0].Title)

	holder, err := repos.Supervisors.Holder(ctx, sup.ID)
	require.NoError(t, err)
	assert.Equal(t, staff.ID, holder.ID)

	holders, err := repos.Positions.Holders(ctx, pos.ID)
	require.NoError(t, err)
	require.Len(t, holders, 1)

	_, err = repos.Staff.GetByDiscordID(ctx, "333333333333333333")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTeamSupervisorJunction(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	dept := &domain.Department{Name: "Ops"}
	require.NoError(t, repos.Departments.Create(ctx, dept))
	alpha := &domain.Team{Name: "Alpha", DepartmentID: &dept.ID}
	beta := &domain.Team{Name: "Beta", DepartmentID: &dept.ID}
	require.NoError(t, repos.Teams.Create(ctx, alpha))
	require.NoError(t, repos.Teams.Create(ctx, beta))
	sup := &domain.Supervisor{Title: "Shift Lead"}
	require.NoError(t, repos.Supervisors.Create(ctx, sup))

	require.NoError(t, repos.Teams.AddSupervisor(ctx, alpha.ID, sup.ID))
	require.NoError(t, repos.Teams.AddSupervisor(ctx, beta.ID, sup.ID))

	teams, err := repos.Supervisors.Teams(ctx, sup.ID)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Alpha", teams[0].Name)
	assert.Equal(t, "Beta", teams[1].Name)

	sups, err := repos.Teams.Supervisors(ctx, alpha.ID)
	require.NoError(t, err)
	require.Len(t, sups, 1)
	assert.Equal(t, sup.ID, sups[0].ID)

	deptTeams, err := repos.Departments.Teams(ctx, dept.ID)
	require.NoError(t, err)
	assert.Len(t, deptTeams, 2)

	require.NoError(t, repos.Teams.RemoveSupervisor(ctx, alpha.ID, sup.ID))
	sups, err = repos.Teams.Supervisors(ctx, alpha.ID)
	require.NoError(t, err)
	assert.Empty(t, sups)
}

func TestRecordStrikeIncrementsCounter(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	staff := seedStaff(t, repos, "Barbara")

	for i := 0; i < 2; i++ {
		entry := &domain.StrikeHistory{DisciplineEntry: domain.DisciplineEntry{
			Details:       "late to shift",
			DateGiven:     time.Now().Add(time.Duration(i) * time.Hour),
			Administrator: "444444444444444444",
			StaffFileID:   staff.ID,
		}}
		require.NoError(t, repos.Discipline.RecordStrike(ctx, entry))
	}

	reloaded, err := repos.Staff.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Strikes)
	assert.Zero(t, reloaded.Censures)

	strikes, err := repos.Discipline.Strikes(ctx, staff.ID)
	require.NoError(t, err)
	assert.Len(t, strikes, 2)

	history, err := repos.Staff.GetHistory(ctx, staff.ID)
	require.NoError(t, err)
	assert.Len(t, history.StrikeHistory, 2)
}

func TestRecordRequiresExistingStaff(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	err := repos.Discipline.RecordCensure(ctx, &domain.CensureHistory{DisciplineEntry: domain.DisciplineEntry{
		Details:       "spam",
		DateGiven:     time.Now(),
		Administrator: "444444444444444444",
		StaffFileID:   9999,
	}})
	assert.True(t, apperrors.IsNotFound(err))

	censures, err := repos.Discipline.Censures(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, censures)
}

func TestRecordBreakRejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	staff := seedStaff(t, repos, "Edsger")
	now := time.Now()

	err := repos.Discipline.RecordBreak(ctx, &domain.BreakRecord{
		DateFrom:    now,
		DateTo:      now.Add(-time.Hour),
		Reason:      "holiday",
		Approval:    "555555555555555555",
		StaffFileID: staff.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRecord)

	require.NoError(t, repos.Discipline.RecordBreak(ctx, &domain.BreakRecord{
		DateFrom:    now,
		DateTo:      now.Add(72 * time.Hour),
		Reason:      "holiday",
		Approval:    "555555555555555555",
		StaffFileID: staff.ID,
	}))
	breaks, err := repos.Discipline.Breaks(ctx, staff.ID)
	require.NoError(t, err)
	assert.Len(t, breaks, 1)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	boom := errors.New("boom")

	err := repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Staff.Create(ctx, &domain.StaffFile{Name: "Rolled Back"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repos.Staff.GetByName(ctx, "Rolled Back")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListStaffFilters(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	dept := &domain.Department{Name: "Design"}
	require.NoError(t, repos.Departments.Create(ctx, dept))
	require.NoError(t, repos.Staff.Create(ctx, &domain.StaffFile{Name: "Alice", DepartmentID: &dept.ID}))
	require.NoError(t, repos.Staff.Create(ctx, &domain.StaffFile{Name: "Alfred", Alumni: true}))
	require.NoError(t, repos.Staff.Create(ctx, &domain.StaffFile{Name: "Bob"}))

	all, err := repos.Staff.List(ctx, repository.StaffFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	al, err := repos.Staff.List(ctx, repository.StaffFilter{Name: "AL"})
	require.NoError(t, err)
	assert.Len(t, al, 2)

	alumni := true
	former, err := repos.Staff.List(ctx, repository.StaffFilter{Alumni: &alumni})
	require.NoError(t, err)
	require.Len(t, former, 1)
	assert.Equal(t, "Alfred", former[0].Name)

	inDept, err := repos.Staff.List(ctx, repository.StaffFilter{DepartmentID: &dept.ID})
	require.NoError(t, err)
	require.Len(t, inDept, 1)
	assert.Equal(t, "Alice", inDept[0].Name)

	counts, err := repos.Counts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, counts.StaffFiles)
	assert.EqualValues(t, 1, counts.Departments)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	staff := seedStaff(t, repos, "Ken")

	status := "active"
	staff.ActivityStatus = &status
	require.NoError(t, repos.Staff.Update(ctx, staff))

	reloaded, err := repos.Staff.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ActivityStatus)
	assert.Equal(t, "active", *reloaded.ActivityStatus)

	require.NoError(t, repos.Staff.Delete(ctx, staff.ID))
	assert.True(t, apperrors.IsNotFound(repos.Staff.Delete(ctx, staff.ID)))
}

func TestTicketsAndPanels(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	panel := &domain.TicketPanel{
		Name:          "Support",
		Value:         "support",
		Description:   "Open a support ticket",
		ChannelPrefix: "support",
		GuildID:       "666666666666666666",
		ButtonName:    "Open",
		TPGUID:        "panel-1",
		MessageLink:   "https://discord.com/channels/1/2/3",
		Category:      "777777777777777777",
		LogChannel:    "888888888888888888",
	}
	require.NoError(t, repos.Tickets.CreatePanel(ctx, panel))

	ticket := &domain.Ticket{
		ChannelID:   "999999999999999999",
		AuthorID:    "123123123123123123",
		PanelTPGUID: panel.TPGUID,
		Status:      domain.TicketStatusOpen,
		OpenDate:    time.Now(),
	}
	require.NoError(t, repos.Tickets.Create(ctx, ticket))

	open := domain.TicketStatusOpen
	list, err := repos.Tickets.List(ctx, repository.TicketFilter{Status: &open})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	closedAt := time.Now()
	closed, err := repos.Tickets.Close(ctx, ticket.ID, closedAt)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, closed.Status)
	require.NotNil(t, closed.CloseDate)

	list, err = repos.Tickets.List(ctx, repository.TicketFilter{Status: &open})
	require.NoError(t, err)
	assert.Empty(t, list)

	panels, err := repos.Tickets.Panels(ctx, "666666666666666666")
	require.NoError(t, err)
	assert.Len(t, panels, 1)

	_, err = repos.Tickets.PanelByTPGUID(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}
