package domain

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// PositionStaff materializes StaffFile N-M Position.
type PositionStaff struct {
	StaffFileID uint      `gorm:"primaryKey"`
	PositionID  uint      `gorm:"primaryKey"`
	CreatedAt   time.Time
}

func (PositionStaff) TableName() string {
	return "position_staff"
}

// TeamSupervisor materializes Team N-M Supervisor.
type TeamSupervisor struct {
	TeamID       uint      `gorm:"primaryKey"`
	SupervisorID uint      `gorm:"primaryKey"`
	CreatedAt    time.Time
}

func (TeamSupervisor) TableName() string {
	return "team_supervisors"
}

// SetupJoinTables binds the junction models to their many2many relations.
// It must run on a handle before that handle migrates or queries them.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&StaffFile{}, "Positions", &PositionStaff{}); err != nil {
		return fmt.Errorf("setup position_staff: %w", err)
	}
	if err := db.SetupJoinTable(&Team{}, "Supervisors", &TeamSupervisor{}); err != nil {
		return fmt.Errorf("setup team_supervisors: %w", err)
	}
	return nil
}

// Models lists every persisted record type in migration order.
func Models() []any {
	return []any{
		&Supervisor{},
		&Department{},
		&Team{},
		&Position{},
		&StaffFile{},
		&DiscordInformation{},
		&PositionHistory{},
		&StrikeHistory{},
		&CensureHistory{},
		&PIPHistory{},
		&BreakRecord{},
		&Ticket{},
		&TicketPanel{},
		&PositionStaff{},
		&TeamSupervisor{},
	}
}
