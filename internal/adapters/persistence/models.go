package persistence

import (
	"time"
)

// ShipModel represents the ships table. The ship state lives in Payload in
// save-file format; the other columns are denormalized for queries.
type ShipModel struct {
	ID            string    `gorm:"column:id;primaryKey;not null"`
	PlayerID      int       `gorm:"column:player_id;not null;index"`
	Name          string    `gorm:"column:name;not null"`
	HullName      string    `gorm:"column:hull_name;not null"`
	Payload       []byte    `gorm:"column:payload;not null"`
	MilitaryPower int       `gorm:"column:military_power;not null;default:0"`
	HullPoints    int       `gorm:"column:hull_points;not null;default:0"`
	Destroyed     bool      `gorm:"column:destroyed;not null;default:false"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (ShipModel) TableName() string {
	return "ships"
}

// CombatLogModel represents the combat_logs table, one row per trace line
type CombatLogModel struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement"`
	EngagementID string    `gorm:"column:engagement_id;not null;index"`
	Round        int       `gorm:"column:round;not null"`
	AttackerID   string    `gorm:"column:attacker_id;not null"`
	DefenderID   string    `gorm:"column:defender_id;not null"`
	Outcome      string    `gorm:"column:outcome;not null"`
	Message      string    `gorm:"column:message;type:text;not null"`
	Timestamp    time.Time `gorm:"column:timestamp;not null"`
}

func (CombatLogModel) TableName() string {
	return "combat_logs"
}
