package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PunchClockIn  = "clock_in"
	PunchClockOut = "clock_out"
)

type PunchLog struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID string    `gorm:"type:char(36);not null;index" json:"employee_id"`
	PunchType  string    `gorm:"type:varchar(20);not null" json:"punch_type"`
	PunchTime  time.Time `gorm:"not null" json:"punch_time"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PunchLog) TableName() string {
	return "punch_logs"
}

func (p *PunchLog) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
