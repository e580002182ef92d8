package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/raveogahee/timecard/helper"
	"gorm.io/gorm"
)

const (
	StatusWorking   = "working"
	StatusCompleted = "completed"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAlreadyWorking   = errors.New("employee already has a working shift")
	ErrNoWorkingShift   = errors.New("employee has no working shift")
)

// Attendance is one shift. OpenEmployeeID mirrors EmployeeID while the
// shift is working and is NULL once it is closed; its unique index keeps
// an employee to a single open shift.
type Attendance struct {
	ID             string     `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID     string     `gorm:"type:char(36);not null;uniqueIndex:idx_attendance_shift,priority:1" json:"employee_id"`
	WorkDate       string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_shift,priority:2;index" json:"work_date"`
	ShiftNumber    int        `gorm:"not null;uniqueIndex:idx_attendance_shift,priority:3" json:"shift_number"`
	ClockIn        time.Time  `gorm:"not null" json:"clock_in"`
	ClockOut       *time.Time `json:"clock_out"`
	BreakMinutes   int        `gorm:"not null;default:0" json:"break_minutes"`
	WorkMinutes    int        `gorm:"not null;default:0" json:"work_minutes"`
	IsOvernight    bool       `gorm:"not null;default:false" json:"is_overnight"`
	Status         string     `gorm:"type:varchar(20);not null;index" json:"status"`
	OpenEmployeeID *string    `gorm:"type:char(36);uniqueIndex" json:"-"`
	Note           *string    `gorm:"type:text" json:"note"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Attendance) TableName() string {
	return "attendance"
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// FindWorkingShift returns the employee's open shift, whatever day it
// started on.
func FindWorkingShift(db *gorm.DB, employeeID string) (*Attendance, error) {
	var working Attendance
	err := db.Where("employee_id = ? AND status = ?", employeeID, StatusWorking).
		Order("clock_in desc").
		First(&working).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoWorkingShift
		}
		return nil, fmt.Errorf("find working shift: %w", err)
	}
	return &working, nil
}

// StartShift opens a shift for an active employee at now. The work date
// and shift number come from now's calendar day in loc.
func StartShift(db *gorm.DB, employeeID string, now time.Time, loc *time.Location) (*Attendance, error) {
	var created Attendance

	err := db.Transaction(func(tx *gorm.DB) error {
		var employee Employee
		if err := tx.Where("id = ? AND is_active = ?", employeeID, true).First(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("find employee: %w", err)
		}

		if _, err := FindWorkingShift(tx, employeeID); err == nil {
			return ErrAlreadyWorking
		} else if !errors.Is(err, ErrNoWorkingShift) {
			return err
		}

		workDate := helper.WorkDate(now, loc)
		shiftNumber := 1
		var last Attendance
		err := tx.Where("employee_id = ? AND work_date = ?", employeeID, workDate).
			Order("shift_number desc").
			First(&last).Error
		switch {
		case err == nil:
			shiftNumber = last.ShiftNumber + 1
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("find last shift: %w", err)
		}

		openMarker := employeeID
		created = Attendance{
			EmployeeID:     employeeID,
			WorkDate:       workDate,
			ShiftNumber:    shiftNumber,
			ClockIn:        now,
			Status:         StatusWorking,
			OpenEmployeeID: &openMarker,
		}
		if err := tx.Create(&created).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyWorking
			}
			return fmt.Errorf("create attendance: %w", err)
		}

		return logPunch(tx, employeeID, PunchClockIn, now)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// EndShift closes the employee's working shift at now and credits it.
// A positive overtimeMinutes is recorded in the note.
func EndShift(db *gorm.DB, employeeID string, now time.Time, overtimeMinutes int) (*Attendance, error) {
	var closed Attendance

	err := db.Transaction(func(tx *gorm.DB) error {
		working, err := FindWorkingShift(tx, employeeID)
		if err != nil {
			return err
		}

		var note *string
		if overtimeMinutes > 0 {
			text := fmt.Sprintf("残業%d分", overtimeMinutes)
			note = &text
		}

		result := helper.CalculateWorkTime(working.ClockIn, now)
		updates := map[string]interface{}{
			"clock_out":        now,
			"break_minutes":    result.BreakMinutes,
			"work_minutes":     result.WorkMinutes,
			"is_overnight":     result.IsOvernight,
			"status":           StatusCompleted,
			"open_employee_id": nil,
			"note":             note,
		}
		if err := tx.Model(working).Updates(updates).Error; err != nil {
			return fmt.Errorf("close attendance: %w", err)
		}

		if err := logPunch(tx, employeeID, PunchClockOut, now); err != nil {
			return err
		}

		return tx.First(&closed, "id = ?", working.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &closed, nil
}

// RecentCompletedShifts returns up to limit closed shifts, newest first.
func RecentCompletedShifts(db *gorm.DB, employeeID string, limit int) ([]Attendance, error) {
	var shifts []Attendance
	err := db.Where("employee_id = ? AND status = ? AND clock_out IS NOT NULL", employeeID, StatusCompleted).
		Order("clock_in desc").
		Limit(limit).
		Find(&shifts).Error
	if err != nil {
		return nil, fmt.Errorf("find recent shifts: %w", err)
	}
	return shifts, nil
}

// StaleWorkingShifts lists open shifts whose work date is before today.
func StaleWorkingShifts(db *gorm.DB, today string) ([]Attendance, error) {
	var stale []Attendance
	err := db.Preload("Employee").
		Where("status = ? AND work_date < ?", StatusWorking, today).
		Order("work_date asc").
		Find(&stale).Error
	if err != nil {
		return nil, fmt.Errorf("find stale shifts: %w", err)
	}
	return stale, nil
}

func logPunch(tx *gorm.DB, employeeID, punchType string, at time.Time) error {
	entry := PunchLog{EmployeeID: employeeID, PunchType: punchType, PunchTime: at}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("log %s punch: %w", punchType, err)
	}
	return nil
}
