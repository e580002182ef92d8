package scheduler

import (
	"fmt"
	"log"

	"github.com/raveogahee/timecard/config"
	"github.com/raveogahee/timecard/helper"
	"github.com/raveogahee/timecard/models"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SweepStaleShifts logs every shift still open from an earlier work date.
// Those shifts are left open for an admin to correct, since the real
// clock-out time is unknown.
func SweepStaleShifts(db *gorm.DB) ([]models.Attendance, error) {
	today := helper.WorkDate(helper.Now(), config.Location)

	stale, err := models.StaleWorkingShifts(db, today)
	if err != nil {
		log.Printf("Failed to look up stale shifts: %v", err)
		return nil, err
	}

	if len(stale) == 0 {
		return stale, nil
	}

	for _, shift := range stale {
		name := shift.EmployeeID
		if shift.Employee != nil {
			name = shift.Employee.Name
		}
		log.Printf("Shift %s of %s has been open since %s", shift.ID, name, shift.WorkDate)
	}
	log.Printf("%d shift(s) still open from previous days.", len(stale))

	return stale, nil
}

// Start runs SweepStaleShifts on spec until the returned cron is stopped.
func Start(db *gorm.DB, spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		SweepStaleShifts(db)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule stale shift sweep %q: %w", spec, err)
	}

	c.Start()
	return c, nil
}
