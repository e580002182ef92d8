package scheduler

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/raveogahee/timecard/config"
	"github.com/raveogahee/timecard/helper"
	"github.com/raveogahee/timecard/models"
)

func TestSweepStaleShifts(t *testing.T) {
	db, err := models.OpenDatabase("sqlite", filepath.Join(t.TempDir(), "timecard.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	employee := models.Employee{Name: "小林", IsActive: true}
	if err := db.Create(&employee).Error; err != nil {
		t.Fatalf("create employee: %v", err)
	}

	yesterday := time.Date(2026, 1, 19, 21, 0, 0, 0, config.Location)
	if _, err := models.StartShift(db, employee.ID, yesterday, config.Location); err != nil {
		t.Fatalf("start shift: %v", err)
	}

	helper.Now = func() time.Time { return yesterday.Add(2 * time.Hour) }
	defer func() { helper.Now = time.Now }()

	stale, err := SweepStaleShifts(db)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(stale) != 0 {
		t.Fatalf("shift from the same day reported stale")
	}

	helper.Now = func() time.Time { return yesterday.Add(12 * time.Hour) }
	stale, err = SweepStaleShifts(db)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(stale) != 1 || stale[0].Status != models.StatusWorking {
		t.Fatalf("stale = %+v", stale)
	}
}

func TestStartRejectsBadSpec(t *testing.T) {
	if _, err := Start(nil, "not a schedule"); err == nil {
		t.Fatalf("expected error for invalid cron spec")
	}
}

func TestStartAndStop(t *testing.T) {
	c, err := Start(nil, "@every 1h")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	<-c.Stop().Done()
}
