package helper

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 1, 20, hour, minute, 0, 0, time.UTC)
}

func span(minutes int) (time.Time, time.Time) {
	start := at(9, 0)
	return start, start.Add(time.Duration(minutes) * time.Minute)
}

func TestCalculateWorkTimeTiers(t *testing.T) {
	tests := []struct {
		name      string
		clockIn   time.Time
		clockOut  time.Time
		wantWork  int
		wantBreak int
	}{
		{"5h", at(9, 0), at(14, 0), 300, 0},
		{"3h30m", at(10, 0), at(13, 30), 210, 0},
		{"5h59m", at(9, 0), at(14, 59), 359, 0},
		{"exactly 6h", at(9, 0), at(15, 0), 360, 0},
		{"6h5m credited as 6h", at(9, 0), at(15, 5), 360, 0},
		{"6h14m credited as 6h", at(9, 0), at(15, 14), 360, 0},
		{"6h15m", at(9, 0), at(15, 15), 330, 45},
		{"7h", at(9, 0), at(16, 0), 375, 45},
		{"7h59m", at(9, 0), at(16, 59), 434, 45},
		{"8h", at(9, 0), at(17, 0), 420, 60},
		{"9h", at(9, 0), at(18, 0), 480, 60},
		{"10h", at(9, 0), at(19, 0), 540, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWorkTime(tt.clockIn, tt.clockOut)
			if got.WorkMinutes != tt.wantWork {
				t.Fatalf("work minutes = %d, want %d", got.WorkMinutes, tt.wantWork)
			}
			if got.BreakMinutes != tt.wantBreak {
				t.Fatalf("break minutes = %d, want %d", got.BreakMinutes, tt.wantBreak)
			}
			if got.IsOvernight {
				t.Fatalf("expected same-day shift")
			}
		})
	}
}

func TestCalculateWorkTimeBandsEveryMinute(t *testing.T) {
	for total := 0; total <= 12*60; total++ {
		got := CalculateWorkTime(span(total))

		wantWork, wantBreak := total, 0
		switch {
		case total >= 480:
			wantWork, wantBreak = total-60, 60
		case total >= 375:
			wantWork, wantBreak = total-45, 45
		case total >= 360:
			wantWork = 360
		}

		if got.WorkMinutes != wantWork || got.BreakMinutes != wantBreak || got.IsOvernight {
			t.Fatalf("T=%d: got %+v, want work=%d break=%d", total, got, wantWork, wantBreak)
		}
	}
}

func TestCalculateWorkTimeDropAtShortBreak(t *testing.T) {
	before := CalculateWorkTime(span(374))
	after := CalculateWorkTime(span(375))

	if before.WorkMinutes != 360 {
		t.Fatalf("374 minutes credited %d, want 360", before.WorkMinutes)
	}
	if after.WorkMinutes != 330 {
		t.Fatalf("375 minutes credited %d, want 330", after.WorkMinutes)
	}
}

func TestCalculateWorkTimeOvernight(t *testing.T) {
	tests := []struct {
		name      string
		clockIn   time.Time
		clockOut  time.Time
		wantWork  int
		wantBreak int
	}{
		{"22:00 to 07:00", at(22, 0), at(7, 0), 480, 60},
		{"23:00 to 03:00", at(23, 0), at(3, 0), 240, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWorkTime(tt.clockIn, tt.clockOut)
			if !got.IsOvernight {
				t.Fatalf("expected overnight shift")
			}
			if got.WorkMinutes != tt.wantWork || got.BreakMinutes != tt.wantBreak {
				t.Fatalf("got %+v, want work=%d break=%d", got, tt.wantWork, tt.wantBreak)
			}
		})
	}
}

func TestCalculateWorkTimeActualNextDay(t *testing.T) {
	clockIn := at(22, 0)
	clockOut := clockIn.Add(9 * time.Hour)

	got := CalculateWorkTime(clockIn, clockOut)
	if got.IsOvernight {
		t.Fatalf("non-negative elapsed time must not be flagged overnight")
	}
	if got.WorkMinutes != 480 || got.BreakMinutes != 60 {
		t.Fatalf("got %+v", got)
	}
}

func TestCalculateWorkTimeDegenerate(t *testing.T) {
	got := CalculateWorkTime(at(9, 0), at(9, 0))
	if got != (WorkTimeResult{}) {
		t.Fatalf("identical instants gave %+v", got)
	}

	sub := CalculateWorkTime(at(9, 0), at(9, 0).Add(30*time.Second))
	if sub.WorkMinutes != 0 {
		t.Fatalf("30 seconds credited %d minutes", sub.WorkMinutes)
	}
}

func TestIsOvertime(t *testing.T) {
	if IsOvertime(24 * 60) {
		t.Fatalf("a full day is not overtime")
	}
	if !IsOvertime(24*60 + 1) {
		t.Fatalf("expected overtime past 24h")
	}
}
