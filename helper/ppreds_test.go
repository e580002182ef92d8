package helper

import (
	"testing"
	"time"
)

func clockMinutes(t *testing.T, clock string) int {
	t.Helper()
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		t.Fatalf("prediction %q is not HH:MM: %v", clock, err)
	}
	return parsed.Hour()*60 + parsed.Minute()
}

func TestPredictClockOutNeedsHistory(t *testing.T) {
	if _, err := PredictClockOut([][2]int{{540, 1080}}, 540); err == nil {
		t.Fatalf("expected error with a single shift of history")
	}
}

func TestPredictClockOutFitsHistory(t *testing.T) {
	history := [][2]int{
		{480, 1015},
		{540, 1085},
		{600, 1140},
		{510, 1050},
	}

	got, err := PredictClockOut(history, 540)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if diff := clockMinutes(t, got) - 1080; diff < -5 || diff > 5 {
		t.Fatalf("PredictClockOut = %s, want about 18:00", got)
	}
}

func TestPredictClockOutConstantClockIn(t *testing.T) {
	cases := []struct {
		name    string
		history [][2]int
		want    string
	}{
		{"identical shifts", [][2]int{{540, 1080}, {540, 1080}, {540, 1080}}, "18:00"},
		{"varied clock-outs", [][2]int{{540, 1070}, {540, 1080}, {540, 1090}, {540, 1100}}, "18:05"},
		{"overnight", [][2]int{{1320, 420}, {1320, 420}, {1320, 480}}, "07:20"},
	}

	for _, tc := range cases {
		got, err := PredictClockOut(tc.history, tc.history[0][0])
		if err != nil {
			t.Fatalf("%s: predict: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: PredictClockOut = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestMinutesToClockWraps(t *testing.T) {
	if got := minutesToClock(1500); got != "01:00" {
		t.Fatalf("minutesToClock(1500) = %s", got)
	}
	if got := minutesToClock(1019.6); got != "17:00" {
		t.Fatalf("minutesToClock(1019.6) = %s", got)
	}
}
