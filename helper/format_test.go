package helper

import (
	"testing"
	"time"
)

func minutes(n int) *int {
	return &n
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   *int
		want string
	}{
		{nil, "-"},
		{minutes(0), "0:00"},
		{minutes(60), "1:00"},
		{minutes(90), "1:30"},
		{minutes(480), "8:00"},
		{minutes(605), "10:05"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.in); got != tt.want {
			t.Fatalf("FormatMinutes(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMinutesJapanese(t *testing.T) {
	tests := []struct {
		in   *int
		want string
	}{
		{nil, "-"},
		{minutes(0), "0分"},
		{minutes(30), "30分"},
		{minutes(60), "1時間"},
		{minutes(90), "1時間30分"},
		{minutes(480), "8時間"},
	}

	for _, tt := range tests {
		if got := FormatMinutesJapanese(tt.in); got != tt.want {
			t.Fatalf("FormatMinutesJapanese(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatIsStable(t *testing.T) {
	v := minutes(135)
	if FormatMinutes(v) != FormatMinutes(v) || FormatMinutesJapanese(v) != FormatMinutesJapanese(v) {
		t.Fatalf("formatting the same value twice differed")
	}
}

func TestParseTimestamp(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)

	tests := []string{
		"2026-01-20T09:30:00+09:00",
		"2026-01-20T09:30:00",
		"2026-01-20T09:30",
		"2026-01-20 09:30:00",
		"2026-01-20 09:30",
	}
	want := time.Date(2026, 1, 20, 9, 30, 0, 0, jst)

	for _, in := range tests {
		got, err := ParseTimestamp(in, jst)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("parse %q = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseTimestamp("yesterday", jst); err == nil {
		t.Fatalf("expected error for free text")
	}
}

func TestWorkDateAndMinuteOfDay(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	utc := time.Date(2026, 1, 20, 16, 30, 0, 0, time.UTC)

	if got := WorkDate(utc, jst); got != "2026-01-21" {
		t.Fatalf("WorkDate = %s", got)
	}
	if got := MinuteOfDay(utc, jst); got != 90 {
		t.Fatalf("MinuteOfDay = %d", got)
	}
}
