package services

import (
	"testing"
	"time"
)

func TestIsWorkday_Weekend(t *testing.T) {
	svc := NewHolidayService()

	saturday := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	for _, code := range []string{"US", "GB", "DE", "NONE"} {
		if svc.IsWorkday(saturday, code) {
			t.Errorf("%s: Saturday should not be a workday", code)
		}
		if svc.IsWorkday(sunday, code) {
			t.Errorf("%s: Sunday should not be a workday", code)
		}
		if !svc.IsWorkday(friday, code) {
			t.Errorf("%s: a plain Friday should be a workday", code)
		}
	}
}

func TestIsWorkday_PublicHoliday(t *testing.T) {
	svc := NewHolidayService()

	// Christmas 2026 falls on a Friday.
	christmas := time.Date(2026, 12, 25, 9, 0, 0, 0, time.UTC)
	if svc.IsWorkday(christmas, "US") {
		t.Error("US: Christmas should not be a workday")
	}
	if svc.IsWorkday(christmas, "DE") {
		t.Error("DE: Christmas should not be a workday")
	}

	// The weekdays-only calendar ignores public holidays.
	if !svc.IsWorkday(christmas, "NONE") {
		t.Error("NONE: a Friday is a workday even on a public holiday")
	}
}

func TestIsWorkday_UnknownCountryFallsBackToWeekends(t *testing.T) {
	svc := NewHolidayService()

	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	if !svc.IsWorkday(monday, "XX") {
		t.Error("unknown country: Monday should be a workday")
	}
	if svc.IsWorkday(saturday, "XX") {
		t.Error("unknown country: Saturday should not be a workday")
	}
}

func TestIsHoliday_IsInverseOfIsWorkday(t *testing.T) {
	svc := NewHolidayService()

	day := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	if svc.IsHoliday(day, "US") == svc.IsWorkday(day, "US") {
		t.Error("IsHoliday should be the inverse of IsWorkday")
	}
}

func TestGetSupportedCountries(t *testing.T) {
	svc := NewHolidayService()

	countries := svc.GetSupportedCountries()
	if len(countries) == 0 {
		t.Fatal("supported country list should not be empty")
	}

	codes := make(map[string]bool, len(countries))
	for _, c := range countries {
		if c.Code == "" || c.Name == "" {
			t.Errorf("country entry should have code and name, got %+v", c)
		}
		codes[c.Code] = true
	}
	for _, want := range []string{"US", "CN", "NONE"} {
		if !codes[want] {
			t.Errorf("expected %s in supported countries", want)
		}
	}
}
