package turnover

import (
	"errors"
	"testing"
	"time"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
)

func TestNextTurnoverDate(t *testing.T) {
	tests := []struct {
		name     string
		monthDay string
		now      time.Time
		want     string
	}{
		{"later this year", "03-01", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), "2026-03-01"},
		{"already passed", "03-01", time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), "2027-03-01"},
		{"today", "10-15", time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC), "2026-10-15"},
		{"leap day in leap year", "02-29", time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC), "2028-02-29"},
		{"leap day otherwise", "02-29", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextTurnoverDate(tt.monthDay, tt.now)
			if err != nil {
				t.Fatalf("NextTurnoverDate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NextTurnoverDate(%q) = %s, want %s", tt.monthDay, got, tt.want)
			}
		})
	}
}

func TestNextTurnoverDateRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "13-01", "3/1", "02-30"} {
		if _, err := NextTurnoverDate(in, time.Now()); !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("NextTurnoverDate(%q) error = %v, want validation", in, err)
		}
	}
}
