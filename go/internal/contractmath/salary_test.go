package contractmath

import (
	"testing"

	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

func TestCalculateAnnualSalary(t *testing.T) {
	tests := []struct {
		name   string
		salary int64
		pct    float64
		want   int64
	}{
		{"fifteen percent", 1_000_000, 15, 1_150_000},
		{"zero percent", 750_000, 0, 750_000},
		{"rounds half away from zero", 10, 15, 12}, // 11.5
		{"rounds up above half", 999, 15, 1149},    // 1148.85
		{"fractional percent", 200, 2.5, 205},
		{"zero salary", 0, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAnnualSalary(tt.salary, tt.pct); got != tt.want {
				t.Errorf("CalculateAnnualSalary(%d, %v) = %d, want %d", tt.salary, tt.pct, got, tt.want)
			}
		})
	}
}

func TestEscalationIsStableAcrossTurnovers(t *testing.T) {
	// each season rounds to whole units before the next escalation
	want := []int64{1_150_000, 1_322_500, 1_520_875, 1_749_006}
	salary := int64(1_000_000)
	for i, w := range want {
		salary = CalculateAnnualSalary(salary, 15)
		if salary != w {
			t.Fatalf("season %d: salary = %d, want %d", i+1, salary, w)
		}
	}

	if got := EscalateSalary(1_000_000, 15, len(want)); got != salary {
		t.Errorf("EscalateSalary() = %d, want %d (step by step)", got, salary)
	}
	if got := EscalateSalary(1_000_000, 15, len(want)); got != EscalateSalary(1_000_000, 15, len(want)) {
		t.Errorf("EscalateSalary not deterministic: %d", got)
	}
	if got := EscalateSalary(500, 15, 0); got != 500 {
		t.Errorf("EscalateSalary(500, 15, 0) = %d, want 500", got)
	}
}

func TestCanExtendContract(t *testing.T) {
	tests := []struct {
		name     string
		years    int
		extended bool
		want     bool
	}{
		{"final year", 1, false, true},
		{"expiring", 0, false, true},
		{"two years left", 2, false, false},
		{"already extended final year", 1, true, false},
		{"already extended long contract", 4, true, false},
		{"already extended expiring", 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Contract{YearsRemaining: tt.years, HasBeenExtended: tt.extended}
			if got := CanExtendContract(c); got != tt.want {
				t.Errorf("CanExtendContract() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanApplyFranchiseTag(t *testing.T) {
	tests := []struct {
		name     string
		years    int
		tagged   bool
		tagsUsed int
		maxTags  int
		want     bool
	}{
		{"eligible", 1, false, 0, 1, true},
		{"expiring", 0, false, 1, 2, true},
		{"too many years", 2, false, 0, 1, false},
		{"already tagged", 1, true, 0, 1, false},
		{"team out of tags", 1, false, 1, 1, false},
		{"league allows none", 1, false, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Contract{YearsRemaining: tt.years, HasBeenTagged: tt.tagged}
			if got := CanApplyFranchiseTag(c, tt.tagsUsed, tt.maxTags); got != tt.want {
				t.Errorf("CanApplyFranchiseTag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateFranchiseTagValue(t *testing.T) {
	twelve := []int64{100, 200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100, 1200}

	tests := []struct {
		name   string
		salary int64
		top    []int64
		want   int64
	}{
		{"raise wins", 1000, []int64{500, 600}, 1150},
		{"position average wins", 100, []int64{1000, 2000}, 1500},
		{"only top ten count", 0, twelve, 750}, // mean of 300..1200
		{"no salaries at position", 2000, nil, 2300},
		{"unsorted input", 0, []int64{5, 30, 10}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := models.Contract{CurrentSalary: tt.salary}
			if got := CalculateFranchiseTagValue(c, tt.top); got != tt.want {
				t.Errorf("CalculateFranchiseTagValue() = %d, want %d", got, tt.want)
			}
		})
	}
}
