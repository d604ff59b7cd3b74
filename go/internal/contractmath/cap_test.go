package contractmath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

func TestProjectTeamCap(t *testing.T) {
	contracts := []models.Contract{
		{CurrentSalary: 30_000_000, Status: models.ContractStatusActive},
		{CurrentSalary: 20_000_000, Status: models.ContractStatusActive},
		{CurrentSalary: 99_000_000, Status: models.ContractStatusCut},
		{CurrentSalary: 5_000_000, Status: models.ContractStatusExpired},
	}
	deadMoney := []models.DeadMoney{
		{Amount: 10_000_000, Season: 2025},
		{Amount: 2_500_000, Season: 2026},
	}

	got, err := ProjectTeamCap(contracts, deadMoney, 200_000_000, 2025)
	if err != nil {
		t.Fatalf("ProjectTeamCap() error = %v", err)
	}

	want := CapProjection{
		Season:           2025,
		SalaryCap:        200_000_000,
		ContractSalaries: 50_000_000,
		DeadMoney:        10_000_000,
		UsedCap:          60_000_000,
		AvailableCap:     140_000_000,
		UsedPercentage:   30,
		ActiveContracts:  2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ProjectTeamCap() mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectTeamCapRejectsNonPositiveCap(t *testing.T) {
	for _, salaryCap := range []int64{0, -1} {
		_, err := ProjectTeamCap([]models.Contract{{CurrentSalary: 1, Status: models.ContractStatusActive}}, nil, salaryCap, 2025)
		if !errors.Is(err, ErrInvalidSalaryCap) {
			t.Errorf("cap %d: error = %v, want ErrInvalidSalaryCap", salaryCap, err)
		}
		if !errors.Is(err, apperr.ErrValidation) {
			t.Errorf("cap %d: error = %v, want validation category", salaryCap, err)
		}
	}
}

func TestValidateCapSpace(t *testing.T) {
	p := CapProjection{SalaryCap: 100, UsedCap: 80}

	tests := []struct {
		name       string
		commitment int64
		want       CapCheck
	}{
		{"fits", 10, CapCheck{OK: true}},
		{"exactly at cap", 20, CapCheck{OK: true}},
		{"over cap", 35, CapCheck{OK: false, Shortfall: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCapSpace(p, tt.commitment); got != tt.want {
				t.Errorf("ValidateCapSpace(%d) = %+v, want %+v", tt.commitment, got, tt.want)
			}
		})
	}
}

func TestProjectCapByYear(t *testing.T) {
	contracts := []models.Contract{
		{CurrentSalary: 1000, YearsRemaining: 1, Status: models.ContractStatusActive},
		{CurrentSalary: 2000, YearsRemaining: 3, Status: models.ContractStatusActive},
		{CurrentSalary: 500, YearsRemaining: 2, Status: models.ContractStatusCut},
	}
	deadMoney := []models.DeadMoney{
		{Amount: 100, Season: 2025},
		{Amount: 50, Season: 2026},
		{Amount: 50, Season: 2026},
	}

	got, err := ProjectCapByYear(contracts, deadMoney, 10_000, 2025, 3, 10)
	if err != nil {
		t.Fatalf("ProjectCapByYear() error = %v", err)
	}

	want := []struct {
		season   int
		salaries int64
		dead     int64
		active   int
	}{
		{2025, 3000, 100, 2},
		{2026, 2200, 100, 1},
		{2027, 2420, 0, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d projections, want %d", len(got), len(want))
	}
	for i, w := range want {
		p := got[i]
		if p.Season != w.season || p.ContractSalaries != w.salaries || p.DeadMoney != w.dead || p.ActiveContracts != w.active {
			t.Errorf("year %d = %+v, want season %d salaries %d dead %d active %d", i, p, w.season, w.salaries, w.dead, w.active)
		}
		if p.UsedCap != p.ContractSalaries+p.DeadMoney || p.AvailableCap != p.SalaryCap-p.UsedCap {
			t.Errorf("year %d totals inconsistent: %+v", i, p)
		}
	}
}

func TestProjectCapByYearRejectsZeroCap(t *testing.T) {
	if _, err := ProjectCapByYear(nil, nil, 0, 2025, 2, 15); !errors.Is(err, ErrInvalidSalaryCap) {
		t.Errorf("error = %v, want ErrInvalidSalaryCap", err)
	}
}
