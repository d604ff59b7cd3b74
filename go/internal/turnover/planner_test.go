package turnover

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

func testLeague() models.League {
	return models.League{
		ID:             uuid.New(),
		Name:           "Salary Cap Dynasty",
		CommissionerID: uuid.New(),
		Season:         2025,
		Settings: models.LeagueConfiguration{
			SalaryCap:                200_000_000,
			AnnualIncreasePercentage: 15,
			MaxFranchiseTags:         1,
			SeasonTurnoverDate:       "03-01",
		},
	}
}

func contract(league models.League, name string, salary int64, years int, extended, tagged bool) ActiveContract {
	return ActiveContract{
		Contract: models.Contract{
			ID:              uuid.New(),
			PlayerID:        uuid.New(),
			TeamID:          uuid.New(),
			LeagueID:        league.ID,
			OriginalSalary:  salary,
			CurrentSalary:   salary,
			OriginalYears:   max(years, 1),
			YearsRemaining:  years,
			AcquisitionType: models.AcquisitionTypeAuction,
			Status:          models.ContractStatusActive,
			HasBeenExtended: extended,
			HasBeenTagged:   tagged,
			SignedSeason:    league.Season,
		},
		PlayerName: name,
		TeamName:   "Team " + name,
	}
}

func TestPlanTurnoverFinalYearContract(t *testing.T) {
	league := testLeague()
	c := contract(league, "Expiring", 1_000_000, 1, false, false)

	plan := PlanTurnover(league, []ActiveContract{c})

	want := ContractChange{
		ID:                    c.ID,
		PlayerName:            "Expiring",
		TeamName:              "Team Expiring",
		CurrentYearsRemaining: 1,
		NewYearsRemaining:     0,
		CurrentSalary:         1_000_000,
		NewSalary:             1_000_000,
		NewStatus:             StatusEligibleForExtension,
	}
	if diff := cmp.Diff([]ContractChange{want}, plan.Changes); diff != "" {
		t.Errorf("Changes mismatch (-want +got):\n%s", diff)
	}
	if plan.Categories.EligibleForExtension.Count != 1 || plan.Categories.EligibleForFranchiseTag.Count != 1 {
		t.Errorf("expected contract in both eligibility buckets, got %+v", plan.Categories)
	}
	if plan.NewSeason != 2026 {
		t.Errorf("NewSeason = %d, want 2026", plan.NewSeason)
	}
}

func TestPlanTurnoverStatusLabels(t *testing.T) {
	league := testLeague()

	tests := []struct {
		name       string
		years      int
		extended   bool
		tagged     bool
		wantYears  int
		wantSalary int64
		wantStatus string
	}{
		{"continuing contract escalates", 3, false, false, 2, 1_150_000, StatusActiveContract},
		{"two years left escalates", 2, true, true, 1, 1_150_000, StatusActiveContract},
		{"expiring not extended", 1, false, true, 0, 1_000_000, StatusEligibleForExtension},
		{"expiring already extended", 1, true, false, 0, 1_000_000, StatusEligibleForFranchiseTag},
		{"expiring with nothing left", 1, true, true, 0, 1_000_000, StatusPendingFreeAgency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := contract(league, tt.name, 1_000_000, tt.years, tt.extended, tt.tagged)
			plan := PlanTurnover(league, []ActiveContract{c})
			if len(plan.Changes) != 1 {
				t.Fatalf("got %d changes, want 1", len(plan.Changes))
			}
			got := plan.Changes[0]
			if got.NewYearsRemaining != tt.wantYears || got.NewSalary != tt.wantSalary || got.NewStatus != tt.wantStatus {
				t.Errorf("change = {years %d salary %d status %q}, want {years %d salary %d status %q}",
					got.NewYearsRemaining, got.NewSalary, got.NewStatus, tt.wantYears, tt.wantSalary, tt.wantStatus)
			}
		})
	}
}

func TestPlanTurnoverSkipsInactiveAndZeroYearContracts(t *testing.T) {
	league := testLeague()
	cut := contract(league, "Cut", 500_000, 2, false, false)
	cut.Status = models.ContractStatusCut
	expired := contract(league, "Expired", 500_000, 0, false, false)
	expired.Status = models.ContractStatusExpired
	pending := contract(league, "Pending", 500_000, 0, false, true)
	kept := contract(league, "Kept", 2_000_000, 4, false, false)

	plan := PlanTurnover(league, []ActiveContract{cut, expired, pending, kept})

	if len(plan.Changes) != 1 || plan.Changes[0].ID != kept.ID {
		t.Fatalf("Changes = %+v, want only the four-year contract", plan.Changes)
	}
	if plan.Categories.ContractsAffected.Count != 1 {
		t.Errorf("ContractsAffected = %d, want 1", plan.Categories.ContractsAffected.Count)
	}
}

func TestPlanTurnoverSummary(t *testing.T) {
	league := testLeague()
	contracts := []ActiveContract{
		contract(league, "A", 1_000_000, 1, false, false),
		contract(league, "B", 2_000_000, 2, false, false),
		contract(league, "C", 3_000_000, 1, true, false),
		contract(league, "D", 4_000_000, 1, false, true),
	}

	plan := PlanTurnover(league, contracts)

	want := Summary{
		TotalContracts:          4,
		ContractsExpiring:       3,
		ContractsContinuing:     1,
		EligibleForExtension:    2, // A, D
		EligibleForFranchiseTag: 2, // A, C
		TotalCurrentSalary:      10_000_000,
		TotalNewSalary:          10_300_000,
	}
	if diff := cmp.Diff(want, plan.Summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
	if plan.Categories.ContractsAffected.Count != 4 {
		t.Errorf("ContractsAffected = %d, want 4", plan.Categories.ContractsAffected.Count)
	}
}

func TestPlanTurnoverEmptyLeague(t *testing.T) {
	plan := PlanTurnover(testLeague(), nil)
	if plan.Changes == nil || len(plan.Changes) != 0 {
		t.Errorf("Changes = %#v, want empty non-nil slice", plan.Changes)
	}
	if plan.Summary != (Summary{}) {
		t.Errorf("Summary = %+v, want zero", plan.Summary)
	}
}

func TestPlanTurnoverIsDeterministic(t *testing.T) {
	league := testLeague()
	contracts := []ActiveContract{
		contract(league, "A", 999, 3, false, false),
		contract(league, "B", 1_234_567, 2, false, true),
	}
	if diff := cmp.Diff(PlanTurnover(league, contracts), PlanTurnover(league, contracts)); diff != "" {
		t.Errorf("two plans differ:\n%s", diff)
	}
}
