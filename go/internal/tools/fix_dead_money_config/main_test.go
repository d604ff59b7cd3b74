package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestPlanRepairs(t *testing.T) {
	healthy := uuid.New()
	zeroBucket := uuid.New()
	corrupt := uuid.New()
	missing := uuid.New()

	configs := []storedConfig{
		{LeagueID: healthy, Name: "Healthy", Raw: []byte(`{"currentSeason":1,"futureSeasons":{"1":0.25,"2":0.25,"3":0.25,"4":0.25}}`)},
		{LeagueID: zeroBucket, Name: "Zero", Raw: []byte(`{"currentSeason":1,"futureSeasons":{"1":0,"2":0.25,"3":0.25,"4":0.25}}`)},
		{LeagueID: corrupt, Name: "Corrupt", Raw: []byte(`{"currentSeason":`)},
		{LeagueID: missing, Name: "Missing"},
	}

	got := planRepairs(configs)
	gotIDs := make([]uuid.UUID, len(got))
	for i, r := range got {
		gotIDs[i] = r.LeagueID
		if r.Reason == "" {
			t.Errorf("repair for %s has no reason", r.Name)
		}
	}
	if diff := cmp.Diff([]uuid.UUID{zeroBucket, corrupt, missing}, gotIDs); diff != "" {
		t.Errorf("repaired leagues (-want +got):\n%s", diff)
	}
}
