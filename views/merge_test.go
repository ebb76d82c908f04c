package views

import (
	"testing"

	"github.com/safe-edu/api-go/models"
)

func incidentID(i models.Incident) string { return i.ID }

func TestMergeByIDLiveWins(t *testing.T) {
	baseline := []models.Incident{
		{ID: "demo-1", Status: models.IncidentStatusPending},
		{ID: "i1", Status: models.IncidentStatusPending},
	}
	live := []models.Incident{
		{ID: "i1", Status: models.IncidentStatusResolved},
		{ID: "i2", Status: models.IncidentStatusInvestigating},
	}

	merged := MergeByID(baseline, live, incidentID)
	if len(merged) != 3 {
		t.Fatalf("expected 3 records, got %d", len(merged))
	}
	byID := map[string]models.Incident{}
	for _, inc := range merged {
		byID[inc.ID] = inc
	}
	if byID["i1"].Status != models.IncidentStatusResolved {
		t.Fatalf("live record must win on collision, got status %s", byID["i1"].Status)
	}
	if merged[0].ID != "demo-1" {
		t.Fatalf("baseline-only records keep their position, got %s first", merged[0].ID)
	}
}

func TestMergeByIDIdempotent(t *testing.T) {
	baseline := []models.Incident{
		{ID: "a", Description: "seed a"},
		{ID: "b", Description: "seed b"},
	}
	live := []models.Incident{
		{ID: "b", Description: "live b"},
		{ID: "c", Description: "live c"},
	}

	once := MergeByID(baseline, live, incidentID)
	twice := MergeByID(once, live, incidentID)

	asMap := func(recs []models.Incident) map[string]string {
		m := map[string]string{}
		for _, r := range recs {
			m[r.ID] = r.Description
		}
		return m
	}
	first, second := asMap(once), asMap(twice)
	if len(first) != len(second) {
		t.Fatalf("re-merge changed cardinality: %d vs %d", len(first), len(second))
	}
	for id, desc := range first {
		if second[id] != desc {
			t.Fatalf("re-merge changed record %s: %q vs %q", id, desc, second[id])
		}
	}
}

func TestMergeByIDEmptySides(t *testing.T) {
	live := []models.Incident{{ID: "x"}}
	if got := MergeByID(nil, live, incidentID); len(got) != 1 {
		t.Fatalf("nil baseline: expected 1, got %d", len(got))
	}
	if got := MergeByID(live, nil, incidentID); len(got) != 1 {
		t.Fatalf("nil live: expected 1, got %d", len(got))
	}
	if got := MergeByID[models.Incident](nil, nil, incidentID); len(got) != 0 {
		t.Fatalf("both nil: expected 0, got %d", len(got))
	}
}
