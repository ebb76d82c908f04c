package views

import (
	"testing"

	"github.com/safe-edu/api-go/models"
)

func flaggedLogs(n int) []models.DeviceUsageRecord {
	logs := make([]models.DeviceUsageRecord, n)
	for i := range logs {
		logs[i].Flagged = true
	}
	return logs
}

func TestSummarizeEmptyRegistry(t *testing.T) {
	stats := Summarize(nil, nil)
	if stats.ResolutionRate != 0 {
		t.Fatalf("zero incidents must read as 0%%, got %d", stats.ResolutionRate)
	}
	if stats.ActiveIncidents != 0 || stats.SafetyIndex != 100 {
		t.Fatalf("unexpected empty stats: %+v", stats)
	}
}

func TestSummarizeResolutionRate(t *testing.T) {
	incidents := []models.Incident{
		{Status: models.IncidentStatusResolved},
		{Status: models.IncidentStatusPending},
		{Status: models.IncidentStatusPending},
		{Status: models.IncidentStatusInvestigating},
	}
	stats := Summarize(incidents, nil)
	if stats.ResolutionRate != 25 {
		t.Fatalf("1 of 4 resolved should be 25%%, got %d", stats.ResolutionRate)
	}
	if stats.ActiveIncidents != 3 {
		t.Fatalf("expected 3 active, got %d", stats.ActiveIncidents)
	}
}

func TestSummarizeClosedNotActive(t *testing.T) {
	incidents := []models.Incident{
		{Status: models.IncidentStatusClosed},
		{Status: models.IncidentStatusResolved},
	}
	stats := Summarize(incidents, nil)
	if stats.ActiveIncidents != 0 {
		t.Fatalf("closed and resolved are not active, got %d", stats.ActiveIncidents)
	}
}

func TestSummarizeSafetyIndex(t *testing.T) {
	cases := []struct {
		flagged int
		want    int
	}{
		{0, 100},
		{10, 50},
		{20, 0},
		{30, 0}, // clamped, never negative
	}
	for _, tc := range cases {
		stats := Summarize(nil, flaggedLogs(tc.flagged))
		if stats.SafetyIndex != tc.want {
			t.Fatalf("flagged=%d: expected safety index %d, got %d", tc.flagged, tc.want, stats.SafetyIndex)
		}
		if stats.FlaggedDevices != tc.flagged {
			t.Fatalf("flagged=%d: count mismatch %d", tc.flagged, stats.FlaggedDevices)
		}
	}
}

func TestSummarizeUnflaggedLogsIgnored(t *testing.T) {
	logs := append(flaggedLogs(2), models.DeviceUsageRecord{Flagged: false})
	stats := Summarize(nil, logs)
	if stats.FlaggedDevices != 2 {
		t.Fatalf("expected 2 flagged, got %d", stats.FlaggedDevices)
	}
	if stats.SafetyIndex != 90 {
		t.Fatalf("expected safety index 90, got %d", stats.SafetyIndex)
	}
}
