package views

import (
	"math"

	"github.com/safe-edu/api-go/models"
)

// DashboardStats are the summary numbers shown on the landing dashboard.
// All values are recomputed from the visible records on every request.
type DashboardStats struct {
	TotalIncidents    int `json:"total_incidents"`
	ActiveIncidents   int `json:"active_incidents"`
	ResolvedIncidents int `json:"resolved_incidents"`
	ResolutionRate    int `json:"resolution_rate"` // percent, 0-100
	FlaggedDevices    int `json:"flagged_devices"`
	SafetyIndex       int `json:"safety_index"` // illustrative heuristic, 0-100
}

func Summarize(incidents []models.Incident, logs []models.DeviceUsageRecord) DashboardStats {
	stats := DashboardStats{TotalIncidents: len(incidents)}

	for _, inc := range incidents {
		if inc.Status != models.IncidentStatusResolved && inc.Status != models.IncidentStatusClosed {
			stats.ActiveIncidents++
		}
		if inc.Status == models.IncidentStatusResolved {
			stats.ResolvedIncidents++
		}
	}

	// Denominator floors at 1 so an empty registry reads as 0%, not an error.
	denom := stats.TotalIncidents
	if denom == 0 {
		denom = 1
	}
	stats.ResolutionRate = int(math.Round(float64(stats.ResolvedIncidents) / float64(denom) * 100))

	for _, l := range logs {
		if l.Flagged {
			stats.FlaggedDevices++
		}
	}
	stats.SafetyIndex = 100 - 5*stats.FlaggedDevices
	if stats.SafetyIndex < 0 {
		stats.SafetyIndex = 0
	}
	return stats
}
