package controllers

import (
	"github.com/safe-edu/api-go/config"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"github.com/safe-edu/api-go/views"
	"gorm.io/gorm"
)

func accountFromClaims(claims *utils.UserClaims) *models.User {
	if claims == nil {
		return nil
	}
	return &models.User{
		ID:        claims.UserID,
		Role:      claims.Role,
		FullName:  claims.FullName,
		LinkedLRN: claims.LinkedLRN,
	}
}

func studentID(s models.Student) string          { return s.ID }
func incidentRecID(i models.Incident) string     { return i.ID }
func planID(p models.InterventionPlan) string    { return p.ID }
func deviceLogID(d models.DeviceUsageRecord) string { return d.ID }
func guardianID(g models.Guardian) string        { return g.ID }

// loadScopedView merges the seeded demo records with the live rows and trims
// the result down to what the caller's role may see.
func loadScopedView(db *gorm.DB, claims *utils.UserClaims) views.ScopedView {
	var students []models.Student
	var incidents []models.Incident
	var plans []models.InterventionPlan

	db.Order("last_name asc").Find(&students)
	db.Order("date_reported desc").Find(&incidents)
	db.Preload("Milestones", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("milestones.date asc")
	}).Order("start_date desc").Find(&plans)

	merged := views.ScopedView{
		Students:      views.MergeByID(config.DemoStudents(), students, studentID),
		Incidents:     views.MergeByID(config.DemoIncidents(), incidents, incidentRecID),
		Interventions: views.MergeByID(config.DemoInterventions(), plans, planID),
	}

	return views.ForAccount(merged.Students, merged.Incidents, merged.Interventions, accountFromClaims(claims))
}

// loadDeviceLogs merges demo device records with live rows; device logs are
// staff-only so no role trimming happens here.
func loadDeviceLogs(db *gorm.DB) []models.DeviceUsageRecord {
	var logs []models.DeviceUsageRecord
	db.Order("usage_start desc").Find(&logs)
	return views.MergeByID(config.DemoDeviceLogs(), logs, deviceLogID)
}
