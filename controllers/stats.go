package controllers

import (
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdash/backpain-api/db"
	"github.com/clinicdash/backpain-api/models"
	"github.com/clinicdash/backpain-api/redis"
	"github.com/clinicdash/backpain-api/utils"
)

// PainLocationStat aggregates assessments per (area, side) pair
type PainLocationStat struct {
	Area         string  `json:"area"`
	Side         string  `json:"side"`
	Count        int     `json:"count"`
	AvgIntensity float64 `json:"avgIntensity"`
}

// ConditionStats counts how many assessments flag each condition
type ConditionStats struct {
	HerniatedDisc     int `json:"herniatedDisc"`
	SpinalStenosis    int `json:"spinalStenosis"`
	Spondylolisthesis int `json:"spondylolisthesis"`
	Scoliosis         int `json:"scoliosis"`
}

// TreatmentStats counts how many assessments flag each treatment
type TreatmentStats struct {
	Medication         int `json:"medication"`
	PhysicalTherapy    int `json:"physicalTherapy"`
	Surgery            int `json:"surgery"`
	AlternativeTherapy int `json:"alternativeTherapy"`
}

// StatsOverviewResponse is the dashboard statistics payload
type StatsOverviewResponse struct {
	TotalAssessments   int64              `json:"totalAssessments"`
	UniquePatientCount int64              `json:"uniquePatientCount"`
	RecentAssessments  int64              `json:"recentAssessments"`
	PainLocations      []PainLocationStat `json:"painLocations"`
	MedicalConditions  ConditionStats     `json:"medicalConditions"`
	Treatments         TreatmentStats     `json:"treatments"`
	AveragePain        float64            `json:"averagePain"`
}

// ComputePainLocationStats groups pain locations by (area, side) and
// averages their intensity on the Mild/Moderate/Severe scale
func ComputePainLocationStats(assessments []models.Assessment) []PainLocationStat {
	type acc struct {
		count int
		sum   int
	}
	groups := make(map[[2]string]*acc)

	for _, a := range assessments {
		for _, loc := range a.PainLocations {
			key := [2]string{loc.Area, loc.Side}
			g, ok := groups[key]
			if !ok {
				g = &acc{}
				groups[key] = g
			}
			g.count++
			g.sum += models.IntensityScore(loc.Intensity)
		}
	}

	stats := make([]PainLocationStat, 0, len(groups))
	for key, g := range groups {
		stats = append(stats, PainLocationStat{
			Area:         key[0],
			Side:         key[1],
			Count:        g.count,
			AvgIntensity: float64(g.sum) / float64(g.count),
		})
	}

	// Highest counts first, ties broken alphabetically for a stable order
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		if stats[i].Area != stats[j].Area {
			return stats[i].Area < stats[j].Area
		}
		return stats[i].Side < stats[j].Side
	})

	return stats
}

// ComputeConditionStats counts the boolean condition flags
func ComputeConditionStats(assessments []models.Assessment) ConditionStats {
	var stats ConditionStats
	for _, a := range assessments {
		if a.MedicalConditions.HerniatedDisc {
			stats.HerniatedDisc++
		}
		if a.MedicalConditions.SpinalStenosis {
			stats.SpinalStenosis++
		}
		if a.MedicalConditions.Spondylolisthesis {
			stats.Spondylolisthesis++
		}
		if a.MedicalConditions.Scoliosis {
			stats.Scoliosis++
		}
	}
	return stats
}

// ComputeTreatmentStats counts the boolean treatment flags
func ComputeTreatmentStats(assessments []models.Assessment) TreatmentStats {
	var stats TreatmentStats
	for _, a := range assessments {
		if a.Treatments.Medication {
			stats.Medication++
		}
		if a.Treatments.PhysicalTherapy {
			stats.PhysicalTherapy++
		}
		if a.Treatments.Surgery {
			stats.Surgery++
		}
		if a.Treatments.AlternativeTherapy {
			stats.AlternativeTherapy++
		}
	}
	return stats
}

// ComputeAveragePain averages the 0-10 pain level, zero when empty
func ComputeAveragePain(assessments []models.Assessment) float64 {
	if len(assessments) == 0 {
		return 0
	}
	sum := 0
	for _, a := range assessments {
		sum += a.PainLevel
	}
	return float64(sum) / float64(len(assessments))
}

// GetStatsOverview godoc
// @Summary Get dashboard statistics
// @Tags assessments
// @Produce json
// @Success 200 {object} StatsOverviewResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/assessments/stats/overview [get]
func GetStatsOverview(c *fiber.Ctx) error {
	// Serve from cache when Redis is configured
	if cached, ok := redis.GetCachedStats(); ok {
		c.Set("Content-Type", "application/json")
		return c.Send(cached)
	}

	var total int64
	if err := db.DB.Model(&models.Assessment{}).Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute statistics",
			Error:   err.Error(),
		})
	}

	var uniquePatients int64
	if err := db.DB.Model(&models.Assessment{}).
		Distinct("user_email").
		Count(&uniquePatients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute statistics",
			Error:   err.Error(),
		})
	}

	lastWeek := time.Now().AddDate(0, 0, -7)
	var recent int64
	if err := db.DB.Model(&models.Assessment{}).
		Where("created_at >= ?", lastWeek).
		Count(&recent).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute statistics",
			Error:   err.Error(),
		})
	}

	// The grouped aggregates walk the full collection in memory; the
	// nested documents live in JSONB columns
	var assessments []models.Assessment
	if err := db.DB.Find(&assessments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute statistics",
			Error:   err.Error(),
		})
	}

	response := StatsOverviewResponse{
		TotalAssessments:   total,
		UniquePatientCount: uniquePatients,
		RecentAssessments:  recent,
		PainLocations:      ComputePainLocationStats(assessments),
		MedicalConditions:  ComputeConditionStats(assessments),
		Treatments:         ComputeTreatmentStats(assessments),
		AveragePain:        ComputeAveragePain(assessments),
	}

	if payload, err := json.Marshal(response); err == nil {
		if err := redis.CacheStats(payload); err != nil {
			log.Printf("Failed to cache dashboard statistics: %v", err)
		}
	}

	return c.JSON(response)
}
