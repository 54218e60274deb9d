package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// NutritionReport aggregates an elder's diet log over a trailing window.
// A report is written once per analysis run and never edited; a re-run
// writes a fresh row.
type NutritionReport struct {
	gorm.Model
	GroupID   uint `gorm:"index;not null"`
	ElderID   uint `gorm:"index;not null"`
	ElderName string

	WindowStart time.Time
	WindowEnd   time.Time
	WindowDays  int

	TotalEntries   int
	BreakfastCount int
	LunchCount     int
	DinnerCount    int
	SnackCount     int
	AvgMealsPerDay float64

	UniqueItems  int
	VarietyScore float64

	AvgWaterPerDay float64

	RegularPattern bool
	SkippedDays    int
	LateNightCount int

	OverallScore float64
	Assessment   string `gorm:"type:text"`

	// Insight lists, "; "-joined for storage.
	PositiveInsights string `gorm:"type:text"`
	Concerns         string `gorm:"type:text"`
	Suggestions      string `gorm:"type:text"`

	// Optional LLM-written commentary; the report is complete without it.
	Narrative string `gorm:"type:text"`

	AnalysisDate time.Time `gorm:"index"`
	GeneratedAt  time.Time
}

func splitInsights(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, "; ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (r *NutritionReport) PositiveList() []string   { return splitInsights(r.PositiveInsights) }
func (r *NutritionReport) ConcernList() []string    { return splitInsights(r.Concerns) }
func (r *NutritionReport) SuggestionList() []string { return splitInsights(r.Suggestions) }
