package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupNutritionTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func entry(meal, items, notes string, ts time.Time) models.DietEntry {
	return models.DietEntry{GroupID: 1, ElderID: 1, Meal: meal, Items: items, Notes: notes, Timestamp: ts}
}

// fullWeek logs three meals a day for seven days, covering all six food
// groups, with no fluids mentioned.
func fullWeek(base time.Time) []models.DietEntry {
	var entries []models.DietEntry
	for d := 0; d < 7; d++ {
		day := base.AddDate(0, 0, d)
		entries = append(entries,
			entry("breakfast", "oatmeal, banana, milk, walnuts", "", day.Add(8*time.Hour)),
			entry("lunch", "chicken salad", "", day.Add(12*time.Hour)),
			entry("dinner", "rice, salmon, broccoli", "", day.Add(18*time.Hour)),
		)
	}
	return entries
}

func TestAnalyzeEntriesEmpty(t *testing.T) {
	assert.Nil(t, AnalyzeEntries(nil, 7))
	assert.Nil(t, AnalyzeEntries([]models.DietEntry{}, 30))
	assert.Nil(t, AnalyzeEntries(fullWeek(time.Now()), 0))
}

func TestAnalyzeEntriesEvenWeek(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	a := AnalyzeEntries(fullWeek(base), 7)
	require.NotNil(t, a)

	assert.Equal(t, 21, a.TotalEntries)
	assert.Equal(t, 7, a.BreakfastCount)
	assert.Equal(t, 7, a.LunchCount)
	assert.Equal(t, 7, a.DinnerCount)
	assert.Equal(t, 0, a.SnackCount)
	assert.InDelta(t, 3.0, a.AvgMealsPerDay, 1e-9)

	assert.InDelta(t, 100.0, a.VarietyScore, 1e-9)
	assert.Empty(t, a.MissingGroups)

	assert.True(t, a.RegularPattern)
	assert.Equal(t, 0, a.SkippedDays)
	assert.Equal(t, 0, a.LateNightCount)

	// 30 (meals) + 30 (variety) + 0 (no fluids) + 15 (regular)
	assert.InDelta(t, 75.0, a.OverallScore, 1e-9)
	assert.Contains(t, a.Assessment, "Good overall nutrition")

	joined := strings.Join(a.Positives, "; ")
	assert.Contains(t, joined, "Good Meal Frequency")
	assert.Contains(t, joined, "Good Food Variety")

	concerns := strings.Join(a.Concerns, "; ")
	assert.NotContains(t, concerns, "Skipping Breakfast")
	assert.Contains(t, concerns, "Low Fluid Intake")
	assert.InDelta(t, 0.0, a.AvgWaterPerDay, 1e-9)
}

func TestAnalyzeEntriesHydration(t *testing.T) {
	ts := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)

	// A leading quantity contributes its number.
	a := AnalyzeEntries([]models.DietEntry{
		entry("breakfast", "toast", "drank 2 glasses of water", ts),
	}, 1)
	require.NotNil(t, a)
	assert.InDelta(t, 2.0, a.AvgWaterPerDay, 1e-9)

	// Without a quantity, each mention counts as one unit.
	a = AnalyzeEntries([]models.DietEntry{
		entry("lunch", "soup", "water with lunch, water before bed", ts),
	}, 1)
	require.NotNil(t, a)
	assert.InDelta(t, 2.0, a.AvgWaterPerDay, 1e-9)
}

func TestAnalyzeEntriesLateNight(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.DietEntry{
		entry("snack", "crackers", "", base.Add(23*time.Hour)),
		entry("snack", "cheese", "", base.AddDate(0, 0, 1).Add(23*time.Hour)),
		entry("snack", "toast", "", base.AddDate(0, 0, 2).Add(3*time.Hour)),
	}
	a := AnalyzeEntries(entries, 7)
	require.NotNil(t, a)

	assert.Equal(t, 3, a.LateNightCount)
	assert.Contains(t, strings.Join(a.Concerns, "; "), "Late-Night Eating")
}

func TestAnalyzeEntriesIrregularPattern(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var entries []models.DietEntry
	for i := 0; i < 5; i++ {
		entries = append(entries, entry("snack", "apple", "", base.Add(time.Duration(10+i)*time.Hour)))
	}
	entries = append(entries, entry("lunch", "rice", "", base.AddDate(0, 0, 1).Add(12*time.Hour)))

	a := AnalyzeEntries(entries, 7)
	require.NotNil(t, a)

	// Per-day counts of 5 and 1 spread well past the regularity cutoff.
	assert.False(t, a.RegularPattern)
	assert.Equal(t, 5, a.SkippedDays)
	assert.Contains(t, strings.Join(a.Suggestions, "; "), "consistent times")
}

func TestAnalyzeEntriesScoreStaysBounded(t *testing.T) {
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var entries []models.DietEntry
	for i := 0; i < 50; i++ {
		entries = append(entries, entry("snack",
			"banana, broccoli, chicken, rice, milk, walnuts",
			"20 glasses of water", ts.Add(time.Duration(i)*time.Minute)))
	}
	a := AnalyzeEntries(entries, 1)
	require.NotNil(t, a)

	assert.InDelta(t, 100.0, a.OverallScore, 1e-9)
	assert.LessOrEqual(t, a.OverallScore, 100.0)
	assert.GreaterOrEqual(t, a.OverallScore, 0.0)
	assert.Contains(t, a.Assessment, "Excellent")
}

func TestAnalyzeEntriesDeterministic(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	entries := fullWeek(base)

	a1 := AnalyzeEntries(entries, 7)
	a2 := AnalyzeEntries(entries, 7)
	assert.Equal(t, a1, a2)
}

func TestAnalyzeEntriesLimitedVariety(t *testing.T) {
	ts := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	a := AnalyzeEntries([]models.DietEntry{
		entry("breakfast", "toast", "", ts),
	}, 7)
	require.NotNil(t, a)

	// Only grains present: 1/6 of the groups.
	assert.InDelta(t, 100.0/6.0, a.VarietyScore, 1e-6)
	assert.Len(t, a.MissingGroups, 5)
	assert.Contains(t, strings.Join(a.Concerns, "; "), "Limited Food Variety")
	assert.Contains(t, strings.Join(a.Suggestions, "; "), "Try adding foods from:")
}

func TestAnalyzePersistsReport(t *testing.T) {
	db := setupNutritionTestDB(t)
	svc := NewNutritionService(db, zap.NewNop(), nil)
	ctx := context.Background()

	now := time.Now()
	for d := 0; d < 3; d++ {
		e := entry("breakfast", "oatmeal, banana", "1 glass of water",
			now.AddDate(0, 0, -d).Add(-2*time.Hour))
		require.NoError(t, db.Create(&e).Error)
	}

	report := svc.Analyze(ctx, 1, 1, "Rose", 7)
	require.NotNil(t, report)
	assert.NotZero(t, report.ID)
	assert.Equal(t, "Rose", report.ElderName)
	assert.Equal(t, 3, report.TotalEntries)
	assert.Equal(t, 3, report.BreakfastCount)
	assert.Equal(t, 7, report.WindowDays)
	assert.NotEmpty(t, report.Assessment)

	latest, err := svc.LatestReport(ctx, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, report.ID, latest.ID)
}

func TestAnalyzeNoData(t *testing.T) {
	db := setupNutritionTestDB(t)
	svc := NewNutritionService(db, zap.NewNop(), nil)
	ctx := context.Background()

	assert.Nil(t, svc.Analyze(ctx, 1, 1, "Rose", 7))

	latest, err := svc.LatestReport(ctx, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestAnalyzeScopedToElder(t *testing.T) {
	db := setupNutritionTestDB(t)
	svc := NewNutritionService(db, zap.NewNop(), nil)
	ctx := context.Background()

	e := entry("lunch", "rice", "", time.Now().Add(-time.Hour))
	e.ElderID = 2
	require.NoError(t, db.Create(&e).Error)

	assert.Nil(t, svc.Analyze(ctx, 1, 1, "Rose", 7))
	report := svc.Analyze(ctx, 1, 2, "Frank", 7)
	require.NotNil(t, report)
	assert.Equal(t, uint(2), report.ElderID)
}
