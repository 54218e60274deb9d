package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/models"
	"github.com/qashsolutions/myhealthguide-sub011/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultAnalysisWindowDays = 7

// Per-day entry-count spread below this counts as a regular eating pattern.
const regularPatternStddev = 1.5

var waterQuantityRe = regexp.MustCompile(`(\d+)\s*(glass|cup|oz)`)

type NutritionService struct {
	db  *gorm.DB
	log *zap.Logger
	ai  *AIService // optional; nil disables narrative enrichment
}

func NewNutritionService(db *gorm.DB, logger *zap.Logger, ai *AIService) *NutritionService {
	return &NutritionService{db: db, log: logger, ai: ai}
}

// NutritionAnalysis is the computed result before persistence.
type NutritionAnalysis struct {
	TotalEntries   int
	BreakfastCount int
	LunchCount     int
	DinnerCount    int
	SnackCount     int
	AvgMealsPerDay float64

	UniqueItems   int
	VarietyScore  float64
	MissingGroups []string

	AvgWaterPerDay float64

	RegularPattern bool
	SkippedDays    int
	LateNightCount int

	OverallScore float64
	Assessment   string

	Positives   []string
	Concerns    []string
	Suggestions []string
}

// AnalyzeEntries computes meal-frequency, variety, hydration and
// regularity metrics over an already-fetched, date-filtered entry list.
// Pure; returns nil when there is nothing to analyze — "no data" is an
// expected outcome, not a failure.
func AnalyzeEntries(entries []models.DietEntry, windowDays int) *NutritionAnalysis {
	if len(entries) == 0 || windowDays <= 0 {
		return nil
	}

	a := &NutritionAnalysis{TotalEntries: len(entries)}

	uniqueItems := make(map[string]bool)
	groupsSeen := make(map[string]bool)
	perDay := make(map[string]int)
	waterUnits := 0.0

	for _, e := range entries {
		switch e.Meal {
		case "breakfast":
			a.BreakfastCount++
		case "lunch":
			a.LunchCount++
		case "dinner":
			a.DinnerCount++
		case "snack":
			a.SnackCount++
		}

		items := e.ItemList()
		for _, it := range items {
			uniqueItems[strings.ToLower(it)] = true
		}

		text := strings.ToLower(strings.Join(items, " ") + " " + e.Notes)
		for g := range utils.FoodGroupsIn(text) {
			groupsSeen[g] = true
		}
		waterUnits += waterUnitsIn(text)

		perDay[utils.DayKey(e.Timestamp)]++
		if utils.IsLateNightHour(e.Timestamp.Hour()) {
			a.LateNightCount++
		}
	}

	// Averages divide by the requested window, not by days with data:
	// under-logging deflates the metric the same way under-eating does.
	a.AvgMealsPerDay = float64(a.TotalEntries) / float64(windowDays)
	a.AvgWaterPerDay = waterUnits / float64(windowDays)

	a.UniqueItems = len(uniqueItems)
	groups := utils.FoodGroupNames()
	a.VarietyScore = float64(len(groupsSeen)) / float64(len(groups)) * 100
	for _, g := range groups {
		if !groupsSeen[g] {
			a.MissingGroups = append(a.MissingGroups, g)
		}
	}

	a.RegularPattern = stddevOfCounts(perDay) < regularPatternStddev
	a.SkippedDays = windowDays - len(perDay)
	if a.SkippedDays < 0 {
		a.SkippedDays = 0
	}

	a.OverallScore = overallScore(a)
	a.Positives, a.Concerns, a.Suggestions = buildInsights(a, windowDays)
	a.Assessment = assessmentText(a.OverallScore, len(a.Positives), len(a.Concerns))

	return a
}

// Each sub-score is clamped, so the total stays within [0,100].
func overallScore(a *NutritionAnalysis) float64 {
	score := math.Min(a.AvgMealsPerDay/3*30, 30)
	score += a.VarietyScore / 100 * 30
	score += math.Min(a.AvgWaterPerDay/8*25, 25)
	if a.RegularPattern {
		score += 15
	}
	return score
}

func buildInsights(a *NutritionAnalysis, windowDays int) (positives, concerns, suggestions []string) {
	if a.AvgMealsPerDay >= 3 {
		positives = append(positives, fmt.Sprintf("Good Meal Frequency: averaging %.1f meals per day", a.AvgMealsPerDay))
	}
	if a.VarietyScore >= 70 {
		positives = append(positives, fmt.Sprintf("Good Food Variety: %.0f%% of food groups represented", a.VarietyScore))
	}
	if a.AvgWaterPerDay >= 6 {
		positives = append(positives, fmt.Sprintf("Good Hydration: about %.1f glasses of fluid per day", a.AvgWaterPerDay))
	}

	if a.AvgMealsPerDay < 2 {
		concerns = append(concerns, fmt.Sprintf("Low Meal Frequency: averaging only %.1f meals per day", a.AvgMealsPerDay))
	}
	if float64(a.BreakfastCount) < float64(windowDays)*0.5 {
		concerns = append(concerns, fmt.Sprintf("Skipping Breakfast: breakfast logged only %d times in %d days", a.BreakfastCount, windowDays))
	}
	if a.VarietyScore < 40 {
		concerns = append(concerns, fmt.Sprintf("Limited Food Variety: only %.0f%% of food groups represented", a.VarietyScore))
	}
	if a.AvgWaterPerDay < 4 {
		concerns = append(concerns, fmt.Sprintf("Low Fluid Intake: about %.1f glasses of fluid per day", a.AvgWaterPerDay))
	}
	if float64(a.LateNightCount) > float64(windowDays)*0.3 {
		concerns = append(concerns, fmt.Sprintf("Late-Night Eating: %d entries logged between 8 PM and 4 AM", a.LateNightCount))
	}

	if a.VarietyScore < 60 && len(a.MissingGroups) > 0 {
		suggestions = append(suggestions, "Try adding foods from: "+strings.Join(a.MissingGroups, ", "))
	}
	if a.AvgWaterPerDay < 6 {
		suggestions = append(suggestions, "Offer water with every meal and keep a filled glass within reach")
	}
	if !a.RegularPattern {
		suggestions = append(suggestions, "Aim for meals at consistent times each day to build a steady routine")
	}
	return positives, concerns, suggestions
}

// assessmentText selects the narrative tier. The insight counts are part
// of the signature but the tier depends on the score alone.
func assessmentText(score float64, positiveCount, concernCount int) string {
	_, _ = positiveCount, concernCount
	switch {
	case score >= 80:
		return "Excellent nutrition habits. Meals are frequent, varied and well spaced - keep up the current routine."
	case score >= 60:
		return "Good overall nutrition with room to improve. Review the suggestions below for small adjustments."
	case score >= 40:
		return "Fair nutrition. Several patterns need attention; consider discussing the flagged concerns with the care team."
	default:
		return "Nutrition patterns are concerning. Please review the flagged concerns and consider consulting a clinician or dietitian."
	}
}

// waterUnitsIn counts hydration units in one entry's text. A leading
// quantity ("2 glasses", "8 oz") contributes its number; otherwise each
// mention of water or a glass counts as one unit.
func waterUnitsIn(text string) float64 {
	if !strings.Contains(text, "water") && !strings.Contains(text, "glass") {
		return 0
	}
	if m := waterQuantityRe.FindStringSubmatch(text); m != nil {
		var n int
		fmt.Sscanf(m[1], "%d", &n)
		return float64(n)
	}
	return float64(strings.Count(text, "water") + strings.Count(text, "glass"))
}

// stddevOfCounts is the population standard deviation of per-day entry
// counts, over days that have at least one entry.
func stddevOfCounts(perDay map[string]int) float64 {
	if len(perDay) == 0 {
		return 0
	}
	mean := 0.0
	for _, c := range perDay {
		mean += float64(c)
	}
	mean /= float64(len(perDay))

	variance := 0.0
	for _, c := range perDay {
		d := float64(c) - mean
		variance += d * d
	}
	variance /= float64(len(perDay))
	return math.Sqrt(variance)
}

// Analyze fetches the elder's diet entries over the trailing window,
// computes a report and persists it. Returns nil both for "no data" and
// for persistence failures; failures are logged, never propagated.
func (s *NutritionService) Analyze(ctx context.Context, groupID, elderID uint, elderName string, windowDays int) *models.NutritionReport {
	if windowDays <= 0 {
		windowDays = defaultAnalysisWindowDays
	}
	end := time.Now()
	start := end.AddDate(0, 0, -windowDays)

	var entries []models.DietEntry
	if err := s.db.WithContext(ctx).
		Where("group_id = ? AND elder_id = ? AND timestamp BETWEEN ? AND ?", groupID, elderID, start, end).
		Order("timestamp ASC").
		Find(&entries).Error; err != nil {
		s.log.Warn("nutrition analysis: fetching diet entries failed",
			zap.Uint("groupID", groupID), zap.Uint("elderID", elderID), zap.Error(err))
		return nil
	}

	a := AnalyzeEntries(entries, windowDays)
	if a == nil {
		return nil
	}

	now := time.Now()
	report := &models.NutritionReport{
		GroupID:          groupID,
		ElderID:          elderID,
		ElderName:        elderName,
		WindowStart:      start,
		WindowEnd:        end,
		WindowDays:       windowDays,
		TotalEntries:     a.TotalEntries,
		BreakfastCount:   a.BreakfastCount,
		LunchCount:       a.LunchCount,
		DinnerCount:      a.DinnerCount,
		SnackCount:       a.SnackCount,
		AvgMealsPerDay:   a.AvgMealsPerDay,
		UniqueItems:      a.UniqueItems,
		VarietyScore:     a.VarietyScore,
		AvgWaterPerDay:   a.AvgWaterPerDay,
		RegularPattern:   a.RegularPattern,
		SkippedDays:      a.SkippedDays,
		LateNightCount:   a.LateNightCount,
		OverallScore:     a.OverallScore,
		Assessment:       a.Assessment,
		PositiveInsights: strings.Join(a.Positives, "; "),
		Concerns:         strings.Join(a.Concerns, "; "),
		Suggestions:      strings.Join(a.Suggestions, "; "),
		AnalysisDate:     now,
		GeneratedAt:      now,
	}

	if s.ai != nil {
		if narrative, err := s.ai.ReportNarrative(ctx, elderName, a); err != nil {
			s.log.Warn("nutrition analysis: narrative generation failed", zap.Error(err))
		} else {
			report.Narrative = narrative
		}
	}

	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		s.log.Warn("nutrition analysis: saving report failed", zap.Error(err))
		return nil
	}
	return report
}

// LatestReport returns the most recently generated report for the elder,
// or nil when none exists yet.
func (s *NutritionService) LatestReport(ctx context.Context, groupID, elderID uint) (*models.NutritionReport, error) {
	var r models.NutritionReport
	err := s.db.WithContext(ctx).
		Where("group_id = ? AND elder_id = ?", groupID, elderID).
		Order("analysis_date DESC").
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}
