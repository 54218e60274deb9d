package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/models"
	"github.com/qashsolutions/myhealthguide-sub011/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Meal-window boundaries used by the timing rules (inclusive hours).
const (
	mealWindowStartHour = 7
	mealWindowEndHour   = 20
	fastingWindowStart  = 6
	fastingWindowEnd    = 8

	// Minimum separation between interacting drugs, in minutes.
	// Exactly this far apart is acceptable.
	minSeparationMinutes = 240
)

type ConflictService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewConflictService(db *gorm.DB, logger *zap.Logger) *ConflictService {
	return &ConflictService{db: db, log: logger}
}

type ConflictCheckResult struct {
	Count     int                       `json:"count"`
	Conflicts []models.ScheduleConflict `json:"conflicts"`
}

// DetectConflicts compares each medication's schedule against its timing
// requirement and against the other medications in the list. Pure: the
// caller fetches one elder's active medications and persists the result.
// Medications absent from the timing table emit nothing.
func DetectConflicts(medications []models.Medication) []models.ScheduleConflict {
	detectedAt := time.Now()
	var conflicts []models.ScheduleConflict

	for i, med := range medications {
		timing, ok := utils.LookupDrugTiming(med.Name)
		if !ok {
			continue
		}
		times := med.TimeList()
		schedule := strings.Join(times, ", ")

		switch timing.Requirement {
		case utils.TimingWithFood:
			// Any single dose inside the meal window clears the flag.
			if !anyHourWithin(times, mealWindowStartHour, mealWindowEndHour) {
				conflicts = append(conflicts, models.ScheduleConflict{
					GroupID:         med.GroupID,
					ElderID:         med.ElderID,
					MedicationID:    med.ID,
					MedicationName:  med.Name,
					ConflictType:    models.ConflictFoodRequired,
					Description:     fmt.Sprintf("%s should be taken with food", med.Name),
					CurrentSchedule: schedule,
					Conflict:        "No scheduled dose falls within typical meal hours (07:00-20:00)",
					FDAGuidance:     timing.Guidance,
					DetectedAt:      detectedAt,
					Status:          models.ConflictStatusActive,
				})
			}
		case utils.TimingEmptyStomach:
			if !anyHourWithin(times, fastingWindowStart, fastingWindowEnd) {
				conflicts = append(conflicts, models.ScheduleConflict{
					GroupID:         med.GroupID,
					ElderID:         med.ElderID,
					MedicationID:    med.ID,
					MedicationName:  med.Name,
					ConflictType:    models.ConflictEmptyStomach,
					Description:     fmt.Sprintf("%s should be taken on an empty stomach", med.Name),
					CurrentSchedule: schedule,
					Conflict:        "No scheduled dose falls within the before-breakfast window (06:00-08:00)",
					FDAGuidance:     timing.Guidance,
					DetectedAt:      detectedAt,
					Status:          models.ConflictStatusActive,
				})
			}
		}

		if len(timing.SeparateFrom) == 0 {
			continue
		}
		for j, other := range medications {
			if j == i || !nameMatchesAny(other.Name, timing.SeparateFrom) {
				continue
			}
			gap, ok := closestGapMinutes(times, other.TimeList())
			if !ok || gap >= minSeparationMinutes {
				continue
			}
			// One record per offending medication pair, not per time pair.
			conflicts = append(conflicts, models.ScheduleConflict{
				GroupID:             med.GroupID,
				ElderID:             med.ElderID,
				MedicationID:        med.ID,
				MedicationName:      med.Name,
				OtherMedicationID:   other.ID,
				OtherMedicationName: other.Name,
				ConflictType:        models.ConflictAvoidCombination,
				Description:         fmt.Sprintf("%s should be kept at least 4 hours apart from %s", med.Name, other.Name),
				CurrentSchedule:     schedule,
				Conflict:            fmt.Sprintf("Closest scheduled doses of %s and %s are %d minutes apart", med.Name, other.Name, gap),
				FDAGuidance:         timing.Guidance,
				DetectedAt:          detectedAt,
				Status:              models.ConflictStatusActive,
			})
		}
	}
	return conflicts
}

// RunCheck fetches the elder's active medications, detects conflicts,
// persists the ones not already on file, and returns the tally. All
// persistence errors collapse to an empty result: conflict checking is
// best-effort and must never block the caller.
func (s *ConflictService) RunCheck(groupID, elderID uint) ConflictCheckResult {
	empty := ConflictCheckResult{Conflicts: []models.ScheduleConflict{}}

	meds, err := s.ActiveMedications(groupID, elderID)
	if err != nil {
		s.log.Warn("conflict check: fetching medications failed",
			zap.Uint("groupID", groupID), zap.Uint("elderID", elderID), zap.Error(err))
		return empty
	}

	detected := DetectConflicts(meds)
	if len(detected) == 0 {
		return empty
	}

	// Skip conflicts already active on file so re-runs don't pile up
	// duplicate rows.
	var existing []models.ScheduleConflict
	if err := s.db.
		Where("group_id = ? AND elder_id = ? AND status = ?", groupID, elderID, models.ConflictStatusActive).
		Find(&existing).Error; err != nil {
		s.log.Warn("conflict check: loading existing conflicts failed", zap.Error(err))
		return empty
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[conflictKey(c)] = true
	}

	saved := make([]models.ScheduleConflict, 0, len(detected))
	for _, c := range detected {
		if seen[conflictKey(c)] {
			continue
		}
		c.GroupID = groupID
		c.ElderID = elderID
		if err := s.db.Create(&c).Error; err != nil {
			s.log.Warn("conflict check: saving conflict failed", zap.Error(err))
			return empty
		}
		saved = append(saved, c)
	}
	return ConflictCheckResult{Count: len(saved), Conflicts: saved}
}

// ActiveMedications returns the elder's prescriptions with no end date or
// an end date still in the future.
func (s *ConflictService) ActiveMedications(groupID, elderID uint) ([]models.Medication, error) {
	var meds []models.Medication
	err := s.db.
		Where("group_id = ? AND elder_id = ? AND (end_date IS NULL OR end_date > ?)", groupID, elderID, time.Now()).
		Find(&meds).Error
	return meds, err
}

func (s *ConflictService) ListConflicts(groupID, elderID uint, status string) ([]models.ScheduleConflict, error) {
	q := s.db.Where("group_id = ? AND elder_id = ?", groupID, elderID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []models.ScheduleConflict
	err := q.Order("detected_at DESC").Find(&out).Error
	return out, err
}

func (s *ConflictService) MarkReviewed(groupID, conflictID uint) error {
	res := s.db.Model(&models.ScheduleConflict{}).
		Where("id = ? AND group_id = ?", conflictID, groupID).
		Update("status", models.ConflictStatusReviewed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// conflictKey identifies a conflict for dedupe purposes.
func conflictKey(c models.ScheduleConflict) string {
	return fmt.Sprintf("%d|%s|%d", c.MedicationID, c.ConflictType, c.OtherMedicationID)
}

func anyHourWithin(times []string, fromHour, toHour int) bool {
	for _, t := range times {
		h, err := utils.ClockHour(t)
		if err != nil {
			continue
		}
		if h >= fromHour && h <= toHour {
			return true
		}
	}
	return false
}

func nameMatchesAny(name string, substrings []string) bool {
	lower := strings.ToLower(name)
	for _, s := range substrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// closestGapMinutes returns the smallest same-day distance between any
// pair of scheduled times. Distances are not wrap-aware: 23:00 vs 01:00
// measures 22 hours, matching the documented behavior of the checker.
func closestGapMinutes(a, b []string) (int, bool) {
	best, found := 0, false
	for _, ta := range a {
		ma, err := utils.ClockToMinutes(ta)
		if err != nil {
			continue
		}
		for _, tb := range b {
			mb, err := utils.ClockToMinutes(tb)
			if err != nil {
				continue
			}
			d := ma - mb
			if d < 0 {
				d = -d
			}
			if !found || d < best {
				best, found = d, true
			}
		}
	}
	return best, found
}
