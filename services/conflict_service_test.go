package services

import (
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

func setupConflictTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func med(name, times string) models.Medication {
	return models.Medication{GroupID: 1, ElderID: 1, Name: name, Times: times}
}

func TestDetectConflictsUnknownMedication(t *testing.T) {
	got := DetectConflicts([]models.Medication{med("Vitamin D", "02:00")})
	assert.Empty(t, got)
}

func TestDetectConflictsFoodRequired(t *testing.T) {
	got := DetectConflicts([]models.Medication{med("Metformin", "22:00")})
	require.Len(t, got, 1)
	assert.Equal(t, models.ConflictFoodRequired, got[0].ConflictType)
	assert.Equal(t, "Metformin", got[0].MedicationName)
	assert.Equal(t, models.ConflictStatusActive, got[0].Status)
	assert.NotEmpty(t, got[0].FDAGuidance)

	// A single dose inside meal hours clears the flag.
	got = DetectConflicts([]models.Medication{med("Metformin", "22:00,08:00")})
	assert.Empty(t, got)
}

func TestDetectConflictsFoodRequiredBoundaries(t *testing.T) {
	// Hours 7 and 20 are inside the meal window.
	assert.Empty(t, DetectConflicts([]models.Medication{med("Metformin", "07:00")}))
	assert.Empty(t, DetectConflicts([]models.Medication{med("Metformin", "20:59")}))
	assert.Len(t, DetectConflicts([]models.Medication{med("Metformin", "06:59")}), 1)
	assert.Len(t, DetectConflicts([]models.Medication{med("Metformin", "21:00")}), 1)
}

func TestDetectConflictsEmptyStomach(t *testing.T) {
	got := DetectConflicts([]models.Medication{med("Omeprazole", "12:00")})
	require.Len(t, got, 1)
	assert.Equal(t, models.ConflictEmptyStomach, got[0].ConflictType)

	assert.Empty(t, DetectConflicts([]models.Medication{med("Omeprazole", "06:30")}))
	assert.Empty(t, DetectConflicts([]models.Medication{med("Omeprazole", "08:45")}))
}

func TestDetectConflictsSeparation(t *testing.T) {
	got := DetectConflicts([]models.Medication{
		med("Levothyroxine", "08:00"),
		med("Calcium Carbonate", "10:00"),
	})
	require.Len(t, got, 1)
	c := got[0]
	assert.Equal(t, models.ConflictAvoidCombination, c.ConflictType)
	assert.Equal(t, "Levothyroxine", c.MedicationName)
	assert.Equal(t, "Calcium Carbonate", c.OtherMedicationName)
	assert.Contains(t, c.Conflict, "120 minutes")
}

func TestDetectConflictsSeparationBoundary(t *testing.T) {
	// Exactly four hours apart is acceptable; 06:00 also satisfies the
	// empty-stomach window, so nothing fires.
	got := DetectConflicts([]models.Medication{
		med("Levothyroxine", "06:00"),
		med("Calcium Carbonate", "10:00"),
	})
	assert.Empty(t, got)

	// One minute closer and the pair conflicts.
	got = DetectConflicts([]models.Medication{
		med("Levothyroxine", "06:00"),
		med("Calcium Carbonate", "09:59"),
	})
	require.Len(t, got, 1)
	assert.Equal(t, models.ConflictAvoidCombination, got[0].ConflictType)
}

func TestDetectConflictsOneRecordPerPair(t *testing.T) {
	// Two offending time pairs still yield a single conflict, reporting
	// the closest gap.
	got := DetectConflicts([]models.Medication{
		med("Levothyroxine", "06:00,07:00"),
		med("Calcium Carbonate", "08:00"),
	})
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Conflict, "60 minutes")
}

func TestDetectConflictsDirectional(t *testing.T) {
	// Warfarin lists ibuprofen; ibuprofen does not list warfarin, and its
	// 09:00 dose satisfies its own with-food rule.
	got := DetectConflicts([]models.Medication{
		med("Warfarin", "08:00"),
		med("Ibuprofen", "09:00"),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Warfarin", got[0].MedicationName)
	assert.Equal(t, "Ibuprofen", got[0].OtherMedicationName)
}

func TestRunCheckPersistsAndDedupes(t *testing.T) {
	db := setupConflictTestDB(t)
	svc := NewConflictService(db, zap.NewNop())

	m := med("Metformin", "22:00")
	require.NoError(t, db.Create(&m).Error)

	res := svc.RunCheck(1, 1)
	require.Equal(t, 1, res.Count)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, models.ConflictFoodRequired, res.Conflicts[0].ConflictType)

	var stored int64
	require.NoError(t, db.Model(&models.ScheduleConflict{}).Count(&stored).Error)
	assert.EqualValues(t, 1, stored)

	// Re-running must not pile up duplicate rows.
	res = svc.RunCheck(1, 1)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Conflicts)
	assert.Empty(t, res.Conflicts)
	require.NoError(t, db.Model(&models.ScheduleConflict{}).Count(&stored).Error)
	assert.EqualValues(t, 1, stored)
}

func TestRunCheckAfterReview(t *testing.T) {
	db := setupConflictTestDB(t)
	svc := NewConflictService(db, zap.NewNop())

	m := med("Metformin", "22:00")
	require.NoError(t, db.Create(&m).Error)

	res := svc.RunCheck(1, 1)
	require.Equal(t, 1, res.Count)

	require.NoError(t, svc.MarkReviewed(1, res.Conflicts[0].ID))

	// Reviewed conflicts no longer suppress detection of the same issue.
	res = svc.RunCheck(1, 1)
	assert.Equal(t, 1, res.Count)
}

func TestMarkReviewedScopedToGroup(t *testing.T) {
	db := setupConflictTestDB(t)
	svc := NewConflictService(db, zap.NewNop())

	m := med("Metformin", "22:00")
	require.NoError(t, db.Create(&m).Error)
	res := svc.RunCheck(1, 1)
	require.Equal(t, 1, res.Count)

	err := svc.MarkReviewed(99, res.Conflicts[0].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRunCheckIgnoresDiscontinued(t *testing.T) {
	db := setupConflictTestDB(t)
	svc := NewConflictService(db, zap.NewNop())

	past := time.Now().Add(-24 * time.Hour)
	m := med("Metformin", "22:00")
	m.EndDate = &past
	require.NoError(t, db.Create(&m).Error)

	res := svc.RunCheck(1, 1)
	assert.Equal(t, 0, res.Count)
}

func TestActiveMedications(t *testing.T) {
	db := setupConflictTestDB(t)
	svc := NewConflictService(db, zap.NewNop())

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(30 * 24 * time.Hour)

	open := med("Metformin", "08:00")
	ending := med("Prednisone", "09:00")
	ending.EndDate = &future
	ended := med("Ibuprofen", "12:00")
	ended.EndDate = &past
	otherElder := med("Warfarin", "08:00")
	otherElder.ElderID = 2

	for _, m := range []models.Medication{open, ending, ended, otherElder} {
		require.NoError(t, db.Create(&m).Error)
	}

	meds, err := svc.ActiveMedications(1, 1)
	require.NoError(t, err)
	require.Len(t, meds, 2)
	names := []string{meds[0].Name, meds[1].Name}
	assert.ElementsMatch(t, []string{"Metformin", "Prednisone"}, names)
}

func TestListConflictsFiltersByStatus(t *testing.T) {
	db := setupConflictTestDB(t)
	svc := NewConflictService(db, zap.NewNop())

	m1 := med("Metformin", "22:00")
	m2 := med("Omeprazole", "12:00")
	require.NoError(t, db.Create(&m1).Error)
	require.NoError(t, db.Create(&m2).Error)

	res := svc.RunCheck(1, 1)
	require.Equal(t, 2, res.Count)
	require.NoError(t, svc.MarkReviewed(1, res.Conflicts[0].ID))

	active, err := svc.ListConflicts(1, 1, models.ConflictStatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.ListConflicts(1, 1, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
