package services

import (
	"testing"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMedTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
	return db
}

func TestAddMedicationValidation(t *testing.T) {
	setupMedTestDB(t)

	// Scheduled frequencies need at least one valid time.
	_, err := AddMedication(1, 1, MedicationRequest{Name: "Metformin"})
	assert.Error(t, err)

	_, err = AddMedication(1, 1, MedicationRequest{Name: "Metformin", Times: []string{"25:00"}})
	assert.Error(t, err)

	// PRN medications carry no schedule.
	m, err := AddMedication(1, 1, MedicationRequest{Name: "Ibuprofen", FreqType: "as_needed"})
	require.NoError(t, err)
	assert.Empty(t, m.TimeList())

	m, err = AddMedication(1, 1, MedicationRequest{Name: "Metformin", Times: []string{"08:00", "20:00"}})
	require.NoError(t, err)
	assert.Equal(t, "daily", m.FreqType)
	assert.Equal(t, []string{"08:00", "20:00"}, m.TimeList())
	assert.False(t, m.StartDate.IsZero())
}

func TestListMedicationsActiveFilter(t *testing.T) {
	setupMedTestDB(t)

	_, err := AddMedication(1, 1, MedicationRequest{Name: "Metformin", Times: []string{"08:00"}})
	require.NoError(t, err)

	past := time.Now().Add(-24 * time.Hour)
	_, err = AddMedication(1, 1, MedicationRequest{Name: "Prednisone", Times: []string{"09:00"}, EndDate: &past})
	require.NoError(t, err)

	all, err := ListMedications(1, 1, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := ListMedications(1, 1, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Metformin", active[0].Name)
}

func TestMedicationScopedToTenant(t *testing.T) {
	setupMedTestDB(t)

	m, err := AddMedication(1, 1, MedicationRequest{Name: "Metformin", Times: []string{"08:00"}})
	require.NoError(t, err)

	_, err = GetMedication(2, 1, m.ID)
	assert.Error(t, err)

	_, err = GetMedication(1, 1, m.ID)
	assert.NoError(t, err)
}

func TestDiscontinueMedication(t *testing.T) {
	setupMedTestDB(t)

	m, err := AddMedication(1, 1, MedicationRequest{Name: "Metformin", Times: []string{"08:00"}})
	require.NoError(t, err)

	require.NoError(t, DiscontinueMedication(1, 1, m.ID))

	// The row survives for history; only the active list drops it.
	all, err := ListMedications(1, 1, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].EndDate)

	active, err := ListMedications(1, 1, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.Error(t, DiscontinueMedication(1, 1, 999))
}

func TestUpdateMedication(t *testing.T) {
	setupMedTestDB(t)

	m, err := AddMedication(1, 1, MedicationRequest{Name: "Metformin", Times: []string{"08:00"}})
	require.NoError(t, err)

	updated, err := UpdateMedication(1, 1, m.ID, MedicationRequest{
		Name:  "Metformin",
		Times: []string{"08:00", "18:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "18:00"}, updated.TimeList())

	_, err = UpdateMedication(1, 1, m.ID, MedicationRequest{Name: "Metformin", Times: []string{"bad"}})
	assert.Error(t, err)
}
