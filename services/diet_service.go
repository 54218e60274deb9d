package services

import (
	"errors"
	"strings"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/models"
)

var validMeals = map[string]bool{"breakfast": true, "lunch": true, "dinner": true, "snack": true}

type DietEntryRequest struct {
	Meal      string    `json:"meal" binding:"required"`
	Items     []string  `json:"items"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

func AddDietEntry(groupID, elderID uint, req DietEntryRequest) (*models.DietEntry, error) {
	meal := strings.ToLower(strings.TrimSpace(req.Meal))
	if !validMeals[meal] {
		return nil, errors.New("meal must be breakfast, lunch, dinner or snack")
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now()
	}
	entry := models.DietEntry{
		ElderID:   elderID,
		GroupID:   groupID,
		Meal:      meal,
		Items:     strings.Join(req.Items, ","),
		Notes:     req.Notes,
		Timestamp: req.Timestamp,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func ListDietEntries(groupID, elderID uint, from, to time.Time) ([]models.DietEntry, error) {
	q := config.DB.Where("group_id = ? AND elder_id = ?", groupID, elderID)
	if !from.IsZero() && !to.IsZero() {
		q = q.Where("timestamp BETWEEN ? AND ?", from, to)
	}
	var entries []models.DietEntry
	err := q.Order("timestamp DESC").Find(&entries).Error
	return entries, err
}

func GetDietEntry(groupID, elderID, entryID uint) (*models.DietEntry, error) {
	var entry models.DietEntry
	err := config.DB.
		Where("id = ? AND group_id = ? AND elder_id = ?", entryID, groupID, elderID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func UpdateDietEntry(groupID, elderID, entryID uint, req DietEntryRequest) (*models.DietEntry, error) {
	entry, err := GetDietEntry(groupID, elderID, entryID)
	if err != nil {
		return nil, err
	}
	meal := strings.ToLower(strings.TrimSpace(req.Meal))
	if !validMeals[meal] {
		return nil, errors.New("meal must be breakfast, lunch, dinner or snack")
	}
	entry.Meal = meal
	entry.Items = strings.Join(req.Items, ",")
	entry.Notes = req.Notes
	if !req.Timestamp.IsZero() {
		entry.Timestamp = req.Timestamp
	}
	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteDietEntry(groupID, elderID, entryID uint) error {
	return config.DB.
		Where("id = ? AND group_id = ? AND elder_id = ?", entryID, groupID, elderID).
		Delete(&models.DietEntry{}).Error
}
