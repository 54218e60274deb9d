package services

import (
	"errors"
	"strings"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/models"
	"github.com/qashsolutions/myhealthguide-sub011/utils"
)

type MedicationRequest struct {
	Name         string     `json:"name" binding:"required"`
	Dosage       string     `json:"dosage"`
	FreqType     string     `json:"frequency_type"`
	Times        []string   `json:"times"`
	Instructions string     `json:"instructions"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

func validateScheduleTimes(freqType string, times []string) error {
	if freqType == "as_needed" {
		return nil
	}
	if len(times) == 0 {
		return errors.New("at least one scheduled time is required")
	}
	for _, t := range times {
		if _, err := utils.ClockToMinutes(t); err != nil {
			return err
		}
	}
	return nil
}

func AddMedication(groupID, elderID uint, req MedicationRequest) (*models.Medication, error) {
	if req.FreqType == "" {
		req.FreqType = "daily"
	}
	if err := validateScheduleTimes(req.FreqType, req.Times); err != nil {
		return nil, err
	}
	if req.StartDate.IsZero() {
		req.StartDate = time.Now()
	}
	med := models.Medication{
		ElderID:      elderID,
		GroupID:      groupID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		FreqType:     req.FreqType,
		Times:        strings.Join(req.Times, ","),
		Instructions: req.Instructions,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := config.DB.Create(&med).Error; err != nil {
		return nil, err
	}
	return &med, nil
}

func ListMedications(groupID, elderID uint, activeOnly bool) ([]models.Medication, error) {
	q := config.DB.Where("group_id = ? AND elder_id = ?", groupID, elderID)
	if activeOnly {
		q = q.Where("(end_date IS NULL OR end_date > ?)", time.Now())
	}
	var meds []models.Medication
	err := q.Order("name ASC").Find(&meds).Error
	return meds, err
}

func GetMedication(groupID, elderID, medID uint) (*models.Medication, error) {
	var med models.Medication
	err := config.DB.
		Where("id = ? AND group_id = ? AND elder_id = ?", medID, groupID, elderID).
		First(&med).Error
	if err != nil {
		return nil, err
	}
	return &med, nil
}

func UpdateMedication(groupID, elderID, medID uint, req MedicationRequest) (*models.Medication, error) {
	med, err := GetMedication(groupID, elderID, medID)
	if err != nil {
		return nil, err
	}
	if req.FreqType == "" {
		req.FreqType = med.FreqType
	}
	if err := validateScheduleTimes(req.FreqType, req.Times); err != nil {
		return nil, err
	}
	med.Name = req.Name
	med.Dosage = req.Dosage
	med.FreqType = req.FreqType
	med.Times = strings.Join(req.Times, ",")
	med.Instructions = req.Instructions
	if !req.StartDate.IsZero() {
		med.StartDate = req.StartDate
	}
	med.EndDate = req.EndDate
	if err := config.DB.Save(med).Error; err != nil {
		return nil, err
	}
	return med, nil
}

// DiscontinueMedication ends a prescription now instead of deleting it;
// history stays on file for the conflict audit trail.
func DiscontinueMedication(groupID, elderID, medID uint) error {
	now := time.Now()
	res := config.DB.Model(&models.Medication{}).
		Where("id = ? AND group_id = ? AND elder_id = ?", medID, groupID, elderID).
		Update("end_date", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("medication not found")
	}
	return nil
}
