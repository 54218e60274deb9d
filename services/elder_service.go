package services

import (
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/models"
)

func CreateElder(groupID uint, name, sex, notes string, birthDate *time.Time) (*models.Elder, error) {
	elder := models.Elder{GroupID: groupID, Name: name, Sex: sex, Notes: notes, BirthDate: birthDate}
	if err := config.DB.Create(&elder).Error; err != nil {
		return nil, err
	}
	return &elder, nil
}

func ListElders(groupID uint) ([]models.Elder, error) {
	var elders []models.Elder
	err := config.DB.Where("group_id = ?", groupID).Order("name ASC").Find(&elders).Error
	return elders, err
}

func GetElder(groupID, elderID uint) (*models.Elder, error) {
	var elder models.Elder
	err := config.DB.Where("id = ? AND group_id = ?", elderID, groupID).First(&elder).Error
	if err != nil {
		return nil, err
	}
	return &elder, nil
}

func UpdateElder(groupID, elderID uint, name, sex, notes string, birthDate *time.Time) (*models.Elder, error) {
	elder, err := GetElder(groupID, elderID)
	if err != nil {
		return nil, err
	}
	elder.Name = name
	elder.Sex = sex
	elder.Notes = notes
	elder.BirthDate = birthDate
	if err := config.DB.Save(elder).Error; err != nil {
		return nil, err
	}
	return elder, nil
}

func DeleteElder(groupID, elderID uint) error {
	return config.DB.
		Where("id = ? AND group_id = ?", elderID, groupID).
		Delete(&models.Elder{}).Error
}
