package services

import (
	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/models"
)

func AddCareNote(groupID, elderID, authorID uint, category, body string) (*models.CareNote, error) {
	if category == "" {
		category = "general"
	}
	note := models.CareNote{
		ElderID:  elderID,
		GroupID:  groupID,
		AuthorID: authorID,
		Category: category,
		Body:     body,
	}
	if err := config.DB.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func ListCareNotes(groupID, elderID uint, category string) ([]models.CareNote, error) {
	q := config.DB.Where("group_id = ? AND elder_id = ?", groupID, elderID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var notes []models.CareNote
	err := q.Order("created_at DESC").Find(&notes).Error
	return notes, err
}

func DeleteCareNote(groupID, elderID, noteID uint) error {
	return config.DB.
		Where("id = ? AND group_id = ? AND elder_id = ?", noteID, groupID, elderID).
		Delete(&models.CareNote{}).Error
}
