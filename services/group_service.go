package services

import (
	"errors"
	"log"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/models"
	"github.com/qashsolutions/myhealthguide-sub011/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const inviteTTL = 7 * 24 * time.Hour

func CreateGroup(ownerID uint, name, plan string) (*models.CareGroup, error) {
	if plan == "" {
		plan = "trial"
	}
	group := models.CareGroup{Name: name, Plan: plan, OwnerUserID: ownerID}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		member := models.GroupMember{GroupID: group.ID, UserID: ownerID, Role: "admin"}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func ListGroupsForUser(userID uint) ([]models.CareGroup, error) {
	var groups []models.CareGroup
	err := config.DB.
		Joins("JOIN group_members ON group_members.group_id = care_groups.id").
		Where("group_members.user_id = ? AND group_members.deleted_at IS NULL", userID).
		Find(&groups).Error
	return groups, err
}

// IsMember reports whether the user belongs to the group. Used by the
// group-access middleware on every tenant-scoped route.
func IsMember(userID, groupID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.GroupMember{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Count(&count).Error
	return count > 0, err
}

func ListMembers(groupID uint) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := config.DB.Where("group_id = ?", groupID).Find(&members).Error
	return members, err
}

// InviteCaregiver creates a one-time invite code and mails it out. The
// email is best-effort; the invite stands even if SES rejects.
func InviteCaregiver(groupID, inviterID uint, email, role string) (*models.GroupInvite, error) {
	var group models.CareGroup
	if err := config.DB.First(&group, groupID).Error; err != nil {
		return nil, err
	}
	if role == "" {
		role = "caregiver"
	}
	invite := models.GroupInvite{
		GroupID:   groupID,
		Email:     email,
		Code:      uuid.NewString(),
		Role:      role,
		InvitedBy: inviterID,
		ExpiresAt: time.Now().Add(inviteTTL),
	}
	if err := config.DB.Create(&invite).Error; err != nil {
		return nil, err
	}
	if err := utils.SendCaregiverInvite(email, group.Name, invite.Code); err != nil {
		log.Printf("invite email to %s failed: %v", email, err)
	}
	return &invite, nil
}

func AcceptInvite(userID uint, code string) (*models.GroupMember, error) {
	var invite models.GroupInvite
	if err := config.DB.Where("code = ? AND accepted = ?", code, false).First(&invite).Error; err != nil {
		return nil, errors.New("invite not found")
	}
	if time.Now().After(invite.ExpiresAt) {
		return nil, errors.New("invite expired")
	}

	member := models.GroupMember{
		GroupID:   invite.GroupID,
		UserID:    userID,
		Role:      invite.Role,
		InvitedBy: invite.InvitedBy,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return tx.Model(&invite).Update("accepted", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}
