package services

import (
	"fmt"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert records an alert for one caregiver and fans it out over
// websocket and push. Safe to call anywhere, including before init.
func EmitAlert(userID, groupID uint, typ, message string) {
	if _alert.db == nil {
		return // not initialized
	}
	a := &models.Alert{UserID: userID, GroupID: groupID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "New Alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// EmitGroupAlert delivers an alert to every member of a care group.
func EmitGroupAlert(groupID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	var members []models.GroupMember
	if err := _alert.db.Where("group_id = ?", groupID).Find(&members).Error; err != nil {
		return
	}
	for _, m := range members {
		EmitAlert(m.UserID, groupID, typ, message)
	}
}

func ListAlerts(db *gorm.DB, userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	var alerts []models.Alert
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&alerts).Error
	return alerts, err
}
