package services

import (
	"context"
	"fmt"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Scheduler runs the recurring background jobs: a nightly medication
// schedule check and a weekly nutrition analysis for every elder.
type Scheduler struct {
	cron      *cron.Cron
	db        *gorm.DB
	log       *zap.Logger
	conflicts *ConflictService
	nutrition *NutritionService
	sms       *SMSService // nil disables text alerts
}

func NewScheduler(db *gorm.DB, logger *zap.Logger, conflicts *ConflictService, nutrition *NutritionService, sms *SMSService) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		db:        db,
		log:       logger,
		conflicts: conflicts,
		nutrition: nutrition,
		sms:       sms,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 2 * * *", s.RunConflictSweep); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 6 * * 1", s.RunNutritionSweep); err != nil {
		return err
	}
	// Dose schedules live on an HH:MM grid, so reminders tick every minute.
	if _, err := s.cron.AddFunc("* * * * *", s.RunDoseReminders); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunConflictSweep checks every elder's medication schedule and alerts
// the care group when new conflicts turn up. Each elder is independent;
// one failure never stops the sweep.
func (s *Scheduler) RunConflictSweep() {
	elders, err := s.allElders()
	if err != nil {
		s.log.Warn("conflict sweep: listing elders failed", zap.Error(err))
		return
	}
	for _, e := range elders {
		res := s.conflicts.RunCheck(e.GroupID, e.ID)
		if res.Count == 0 {
			continue
		}
		s.log.Info("conflict sweep: new conflicts",
			zap.Uint("elderID", e.ID), zap.Int("count", res.Count))
		EmitGroupAlert(e.GroupID, "warning",
			fmt.Sprintf("%d new medication schedule conflict(s) found for %s", res.Count, e.Name))
		s.notifyBySMS(e, res.Count)
	}
}

// RunNutritionSweep refreshes each elder's weekly nutrition report.
func (s *Scheduler) RunNutritionSweep() {
	elders, err := s.allElders()
	if err != nil {
		s.log.Warn("nutrition sweep: listing elders failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	for _, e := range elders {
		if report := s.nutrition.Analyze(ctx, e.GroupID, e.ID, e.Name, defaultAnalysisWindowDays); report != nil {
			s.log.Info("nutrition sweep: report generated",
				zap.Uint("elderID", e.ID), zap.Float64("score", report.OverallScore))
		}
	}
}

// RunDoseReminders texts the care group for every medication due at the
// current clock minute.
func (s *Scheduler) RunDoseReminders() {
	if s.sms == nil {
		return
	}
	now := time.Now()
	clock := now.Format("15:04")

	// LIKE is a prefilter over the comma-joined schedule; the exact slot
	// is confirmed against TimeList below.
	var meds []models.Medication
	err := s.db.
		Where("(end_date IS NULL OR end_date > ?) AND times LIKE ?", now, "%"+clock+"%").
		Find(&meds).Error
	if err != nil {
		s.log.Warn("dose reminders: listing medications failed", zap.Error(err))
		return
	}

	for _, m := range meds {
		due := false
		for _, t := range m.TimeList() {
			if t == clock {
				due = true
				break
			}
		}
		if !due {
			continue
		}
		var elder models.Elder
		if err := s.db.First(&elder, m.ElderID).Error; err != nil {
			continue
		}
		var members []models.GroupMember
		if err := s.db.Where("group_id = ?", m.GroupID).Find(&members).Error; err != nil {
			continue
		}
		for _, gm := range members {
			var user models.User
			if err := s.db.First(&user, gm.UserID).Error; err != nil || user.PhoneNumber == "" {
				continue
			}
			_ = s.sms.SendDoseReminder(user.PhoneNumber, elder.Name, m, clock)
		}
	}
}

func (s *Scheduler) allElders() ([]models.Elder, error) {
	var elders []models.Elder
	err := s.db.Find(&elders).Error
	return elders, err
}

func (s *Scheduler) notifyBySMS(elder models.Elder, count int) {
	if s.sms == nil {
		return
	}
	var members []models.GroupMember
	if err := s.db.Where("group_id = ?", elder.GroupID).Find(&members).Error; err != nil {
		return
	}
	for _, m := range members {
		var user models.User
		if err := s.db.First(&user, m.UserID).Error; err != nil || user.PhoneNumber == "" {
			continue
		}
		_ = s.sms.SendConflictAlert(user.PhoneNumber, elder.Name, count)
	}
}
