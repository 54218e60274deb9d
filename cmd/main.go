package main

import (
	"context"
	"log"

	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/controllers"
	"github.com/qashsolutions/myhealthguide-sub011/routes"
	"github.com/qashsolutions/myhealthguide-sub011/services"
	"github.com/qashsolutions/myhealthguide-sub011/utils"

	"go.uber.org/zap"
)

func main() {
	config.InitDB()
	utils.InitMailer()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		logger.Warn("push service unavailable", zap.Error(err))
		push = nil
	}
	sms, err := services.NewSMSService(logger)
	if err != nil {
		logger.Warn("sms service unavailable", zap.Error(err))
		sms = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	ai, err := services.NewAIService(context.Background(), config.DB, logger)
	if err != nil {
		logger.Warn("AI features disabled", zap.Error(err))
		ai = nil
	}

	conflicts := services.NewConflictService(config.DB, logger)
	nutrition := services.NewNutritionService(config.DB, logger, ai)
	billing := services.NewBillingService(config.DB, logger)

	scheduler := services.NewScheduler(config.DB, logger, conflicts, nutrition, sms)
	if err := scheduler.Start(); err != nil {
		logger.Fatal("scheduler start failed", zap.Error(err))
	}

	r := routes.SetupRouter(routes.Controllers{
		Medication:   controllers.NewMedicationController(conflicts),
		Diet:         controllers.NewDietController(nutrition, ai),
		Notification: controllers.NewNotificationController(push),
		Billing:      controllers.NewBillingController(billing),
		Chat:         controllers.NewChatController(ai),
		Realtime:     controllers.NewRealtimeController(hub),
	})
	if err := r.Run(":8080"); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
