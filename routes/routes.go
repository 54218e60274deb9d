package routes

import (
	"github.com/qashsolutions/myhealthguide-sub011/controllers"
	"github.com/qashsolutions/myhealthguide-sub011/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles the stateful handlers wired up in main.
type Controllers struct {
	Medication   *controllers.MedicationController
	Diet         *controllers.DietController
	Notification *controllers.NotificationController
	Billing      *controllers.BillingController
	Chat         *controllers.ChatController
	Realtime     *controllers.RealtimeController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
	}
	api.POST("/billing/webhook", ctl.Billing.Webhook)

	// Everything below requires a signed-in caregiver
	authed := api.Group("")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.POST("/groups", controllers.CreateGroup)
		authed.GET("/groups", controllers.ListGroups)
		authed.POST("/invites/accept", controllers.AcceptInvite)

		authed.POST("/user/devices", ctl.Notification.RegisterDevice)
		authed.POST("/user/notifications/toggle", ctl.Notification.Toggle)
		authed.GET("/user/alerts", ctl.Notification.ListAlerts)

		authed.POST("/chat", ctl.Chat.StartChat)
		authed.GET("/chat", ctl.Chat.ListSessions)
		authed.POST("/chat/:sessionID/messages", ctl.Chat.SendMessage)
		authed.GET("/chat/:sessionID/messages", ctl.Chat.ListMessages)

		authed.GET("/ws", ctl.Realtime.Serve)
	}

	// Tenant-scoped routes: membership enforced per request
	group := authed.Group("/groups/:groupID")
	group.Use(middlewares.GroupAccessMiddleware())
	{
		group.GET("/members", controllers.ListMembers)
		group.POST("/invites", controllers.InviteCaregiver)

		group.POST("/elders", controllers.CreateElder)
		group.GET("/elders", controllers.ListElders)
		group.GET("/elders/:elderID", controllers.GetElder)
		group.PUT("/elders/:elderID", controllers.UpdateElder)
		group.DELETE("/elders/:elderID", controllers.DeleteElder)

		group.POST("/elders/:elderID/medications", ctl.Medication.Add)
		group.GET("/elders/:elderID/medications", ctl.Medication.List)
		group.PUT("/elders/:elderID/medications/:medID", ctl.Medication.Update)
		group.DELETE("/elders/:elderID/medications/:medID", ctl.Medication.Discontinue)
		group.POST("/elders/:elderID/medications/check", ctl.Medication.Check)
		group.GET("/elders/:elderID/conflicts", ctl.Medication.ListConflicts)
		group.PATCH("/conflicts/:conflictID/review", ctl.Medication.ReviewConflict)

		group.POST("/elders/:elderID/diet", ctl.Diet.Add)
		group.GET("/elders/:elderID/diet", ctl.Diet.List)
		group.PUT("/elders/:elderID/diet/:entryID", ctl.Diet.Update)
		group.DELETE("/elders/:elderID/diet/:entryID", ctl.Diet.Delete)
		group.POST("/elders/:elderID/diet/:entryID/analyze", ctl.Diet.AnalyzeEntry)
		group.POST("/elders/:elderID/nutrition/analyze", ctl.Diet.Analyze)
		group.GET("/elders/:elderID/nutrition/analysis", ctl.Diet.LatestAnalysis)

		group.POST("/elders/:elderID/notes", controllers.AddCareNote)
		group.GET("/elders/:elderID/notes", controllers.ListCareNotes)
		group.DELETE("/elders/:elderID/notes/:noteID", controllers.DeleteCareNote)

		group.POST("/billing/checkout", ctl.Billing.CreateCheckout)
		group.GET("/billing/subscription", ctl.Billing.GetSubscription)
	}

	return r
}
