package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Entries     *services.EntryService
	Reports     *services.ReportService
	Push        *services.PushService
	Hub         *services.RealtimeHub
	Rekognition *services.RekognitionService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	entryCtl := controllers.NewEntryController(d.Entries)
	reportCtl := controllers.NewReportController(d.Reports)
	photoCtl := controllers.NewPhotoController(d.Rekognition, d.Entries)
	deviceCtl := controllers.NewDeviceController(d.Push)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/alerts", controllers.ListAlerts)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.POST("/devices", deviceCtl.Register)
	}

	entries := r.Group("/entries")
	entries.Use(middlewares.AuthMiddleware())
	{
		entries.POST("", entryCtl.Add)
		entries.GET("", entryCtl.List)
		entries.DELETE("/:id", entryCtl.Delete)
		entries.POST("/photo", photoCtl.AddFromPhoto)
	}

	reports := r.Group("/reports")
	reports.Use(middlewares.AuthMiddleware())
	{
		reports.GET("/daily", reportCtl.Daily)
		reports.GET("/weekly", reportCtl.Weekly)
		reports.POST("/weekly/finish", reportCtl.Finish)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", realtimeCtl.AlertsWS)
	}

	return r
}
