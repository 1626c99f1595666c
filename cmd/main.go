package main

import (
	"backend/config"
	"backend/logger"
	"backend/nutrition"
	"backend/refdata"
	"backend/routes"
	"backend/services"
	"backend/utils"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	engine := nutrition.NewEngine(refdata.NewTable(), refdata.NewContent())

	analysis := services.NewAnalysisService()
	entries := services.NewEntryService(analysis)
	reports := services.NewReportService(config.DB, entries, engine)

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		logger.Fatal("push service init failed", zap.Error(err))
	}
	services.InitAlertDeps(config.DB, hub, push)

	rekognition, err := services.NewRekognitionService()
	if err != nil {
		logger.Fatal("rekognition init failed", zap.Error(err))
	}

	r := routes.SetupRouter(routes.Deps{
		Entries:     entries,
		Reports:     reports,
		Push:        push,
		Hub:         hub,
		Rekognition: rekognition,
	})
	if err := r.Run(":8080"); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
