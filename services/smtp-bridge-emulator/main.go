package main

import (
	"log/slog"
	"time"

	"github.com/e5hapiro/chevra-guest-form/pkg/apihelpers"
	"github.com/e5hapiro/chevra-guest-form/services/smtp-bridge-emulator/apihandlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var conf config

func main() {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.GinConfig.AllowOrigins,
		AllowMethods:     []string{"POST", "GET"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length", "Api-Key"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", apihandlers.HealthCheckHandle)
	root := router.Group("/")
	apiModule := apihandlers.NewHTTPHandler(conf.ApiKeys, conf.EmailsDir, conf.From)

	apiModule.AddRoutes(root)

	if conf.GinConfig.DebugMode {
		apihelpers.WriteRoutesToFile(router, "smtp-bridge-emulator-api-routes.txt")
	}

	slog.Info("Starting SMTP Bridge emulator API on port " + conf.GinConfig.Port)
	err := router.Run(":" + conf.GinConfig.Port)
	if err != nil {
		slog.Error("Exited SMTP Bridge emulator API", slog.String("error", err.Error()))
		return
	}
}
