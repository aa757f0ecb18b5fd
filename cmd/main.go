package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/datainsight/sst-backend/internal/app"
	"github.com/datainsight/sst-backend/internal/observability"
	"github.com/datainsight/sst-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	shutdown := observability.InitOTel(context.Background(), application.Log, observability.OtelConfig{
		ServiceName: "sst-backend",
		Environment: os.Getenv("APP_ENV"),
		Version:     os.Getenv("APP_VERSION"),
	})
	if shutdown != nil {
		defer shutdown(context.Background())
	}

	port := utils.GetEnv("PORT", "8080", application.Log)
	application.Log.Info("Server listening", "port", port)
	if err := application.Run(":" + port); err != nil {
		application.Log.Error("Server failed", "error", err)
	}
}
