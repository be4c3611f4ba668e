package main

import (
	"context"
	"log"

	"github.com/emontoya05/healthtrack/internal/app"
	"github.com/emontoya05/healthtrack/internal/config"
	"github.com/emontoya05/healthtrack/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewRotatingFileLogger(cfg.LogDir, cfg.LogLevel)

	ctx := context.Background()

	a, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	a.Run(ctx)

}
