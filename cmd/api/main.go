package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/rathideep22/dsa-question-generator/internal/config"
	"github.com/rathideep22/dsa-question-generator/internal/export"
	"github.com/rathideep22/dsa-question-generator/internal/generator"
	"github.com/rathideep22/dsa-question-generator/internal/handler"
	"github.com/rathideep22/dsa-question-generator/internal/llm"
	"github.com/rathideep22/dsa-question-generator/internal/logger"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	llmClient := llm.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.MaxTokens, cfg.LLM.Temperature)
	genService := generator.NewService(llmClient, log)

	exporter, err := export.NewExporter(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName, log)
	if err != nil {
		sugar.Fatal(err)
	}

	app := &application{
		Logger: log,
		Config: cfg,
		Handler: &handler.Handler{
			Logger:    log,
			Generator: genService,
			Exporter:  exporter,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
