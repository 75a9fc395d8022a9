package handler

import (
	"go.uber.org/zap"

	"github.com/rathideep22/dsa-question-generator/internal/export"
	"github.com/rathideep22/dsa-question-generator/internal/generator"
)

type Handler struct {
	Logger    *zap.Logger
	Generator *generator.Service
	Exporter  *export.Exporter
}
