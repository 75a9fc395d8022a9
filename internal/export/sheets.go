// Package export appends selected questions to a Google Sheet. When no
// credentials are configured the exporter runs dry: rows are logged and a
// success summary is returned without any network call.
package export

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/rathideep22/dsa-question-generator/pkg/model"
)

type Exporter struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	logger        *zap.Logger
}

// NewExporter builds a sheets-backed exporter, or a dry-run one when the
// credentials file or spreadsheet id is missing.
func NewExporter(ctx context.Context, credentialsFile, spreadsheetID, sheetName string, logger *zap.Logger) (*Exporter, error) {
	e := &Exporter{
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger,
	}

	if credentialsFile == "" || spreadsheetID == "" {
		logger.Warn("sheets export not configured, running in dry-run mode")
		return e, nil
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	e.svc = svc
	return e, nil
}

// DryRun reports whether the exporter has no live sheets backend.
func (e *Exporter) DryRun() bool {
	return e.svc == nil
}

// Export appends one row per selected question. The header write is
// fire-and-forget: a sheet that already has headers rejects the update
// and that is fine. Only the append itself can fail the export.
func (e *Exporter) Export(ctx context.Context, req model.ExportRequest) (*model.ExportResult, error) {
	rows := BuildRows(req.Questions, req.InputParameters)
	summary := Summaries(req.Questions)

	if e.svc == nil {
		e.logger.Info("dry-run export, rows logged only",
			zap.Int("rows", len(rows)),
			zap.String("role", req.InputParameters.Role),
		)
		return &model.ExportResult{
			Success:         true,
			Message:         fmt.Sprintf("Export not configured; logged %d questions without writing to a sheet.", len(req.Questions)),
			UpdatedRows:     0,
			QuestionSummary: summary,
		}, nil
	}

	headerRange := fmt.Sprintf("%s!A1:F1", e.sheetName)
	if _, err := e.svc.Spreadsheets.Values.
		Update(e.spreadsheetID, headerRange, &sheets.ValueRange{Values: [][]interface{}{HeaderRow()}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		e.logger.Debug("header update skipped", zap.Error(err))
	}

	appendRange := fmt.Sprintf("%s!A:F", e.sheetName)
	resp, err := e.svc.Spreadsheets.Values.
		Append(e.spreadsheetID, appendRange, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets append: %w", err)
	}

	updated := len(rows)
	if resp.Updates != nil {
		updated = int(resp.Updates.UpdatedRows)
	}

	e.logger.Info("questions exported",
		zap.Int("rows", updated),
		zap.String("spreadsheet_id", e.spreadsheetID),
	)

	return &model.ExportResult{
		Success:         true,
		Message:         fmt.Sprintf("Exported %d questions to the sheet.", len(req.Questions)),
		UpdatedRows:     updated,
		QuestionSummary: summary,
	}, nil
}
