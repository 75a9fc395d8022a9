package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rathideep22/dsa-question-generator/pkg/model"
	"github.com/rathideep22/dsa-question-generator/pkg/response"
)

// ExportQuestions appends the user-selected records to the configured
// sheet, or logs them when export is not configured.
func (h *Handler) ExportQuestions(c *gin.Context) {
	var req model.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if len(req.Questions) == 0 {
		response.BadRequest(c, "no questions selected for export")
		return
	}

	res, err := h.Exporter.Export(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("export_questions: append failed",
			zap.Int("questions", len(req.Questions)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to export questions.",
			"detail":  err.Error(),
		})
		return
	}

	h.Logger.Info("export_questions: export finished",
		zap.Int("questions", len(req.Questions)),
		zap.Int("updated_rows", res.UpdatedRows),
		zap.Bool("dry_run", h.Exporter.DryRun()),
	)

	response.OK(c, res)
}
