package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rathideep22/dsa-question-generator/internal/generator"
	"github.com/rathideep22/dsa-question-generator/pkg/model"
	"github.com/rathideep22/dsa-question-generator/pkg/response"
)

// GenerateQuestions runs one generation cycle for the submitted form
// parameters and returns the parsed batch.
func (h *Handler) GenerateQuestions(c *gin.Context) {
	var req model.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := generator.ValidateRequest(req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.Generator.Generate(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("generate_questions: backend call failed",
			zap.String("topic", req.Topic),
			zap.String("role", req.Role),
			zap.Error(err),
		)
		response.InternalError(c, "Failed to generate questions. Please try again.")
		return
	}

	response.OK(c, res)
}
