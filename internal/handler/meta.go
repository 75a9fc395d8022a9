package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/rathideep22/dsa-question-generator/internal/catalog"
	"github.com/rathideep22/dsa-question-generator/pkg/response"
)

// FormOptions serves the static option tables the form is built from.
func (h *Handler) FormOptions(c *gin.Context) {
	response.OK(c, gin.H{
		"roles":        catalog.Roles(),
		"topics":       catalog.Topics(),
		"difficulties": catalog.Difficulties(),
		"languages":    catalog.Languages(),
		"modes":        catalog.Modes(),
	})
}
