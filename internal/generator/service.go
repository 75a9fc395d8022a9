package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rathideep22/dsa-question-generator/internal/catalog"
	"github.com/rathideep22/dsa-question-generator/pkg/model"
)

// CompletionClient is the one call the generator needs from the text
// backend.
type CompletionClient interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Service runs the build-prompt, call-backend, parse-reply pipeline for
// one generation request.
type Service struct {
	client CompletionClient
	logger *zap.Logger
}

func NewService(client CompletionClient, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// ValidateRequest checks a request against the catalog before any
// backend call. Unknown roles are allowed; the prompt builder falls back
// to a generic company phrase for them.
func ValidateRequest(req model.GenerationRequest) error {
	if len(req.Languages) == 0 {
		return fmt.Errorf("at least one target language is required")
	}
	for _, l := range req.Languages {
		if strings.TrimSpace(l) == "" {
			return fmt.Errorf("language entries must be non-empty")
		}
	}
	if !catalog.ValidMode(req.Mode) {
		return fmt.Errorf("unknown mode %q", req.Mode)
	}
	if !catalog.ValidDifficulty(req.Difficulty) {
		return fmt.Errorf("unknown difficulty %q", req.Difficulty)
	}
	if !catalog.ValidTopic(req.Topic) {
		return fmt.Errorf("unknown topic %q", req.Topic)
	}
	return nil
}

// Generate runs one full generation cycle. Backend failures are returned
// to the caller; parse trouble is not an error and degrades to
// placeholder records instead.
func (s *Service) Generate(ctx context.Context, req model.GenerationRequest) (*model.GenerateResponse, error) {
	batchID := uuid.NewString()
	prompt := BuildPrompt(req)

	raw, err := s.client.Complete(ctx, SystemPrompt(), prompt)
	if err != nil {
		return nil, fmt.Errorf("generation backend: %w", err)
	}

	questions := Parse(raw, req)
	s.logger.Info("generation batch parsed",
		zap.String("batch_id", batchID),
		zap.String("topic", req.Topic),
		zap.String("mode", string(req.Mode)),
		zap.Int("languages", len(req.Languages)),
		zap.Int("questions", len(questions)),
		zap.Int("raw_len", len(raw)),
	)

	return &model.GenerateResponse{
		Questions: questions,
		BatchID:   batchID,
		Count:     len(questions),
	}, nil
}
