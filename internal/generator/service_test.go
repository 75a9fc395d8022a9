package generator

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/rathideep22/dsa-question-generator/pkg/model"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	return s.reply, s.err
}

func TestServiceGenerate(t *testing.T) {
	svc := NewService(&stubClient{reply: fiveBlocks()}, zap.NewNop())

	res, err := svc.Generate(context.Background(), baseRequest(model.ModeTemplate, "python"))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if res.Count != QuestionCount || len(res.Questions) != QuestionCount {
		t.Errorf("count = %d with %d questions, want %d", res.Count, len(res.Questions), QuestionCount)
	}
	if res.BatchID == "" {
		t.Error("batch id is empty")
	}
}

func TestServiceGenerateBackendFailure(t *testing.T) {
	backendErr := errors.New("rate limited")
	svc := NewService(&stubClient{err: backendErr}, zap.NewNop())

	_, err := svc.Generate(context.Background(), baseRequest(model.ModeProblem, "python"))
	if err == nil {
		t.Fatal("expected error from failing backend")
	}
	if !errors.Is(err, backendErr) {
		t.Errorf("error %v does not wrap the backend error", err)
	}
}

func TestValidateRequest(t *testing.T) {
	valid := baseRequest(model.ModeTemplate, "python")

	cases := []struct {
		name    string
		mutate  func(*model.GenerationRequest)
		wantErr bool
	}{
		{"valid", func(r *model.GenerationRequest) {}, false},
		{"unknown role allowed", func(r *model.GenerationRequest) { r.Role = "underwater welder" }, false},
		{"no languages", func(r *model.GenerationRequest) { r.Languages = nil }, true},
		{"blank language", func(r *model.GenerationRequest) { r.Languages = []string{" "} }, true},
		{"bad mode", func(r *model.GenerationRequest) { r.Mode = "essay" }, true},
		{"bad difficulty", func(r *model.GenerationRequest) { r.Difficulty = "impossible" }, true},
		{"bad topic", func(r *model.GenerationRequest) { r.Topic = "Astrology" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			req.Languages = append([]string(nil), valid.Languages...)
			tc.mutate(&req)
			err := ValidateRequest(req)
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
