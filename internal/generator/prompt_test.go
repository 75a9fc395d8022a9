package generator

import (
	"strings"
	"testing"

	"github.com/rathideep22/dsa-question-generator/internal/catalog"
	"github.com/rathideep22/dsa-question-generator/pkg/model"
)

func TestBuildPromptInterpolatesParameters(t *testing.T) {
	req := model.GenerationRequest{
		Role:       "backend developer",
		Languages:  []string{"python", "java"},
		Context:    "The team works on payment systems.",
		Hint:       "Nudge towards hash maps.",
		Mode:       model.ModeTemplate,
		Difficulty: model.DifficultyEasy,
		Topic:      "Hashing",
	}

	prompt := BuildPrompt(req)

	for _, want := range []string{
		"backend developer",
		catalog.Companies("backend developer"),
		"Topic: Hashing",
		catalog.Guidance(model.DifficultyEasy),
		"The team works on payment systems.",
		"Nudge towards hash maps.",
		"QUESTION <n>:",
		"Title:",
		"Problem Statement:",
		"Sample Output:",
		"PYTHON_TEMPLATE:",
		"JAVA_TEMPLATE:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if strings.Contains(prompt, "IMPLEMENTATION") {
		t.Error("template mode prompt asks for implementations")
	}
}

func TestBuildPromptUnknownRoleFallsBack(t *testing.T) {
	req := model.GenerationRequest{
		Role:       "quantum archaeologist",
		Languages:  []string{"python"},
		Mode:       model.ModeImplementation,
		Difficulty: model.DifficultyHard,
		Topic:      "Graphs",
	}

	prompt := BuildPrompt(req)

	if !strings.Contains(prompt, "top product-based companies") {
		t.Error("prompt missing generic company fallback for unknown role")
	}
	if !strings.Contains(prompt, "PYTHON_IMPLEMENTATION:") {
		t.Error("implementation mode prompt missing code section label")
	}
}

func TestBuildPromptProblemModeExcludesCode(t *testing.T) {
	req := model.GenerationRequest{
		Role:       "sde",
		Languages:  []string{"python"},
		Mode:       model.ModeProblem,
		Difficulty: model.DifficultyMedium,
		Topic:      "Arrays",
	}

	prompt := BuildPrompt(req)

	if strings.Contains(prompt, "_TEMPLATE:") || strings.Contains(prompt, "_IMPLEMENTATION:") {
		t.Error("problem-only prompt asks for code sections")
	}
	if !strings.Contains(prompt, "Do not include any code") {
		t.Error("problem-only prompt missing the no-code instruction")
	}
}
