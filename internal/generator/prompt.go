package generator

import (
	"fmt"
	"strings"

	"github.com/rathideep22/dsa-question-generator/internal/catalog"
	"github.com/rathideep22/dsa-question-generator/pkg/model"
)

// QuestionCount is the fixed number of base questions requested from and
// guaranteed by every generation run.
const QuestionCount = 5

const systemPrompt = `You are an experienced technical interviewer who writes original data-structures-and-algorithms questions for coding interviews.

Rules:
- Follow the requested output format EXACTLY. Do not add markdown, numbering styles, or commentary outside the labeled sections.
- Every question must be self-contained and solvable from its statement alone.
- Sample Output must be consistent with Sample Input.
- The Hint must be a single plain-English sentence. Never put code, function signatures, or comment syntax in the Hint.`

// BuildPrompt assembles the user instruction string for one generation
// run. Pure string construction, no error paths.
func BuildPrompt(req model.GenerationRequest) string {
	var b strings.Builder

	companies := catalog.Companies(req.Role)
	fmt.Fprintf(&b, "Generate exactly %d original coding interview questions for a %s candidate, in the style asked at companies like %s.\n\n", QuestionCount, req.Role, companies)
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Difficulty: %s. %s\n", req.Difficulty, catalog.Guidance(req.Difficulty))

	if ctx := strings.TrimSpace(req.Context); ctx != "" {
		fmt.Fprintf(&b, "Additional context from the interviewer: %s\n", ctx)
	}
	if hint := strings.TrimSpace(req.Hint); hint != "" {
		fmt.Fprintf(&b, "When writing hints, take this direction into account: %s\n", hint)
	}

	b.WriteString("\nFormat each question exactly as follows:\n\n")
	b.WriteString("QUESTION <n>:\n")
	b.WriteString("Title: <short title>\n")
	b.WriteString("Problem Statement: <full statement>\n")
	b.WriteString("Input Format: <description of the input>\n")
	b.WriteString("Output Format: <description of the output>\n")
	b.WriteString("Constraints: <numeric constraints>\n")
	b.WriteString("Sample Input: <one worked sample input>\n")
	b.WriteString("Sample Output: <the matching output>\n")
	b.WriteString("Hint: <one plain-English sentence, no code>\n")

	if req.Mode.WantsCode() {
		label := "IMPLEMENTATION"
		instruction := "a complete, working solution"
		if req.Mode == model.ModeTemplate {
			label = "TEMPLATE"
			instruction = "a starter template with the function signature and input parsing only, no solution logic"
		}
		b.WriteString("\nAfter the Hint of each question, add one code section per requested language, in this order: ")
		b.WriteString(strings.Join(req.Languages, ", "))
		b.WriteString(".\n")
		for _, lang := range req.Languages {
			fmt.Fprintf(&b, "%s_%s:\n<%s code>\n", strings.ToUpper(lang), label, lang)
		}
		fmt.Fprintf(&b, "Each section must contain %s in that language and nothing else.\n", instruction)
	} else {
		b.WriteString("\nDo not include any code or code sections.\n")
	}

	fmt.Fprintf(&b, "\nOutput all %d questions back to back with no text before QUESTION 1 or after the last section.\n", QuestionCount)

	return b.String()
}

// SystemPrompt returns the fixed system message sent with every
// generation request.
func SystemPrompt() string {
	return systemPrompt
}
