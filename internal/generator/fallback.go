package generator

import "fmt"

// Fallback strings substituted for labeled fields the completion text
// never produced. Required fields are never left empty.
const (
	fallbackTitle        = "Title not found"
	fallbackProblem      = "Problem statement not found"
	fallbackInputFormat  = "Input format not found"
	fallbackOutputFormat = "Output format not found"
	fallbackConstraints  = "Constraints not found"
	fallbackSampleInput  = "Sample input not found"
	fallbackSampleOutput = "Sample output not found"

	placeholderProblem = "Question generation incomplete. Please try again with the same parameters."
)

// placeholderBase synthesizes the base question used to pad the batch
// when the completion contained fewer than QuestionCount blocks. idx is
// zero-based.
func placeholderBase(idx int) baseQuestion {
	return baseQuestion{
		Title:        fmt.Sprintf("Question %d", idx+1),
		Problem:      placeholderProblem,
		InputFormat:  fallbackInputFormat,
		OutputFormat: fallbackOutputFormat,
		Constraints:  fallbackConstraints,
		SampleInput:  fallbackSampleInput,
		SampleOutput: fallbackSampleOutput,
	}
}
