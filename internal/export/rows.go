package export

import (
	"fmt"
	"strings"

	"github.com/rathideep22/dsa-question-generator/pkg/model"
)

// HeaderRow describes the fixed sheet columns. The schema never evolves;
// rows are only ever appended under it.
func HeaderRow() []interface{} {
	return []interface{}{"Role", "Language", "Problem", "Hint", "Mode", "Difficulty"}
}

// BuildRows produces one sheet row per selected record. The problem cell
// consolidates statement, worked example, constraints and implementation
// into a single block of text.
func BuildRows(questions []model.QuestionRecord, req model.GenerationRequest) [][]interface{} {
	rows := make([][]interface{}, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, []interface{}{
			req.Role,
			q.Language,
			consolidatedProblem(q),
			q.Hint,
			string(req.Mode),
			string(req.Difficulty),
		})
	}
	return rows
}

func consolidatedProblem(q model.QuestionRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n%s\n\n", q.Title, q.Problem)
	fmt.Fprintf(&b, "Input Format: %s\n", q.InputFormat)
	fmt.Fprintf(&b, "Output Format: %s\n", q.OutputFormat)
	fmt.Fprintf(&b, "Sample Input: %s\n", q.SampleInput)
	fmt.Fprintf(&b, "Sample Output: %s\n", q.SampleOutput)
	fmt.Fprintf(&b, "Constraints: %s\n", q.Constraints)
	if q.Implementation != "" {
		fmt.Fprintf(&b, "\nImplementation:\n%s\n", q.Implementation)
	}

	return strings.TrimSpace(b.String())
}

// Summaries returns one short line per record for the export response.
func Summaries(questions []model.QuestionRecord) []string {
	out := make([]string, 0, len(questions))
	for i, q := range questions {
		line := fmt.Sprintf("%d. %s", i+1, q.Title)
		if q.Language != "" {
			line += fmt.Sprintf(" [%s]", q.Language)
		}
		out = append(out, line)
	}
	return out
}
