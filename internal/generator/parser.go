package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rathideep22/dsa-question-generator/internal/catalog"
	"github.com/rathideep22/dsa-question-generator/pkg/model"
)

// baseQuestion is the language-independent content of one parsed block.
type baseQuestion struct {
	Title        string
	Problem      string
	InputFormat  string
	OutputFormat string
	Constraints  string
	SampleInput  string
	SampleOutput string
	Hint         string
	block        string
}

var (
	blockDelimRe = regexp.MustCompile(`(?i)QUESTION\s*\d+\s*:`)

	// Any point where one labeled field ends and the next begins. Language
	// code sections count as boundaries too, so field capture never bleeds
	// into code.
	fieldBoundaryRe = regexp.MustCompile(`(?im)^\s*(?:Title|Problem Statement|Input Format|Output Format|Constraints|Sample Input|Sample Output|Hint)\s*:|(?i)[A-Z]+_(?:IMPLEMENTATION|TEMPLATE)\s*:`)

	langSectionRe = regexp.MustCompile(`(?i)[A-Z]+_(?:IMPLEMENTATION|TEMPLATE)\s*:`)
)

// Parse turns the raw completion text into exactly
// QuestionCount × max(1, len(req.Languages)) records. It never fails:
// unparseable content degrades to placeholder records and missing fields
// degrade to fixed fallback strings.
func Parse(raw string, req model.GenerationRequest) []model.QuestionRecord {
	blocks := splitBlocks(raw)

	bases := make([]baseQuestion, QuestionCount)
	for i := 0; i < QuestionCount; i++ {
		if i < len(blocks) {
			bases[i] = parseBase(blocks[i])
		} else {
			bases[i] = placeholderBase(i)
		}
	}

	langs := req.Languages
	if len(langs) == 0 {
		langs = []string{""}
	}

	records := make([]model.QuestionRecord, 0, QuestionCount*len(langs))
	for i, base := range bases {
		baseID := fmt.Sprintf("q%d", i+1)
		for _, lang := range langs {
			rec := model.QuestionRecord{
				ID:           baseID,
				BaseID:       baseID,
				Title:        base.Title,
				Problem:      base.Problem,
				InputFormat:  base.InputFormat,
				OutputFormat: base.OutputFormat,
				Constraints:  base.Constraints,
				SampleInput:  base.SampleInput,
				SampleOutput: base.SampleOutput,
				Hint:         base.Hint,
			}
			if lang != "" {
				rec.ID = baseID + "-" + strings.ToLower(lang)
				rec.Language = lang
			}
			if req.Mode.WantsCode() {
				rec.Implementation = extractCode(base.block, lang, req.Mode)
			}
			records = append(records, rec)
		}
	}

	// The loop above produces the exact count by construction; the cap is
	// kept as a guard against future changes to the expansion.
	want := QuestionCount * len(langs)
	if len(records) > want {
		records = records[:want]
	}
	return records
}

// splitBlocks cuts the raw text into per-question chunks on the
// "QUESTION <n>:" delimiter, discarding anything past the fifth block.
func splitBlocks(raw string) []string {
	locs := blockDelimRe.FindAllStringIndex(raw, -1)
	if len(locs) == 0 {
		return nil
	}

	var blocks []string
	for i, loc := range locs {
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, raw[loc[1]:end])
		if len(blocks) == QuestionCount {
			break
		}
	}
	return blocks
}

// parseBase extracts the labeled fields of one block, substituting the
// documented fallback for any field that is missing.
func parseBase(block string) baseQuestion {
	return baseQuestion{
		Title:        fieldValue(block, "Title", fallbackTitle),
		Problem:      fieldValue(block, "Problem Statement", fallbackProblem),
		InputFormat:  fieldValue(block, "Input Format", fallbackInputFormat),
		OutputFormat: fieldValue(block, "Output Format", fallbackOutputFormat),
		Constraints:  fieldValue(block, "Constraints", fallbackConstraints),
		SampleInput:  fieldValue(block, "Sample Input", fallbackSampleInput),
		SampleOutput: fieldValue(block, "Sample Output", fallbackSampleOutput),
		Hint:         CleanHint(fieldValue(block, "Hint", "")),
		block:        block,
	}
}

// fieldValue captures the text between a field label and the next known
// label (or end of block). A missing label or empty capture yields the
// fallback, never an empty required field.
func fieldValue(block, label, fallback string) string {
	labelRe := regexp.MustCompile(`(?im)^\s*` + regexp.QuoteMeta(label) + `\s*:`)
	loc := labelRe.FindStringIndex(block)
	if loc == nil {
		return fallback
	}

	rest := block[loc[1]:]
	end := len(rest)
	if next := fieldBoundaryRe.FindStringIndex(rest); next != nil {
		end = next[0]
	}

	val := strings.TrimSpace(rest[:end])
	if val == "" {
		return fallback
	}
	return val
}

// extractCode finds the per-language code section inside a block. It
// tries the labeled section first, then a looser language-name heuristic,
// and finally substitutes a fixed skeleton so the field is never empty.
func extractCode(block, lang string, mode model.Mode) string {
	if lang == "" {
		return ""
	}

	suffix := "IMPLEMENTATION"
	if mode == model.ModeTemplate {
		suffix = "TEMPLATE"
	}

	key := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(strings.ToUpper(lang)+"_"+suffix) + `\s*:`)
	if loc := key.FindStringIndex(block); loc != nil {
		if code := boundedCode(block[loc[1]:]); code != "" {
			return code
		}
	}

	// Looser pass: the model sometimes writes "Python:" or just the
	// language name on its own line instead of the requested keyword.
	loose := regexp.MustCompile(`(?im)^\s*` + regexp.QuoteMeta(lang) + `\s*:?\s*\n`)
	if loc := loose.FindStringIndex(block); loc != nil {
		if code := boundedCode(block[loc[1]:]); code != "" {
			return code
		}
	}

	return catalog.Skeleton(lang)
}

// boundedCode trims a captured code region at the start of any other
// language section and strips surrounding code fences.
func boundedCode(s string) string {
	end := len(s)
	if next := langSectionRe.FindStringIndex(s); next != nil {
		end = next[0]
	}
	code := strings.TrimSpace(s[:end])
	if strings.HasPrefix(code, "```") {
		code = code[3:]
		// drop a language tag left on the fence line, e.g. ```python
		if i := strings.Index(code, "\n"); i >= 0 && isLikelyFenceTag(strings.TrimSpace(code[:i])) {
			code = code[i+1:]
		}
	}
	code = strings.TrimSuffix(strings.TrimSpace(code), "```")
	return strings.TrimSpace(code)
}

func isLikelyFenceTag(s string) bool {
	switch strings.ToLower(s) {
	case "python", "java", "cpp", "c++", "javascript", "js", "go", "golang":
		return true
	}
	return false
}
