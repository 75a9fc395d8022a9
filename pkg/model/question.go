package model

// Mode controls how much code the generator asks for alongside each
// problem statement.
type Mode string

const (
	// ModeImplementation requests a full working solution per language.
	ModeImplementation Mode = "implementation"
	// ModeTemplate requests a signature-only starter template per language.
	ModeTemplate Mode = "template"
	// ModeProblem requests problem statements only, no code sections.
	ModeProblem Mode = "problem"
)

// WantsCode reports whether the mode asks for per-language code sections
// in the generated reply.
func (m Mode) WantsCode() bool {
	return m == ModeImplementation || m == ModeTemplate
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// QuestionRecord is one parsed interview question. When multiple target
// languages are requested, one record exists per (base question, language)
// pair; records of the same base question share BaseID and problem content
// and differ in ID, Language and Implementation.
type QuestionRecord struct {
	ID             string `json:"id"`
	BaseID         string `json:"base_id"`
	Title          string `json:"title"`
	Problem        string `json:"problem"`
	InputFormat    string `json:"input_format"`
	OutputFormat   string `json:"output_format"`
	Constraints    string `json:"constraints"`
	SampleInput    string `json:"sample_input"`
	SampleOutput   string `json:"sample_output"`
	Implementation string `json:"implementation,omitempty"`
	Hint           string `json:"hint,omitempty"`
	Language       string `json:"language,omitempty"`
}

// GenerationRequest carries the form parameters for one generation run.
// It is consumed once by the prompt builder and discarded.
type GenerationRequest struct {
	Role       string     `json:"role"`
	Languages  []string   `json:"languages"`
	Context    string     `json:"context,omitempty"`
	Hint       string     `json:"hint,omitempty"`
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	Topic      string     `json:"topic"`
}

// GenerateResponse is the wire shape of a successful generation call.
type GenerateResponse struct {
	Questions []QuestionRecord `json:"questions"`
	BatchID   string           `json:"batch_id"`
	Count     int              `json:"count"`
}
