package model

// ExportRequest carries the user-selected records back to the server for
// the spreadsheet append, together with the parameters that produced them.
type ExportRequest struct {
	Questions       []QuestionRecord  `json:"questions"`
	InputParameters GenerationRequest `json:"inputParameters"`
}

// ExportResult is the wire shape of an export call outcome.
type ExportResult struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	UpdatedRows     int      `json:"updatedRows"`
	QuestionSummary []string `json:"questionSummary"`
}
