package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rathideep22/dsa-question-generator/internal/export"
	"github.com/rathideep22/dsa-question-generator/internal/generator"
	"github.com/rathideep22/dsa-question-generator/pkg/model"
)

const wellFormedReply = `QUESTION 1:
Title: Rotate Array
Problem Statement: Rotate the array right by k steps.
Input Format: n and k, then n integers.
Output Format: The rotated array.
Constraints: 1 <= n <= 10^5
Sample Input: 5 2
1 2 3 4 5
Sample Output: 4 5 1 2 3
Hint: Reversing three slices does it in place.
PYTHON_TEMPLATE:
def rotate(nums, k):
    pass
`

type stubCompletion struct {
	reply string
	err   error
}

func (s *stubCompletion) Complete(ctx context.Context, system, prompt string) (string, error) {
	return s.reply, s.err
}

func newTestRouter(t *testing.T, client generator.CompletionClient) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	exporter, err := export.NewExporter(context.Background(), "", "", "Sheet1", log)
	if err != nil {
		t.Fatalf("NewExporter: %v", err)
	}

	h := &Handler{
		Logger:    log,
		Generator: generator.NewService(client, log),
		Exporter:  exporter,
	}

	r := gin.New()
	r.POST("/api/v1/questions/generate", h.GenerateQuestions)
	r.POST("/api/v1/questions/export", h.ExportQuestions)
	r.GET("/api/v1/meta/options", h.FormOptions)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRequest() model.GenerationRequest {
	return model.GenerationRequest{
		Role:       "sde",
		Languages:  []string{"python"},
		Mode:       model.ModeTemplate,
		Difficulty: model.DifficultyEasy,
		Topic:      "Arrays",
	}
}

func TestGenerateQuestionsEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubCompletion{reply: wellFormedReply})

	w := postJSON(r, "/api/v1/questions/generate", validRequest())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var res model.GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Count != 5 || len(res.Questions) != 5 {
		t.Errorf("count = %d with %d questions, want 5", res.Count, len(res.Questions))
	}
	if res.Questions[0].Title != "Rotate Array" {
		t.Errorf("first title = %q", res.Questions[0].Title)
	}
	if !strings.Contains(res.Questions[0].Implementation, "def rotate") {
		t.Errorf("first implementation = %q, want the captured template", res.Questions[0].Implementation)
	}
}

func TestGenerateQuestionsValidation(t *testing.T) {
	r := newTestRouter(t, &stubCompletion{reply: wellFormedReply})

	req := validRequest()
	req.Topic = "Astrology"
	w := postJSON(r, "/api/v1/questions/generate", req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] == "" {
		t.Error("error body missing the error field")
	}
}

func TestGenerateQuestionsBackendFailure(t *testing.T) {
	r := newTestRouter(t, &stubCompletion{err: errors.New("upstream down")})

	w := postJSON(r, "/api/v1/questions/generate", validRequest())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Failed to generate questions") {
		t.Errorf("body = %s, want the generic retry message", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "upstream down") {
		t.Error("upstream error detail leaked into the response body")
	}
}

func TestExportQuestionsDryRun(t *testing.T) {
	r := newTestRouter(t, &stubCompletion{reply: wellFormedReply})

	w := postJSON(r, "/api/v1/questions/export", model.ExportRequest{
		Questions: []model.QuestionRecord{
			{ID: "q1-python", BaseID: "q1", Title: "Rotate Array", Language: "python"},
			{ID: "q2-python", BaseID: "q2", Title: "Two Sum", Language: "python"},
		},
		InputParameters: validRequest(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var res model.ExportResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Success {
		t.Error("dry-run export should report success")
	}
	if !strings.Contains(res.Message, "2") {
		t.Errorf("message %q does not contain the question count", res.Message)
	}
	if len(res.QuestionSummary) != 2 {
		t.Errorf("got %d summaries, want 2", len(res.QuestionSummary))
	}
}

func TestExportQuestionsRejectsEmptySelection(t *testing.T) {
	r := newTestRouter(t, &stubCompletion{reply: wellFormedReply})

	w := postJSON(r, "/api/v1/questions/export", model.ExportRequest{InputParameters: validRequest()})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestFormOptionsEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubCompletion{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meta/options", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, key := range []string{"roles", "topics", "difficulties", "languages", "modes"} {
		if _, ok := body[key]; !ok {
			t.Errorf("options response missing %q", key)
		}
	}
}
