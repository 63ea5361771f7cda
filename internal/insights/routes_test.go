package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/planwise/discovery/internal/questions"
	"github.com/planwise/discovery/internal/snapshot"
	"github.com/planwise/discovery/internal/values"
)

type fakeRecorder struct {
	records []GenerationRecord
}

func (f *fakeRecorder) Record(_ context.Context, rec GenerationRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func setupRouter(t *testing.T) (*chi.Mux, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	r := chi.NewRouter()
	RegisterRoutes(r, rec)
	return r, rec
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInsightsEndpoint(t *testing.T) {
	r, rec := setupRouter(t)

	snap := snapshot.Snapshot{
		Context: snapshot.BasicContext{Age: intp(62), TargetRetirementAge: intp(65)},
		Values: values.Discovery{
			Top5:           []string{"security-1", "security-2", "security-3", "security-4", "security-5"},
			NonNegotiables: []string{"security-1"},
		},
	}

	w := postJSON(t, r, "/api/insights", snap)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp generateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Insights == nil {
		t.Fatal("expected insights in response")
	}
	if resp.CompletionPercent < 25 {
		t.Errorf("completion = %d, want >= 25", resp.CompletionPercent)
	}

	if len(rec.records) != 1 {
		t.Fatalf("recorded %d generations, want 1", len(rec.records))
	}
	if rec.records[0].DominantCategory != "security" {
		t.Errorf("recorded dominant = %s, want security", rec.records[0].DominantCategory)
	}
	if rec.records[0].TopFocus != "retirement_income" {
		t.Errorf("recorded top focus = %s, want retirement_income", rec.records[0].TopFocus)
	}
}

func TestInsightsEndpointSparseSnapshot(t *testing.T) {
	r, rec := setupRouter(t)

	snap := snapshot.Snapshot{Context: snapshot.BasicContext{Age: intp(30)}}
	w := postJSON(t, r, "/api/insights", snap)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp generateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Insights != nil {
		t.Error("sparse snapshot should yield null insights")
	}
	if len(rec.records) != 0 {
		t.Errorf("recorded %d generations for a gated snapshot, want 0", len(rec.records))
	}
}

func TestInsightsEndpointBadBody(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/insights", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestQuestionCatalogEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got []questions.Question
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != len(questions.Catalog) {
		t.Errorf("got %d questions, want %d", len(got), len(questions.Catalog))
	}
}

func TestActiveQuestionsEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	snap := snapshot.Snapshot{
		Context: snapshot.BasicContext{
			Age:                 intp(62),
			TargetRetirementAge: intp(65),
			FederalEmployment:   &snapshot.FederalEmployment{RetirementSystem: "fers"},
		},
	}
	w := postJSON(t, r, "/api/questions", snap)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var got []questions.Question
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	ids := make(map[string]bool)
	for _, q := range got {
		ids[q.ID] = true
	}
	if !ids["retirement-lifestyle"] || !ids["federal-service-plans"] {
		t.Errorf("active questions = %v, want retirement and federal questions", got)
	}
}
