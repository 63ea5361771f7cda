package insights

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/planwise/discovery/internal/questions"
	"github.com/planwise/discovery/internal/snapshot"
	"github.com/planwise/discovery/internal/values"
)

// GenerationRecord is the summary line handed to the history store after a
// successful generation.
type GenerationRecord struct {
	CompletionPercent int
	DominantCategory  string
	TopFocus          string
	ActionCount       int
	GeneratedAt       time.Time
}

// Recorder receives one record per generated insight bundle. A nil Recorder
// disables history.
type Recorder interface {
	Record(ctx context.Context, rec GenerationRecord) error
}

// RegisterRoutes mounts the insights and questions endpoints.
func RegisterRoutes(r chi.Router, recorder Recorder) {
	r.Post("/api/insights", handleGenerate(recorder))
	r.Route("/api/questions", func(r chi.Router) {
		r.Get("/", handleQuestionCatalog)
		r.Post("/", handleActiveQuestions)
	})
}

type generateResponse struct {
	Insights          *DiscoveryInsights `json:"insights"`
	CompletionPercent int                `json:"completion_percent"`
}

func handleGenerate(recorder Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snap snapshot.Snapshot
		if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
			http.Error(w, "invalid snapshot: "+err.Error(), http.StatusBadRequest)
			return
		}

		result := Generate(snap, time.Now().UTC())
		resp := generateResponse{Insights: result, CompletionPercent: CompletionPercent(snap)}

		if result != nil && recorder != nil {
			rec := GenerationRecord{
				CompletionPercent: result.InputSummary.CompletionPercent,
				ActionCount:       len(result.Actions.Recommendations),
				GeneratedAt:       result.GeneratedAt,
			}
			if len(result.FocusAreas.Areas) > 0 {
				rec.TopFocus = string(result.FocusAreas.Areas[0].Domain)
			}
			rec.DominantCategory = string(values.Derive(snap.Values).Dominant)
			if err := recorder.Record(r.Context(), rec); err != nil {
				// History is advisory; the generation itself succeeded.
				log.Printf("recording generation: %v", err)
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleQuestionCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, questions.Catalog)
}

func handleActiveQuestions(w http.ResponseWriter, r *http.Request) {
	var snap snapshot.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		http.Error(w, "invalid snapshot: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, questions.Active(QuestionFacts(snap)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
