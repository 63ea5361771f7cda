package actions

import (
	"time"

	"github.com/planwise/discovery/internal/conditions"
	"github.com/planwise/discovery/internal/focus"
)

// Urgency buckets a recommendation by when it should happen. Sort order is
// immediate < near_term < medium_term < ongoing.
type Urgency string

const (
	UrgencyImmediate  Urgency = "immediate"
	UrgencyNearTerm   Urgency = "near_term"
	UrgencyMediumTerm Urgency = "medium_term"
	UrgencyOngoing    Urgency = "ongoing"
)

// TierIndex returns the sort position of an urgency tier. Unknown values
// sort last.
func (u Urgency) TierIndex() int {
	switch u {
	case UrgencyImmediate:
		return 0
	case UrgencyNearTerm:
		return 1
	case UrgencyMediumTerm:
		return 2
	case UrgencyOngoing:
		return 3
	default:
		return 4
	}
}

// Type is the kind of work an action involves.
type Type string

const (
	TypeReview   Type = "review"
	TypeAnalysis Type = "analysis"
	TypeSetup    Type = "setup"
	TypeDecision Type = "decision"
)

// Guidance indicates who should carry the action out.
type Guidance string

const (
	GuidanceSelfService  Guidance = "self_service"
	GuidanceProfessional Guidance = "professional"
	GuidanceEither       Guidance = "either"
)

// Template is one static catalog entry. Every template declares at least one
// condition; an empty condition list means never applicable, which is the
// intended guard against templates firing for everyone.
type Template struct {
	ID             string                 `json:"id"`
	Domain         focus.Domain           `json:"domain"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Type           Type                   `json:"type"`
	Guidance       Guidance               `json:"guidance"`
	DefaultUrgency Urgency                `json:"default_urgency"`
	Conditions     []conditions.Condition `json:"conditions"`
	Outcome        string                 `json:"outcome"`
	Rationale      string                 `json:"rationale"` // may contain {value} and {goal}
	Dependencies   []string               `json:"dependencies,omitempty"`
}

// Recommendation is an instantiated template: rationale resolved, urgency
// adjusted for context, and the user's value/goal connections attached.
type Recommendation struct {
	TemplateID       string       `json:"template_id"`
	Domain           focus.Domain `json:"domain"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Type             Type         `json:"type"`
	Guidance         Guidance     `json:"guidance"`
	Urgency          Urgency      `json:"urgency"`
	Rationale        string       `json:"rationale"`
	Outcome          string       `json:"outcome"`
	ValueConnections []string     `json:"value_connections,omitempty"`
	GoalConnections  []string     `json:"goal_connections,omitempty"`
}

// Recommendations is the capped, sorted output bundle.
type Recommendations struct {
	Recommendations []Recommendation `json:"recommendations"`
	TopActions      []Recommendation `json:"top_actions"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
