package domain

import (
	"fmt"
	"strings"
)

// CoachingModel identifies a coaching methodology. The declaration order
// below is the tie-break priority used when two models score equally:
// the earlier-declared model wins.
type CoachingModel int

const (
	ModelNeuroplastic CoachingModel = iota
	ModelHolistic
	ModelCognitiveBehavioral
	ModelSolutionFocused
	ModelStrengthsBased
	ModelMindfulness
	ModelAdaptive

	modelCount
)

var modelKeys = [modelCount]string{
	ModelNeuroplastic:        "neuroplastic",
	ModelHolistic:            "holistic",
	ModelCognitiveBehavioral: "cbt",
	ModelSolutionFocused:     "solution_focused",
	ModelStrengthsBased:      "strengths_based",
	ModelMindfulness:         "mindfulness",
	ModelAdaptive:            "adaptive",
}

// ModelCount is the number of declared coaching models.
const ModelCount = int(modelCount)

// IsValid checks if the model is one of the declared variants.
func (m CoachingModel) IsValid() bool {
	return m >= 0 && m < modelCount
}

func (m CoachingModel) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("CoachingModel(%d)", int(m))
	}
	return modelKeys[m]
}

// ParseCoachingModel resolves a model key such as "cbt" or "strengths_based".
// Hyphens and surrounding whitespace are tolerated.
func ParseCoachingModel(s string) (CoachingModel, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, k := range modelKeys {
		if k == key {
			return CoachingModel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

func (m CoachingModel) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, int(m))
	}
	return []byte(modelKeys[m]), nil
}

func (m *CoachingModel) UnmarshalText(b []byte) error {
	parsed, err := ParseCoachingModel(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ModelDefinition describes one coaching methodology. Definitions are static
// and shared read-only; see the lexicon package.
type ModelDefinition struct {
	ID               CoachingModel `json:"id"`
	DisplayName      string        `json:"display_name"`
	Description      string        `json:"description"`
	Triggers         []string      `json:"triggers"`
	Approach         string        `json:"approach"`
	FocusAreas       []string      `json:"focus_areas"`
	Methodologies    []string      `json:"methodologies"`
	ExpectedOutcomes []string      `json:"expected_outcomes"`
}

// Directive is the instruction block compiled from a model definition.
type Directive struct {
	Model CoachingModel `json:"model"`
	Text  string        `json:"text"`
}
