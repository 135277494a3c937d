package domain

import (
	"fmt"
	"math"
)

// Context carries optional caller-assembled signals for one call.
type Context struct {
	PillarType        string         `json:"pillar_type,omitempty"`
	UserHistory       []string       `json:"user_history,omitempty"`
	AssessmentData    map[string]any `json:"assessment_data,omitempty"`
	CurrentChallenges []string       `json:"current_challenges,omitempty"`
	UserGoals         []string       `json:"user_goals,omitempty"`
}

// ModelSelection is the classifier's verdict for one input.
type ModelSelection struct {
	Primary    CoachingModel  `json:"primary"`
	Secondary  *CoachingModel `json:"secondary,omitempty"`
	Confidence float64        `json:"confidence"`
	Reasoning  string         `json:"reasoning"`
}

// HasSecondary reports whether a secondary model was selected.
func (s ModelSelection) HasSecondary() bool {
	return s.Secondary != nil
}

// Validate checks a selection supplied from outside the classifier. The
// primary must be a declared model, confidence must lie in [0,1] and a
// secondary must be a different declared model.
func (s ModelSelection) Validate() error {
	if !s.Primary.IsValid() {
		return fmt.Errorf("%w: primary %s is not a coaching model", ErrInvalidSelection, s.Primary)
	}
	if math.IsNaN(s.Confidence) || s.Confidence < 0 || s.Confidence > 1 {
		return fmt.Errorf("%w: confidence %v outside [0,1]", ErrInvalidSelection, s.Confidence)
	}
	if s.Secondary != nil {
		if !s.Secondary.IsValid() {
			return fmt.Errorf("%w: secondary %s is not a coaching model", ErrInvalidSelection, *s.Secondary)
		}
		if *s.Secondary == s.Primary {
			return fmt.Errorf("%w: secondary equals primary %s", ErrInvalidSelection, s.Primary)
		}
	}
	return nil
}

// ScoredModel is one row of a classifier ranking.
type ScoredModel struct {
	Model           CoachingModel `json:"model"`
	TriggerScore    float64       `json:"trigger_score"`
	Bonus           float64       `json:"bonus"`
	Total           float64       `json:"total"`
	MatchedTriggers []string      `json:"matched_triggers,omitempty"`
}
