package lexicon

import (
	"strings"

	"github.com/pillarcoach/coachengine/internal/domain"
)

// Pillar keys as used by the assessment platform.
const (
	PillarSelfCare  = "self_care"
	PillarSkills    = "skills"
	PillarTalent    = "talent"
	PillarBrand     = "brand"
	PillarEconomy   = "economy"
	PillarOpenTrack = "open_track"
)

type bonus struct {
	model  domain.CoachingModel
	weight float64
}

var pillarBonuses = map[string][]bonus{
	PillarSelfCare: {
		{domain.ModelNeuroplastic, 0.5},
		{domain.ModelMindfulness, 0.5},
	},
	PillarSkills: {
		{domain.ModelSolutionFocused, 0.5},
		{domain.ModelNeuroplastic, 0.3},
	},
	PillarTalent: {
		{domain.ModelStrengthsBased, 0.8},
	},
	PillarBrand: {
		{domain.ModelStrengthsBased, 0.4},
		{domain.ModelSolutionFocused, 0.3},
	},
	PillarEconomy: {
		{domain.ModelSolutionFocused, 0.5},
		{domain.ModelCognitiveBehavioral, 0.3},
	},
	PillarOpenTrack: {
		{domain.ModelHolistic, 0.6},
	},
}

// NormalizePillar lowercases a pillar key and maps "-" and spaces to "_",
// so "Self-Care" and "self care" both resolve to self_care.
func NormalizePillar(pillar string) string {
	p := strings.ToLower(strings.TrimSpace(pillar))
	return strings.NewReplacer("-", "_", " ", "_").Replace(p)
}

// PillarBonuses returns the additive per-model bonus for a pillar, indexed by
// CoachingModel. Unknown or empty pillars yield all zeros.
func PillarBonuses(pillar string) [domain.ModelCount]float64 {
	var out [domain.ModelCount]float64
	for _, b := range pillarBonuses[NormalizePillar(pillar)] {
		out[b.model] += b.weight
	}
	return out
}

// KnownPillar reports whether the pillar has an entry in the bonus table.
func KnownPillar(pillar string) bool {
	_, ok := pillarBonuses[NormalizePillar(pillar)]
	return ok
}

// Pillars lists the pillar keys with defined bonuses, in platform order.
func Pillars() []string {
	return []string{PillarSelfCare, PillarSkills, PillarTalent, PillarBrand, PillarEconomy, PillarOpenTrack}
}
