package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/pillarcoach/coachengine/internal/lexicon"
	"github.com/pillarcoach/coachengine/internal/metrics"
	"go.uber.org/zap"
)

// Classification constants
const (
	SelectionThreshold   = 0.5 // Top score below this falls back to the adaptive model
	SecondaryThreshold   = 0.3 // Second-ranked score must exceed this to be reported
	FallbackConfidence   = 0.7 // Confidence reported for the adaptive fallback
	ConfidenceSaturation = 3.0 // Score at which confidence reaches 1.0
)

// ClassifierService maps free text plus optional context to a coaching model.
// It holds no mutable state and is safe for concurrent use.
type ClassifierService struct {
	metrics *metrics.Recorder
	logger  *zap.Logger
}

// NewClassifierService creates a classifier. Both arguments may be nil.
func NewClassifierService(rec *metrics.Recorder, logger *zap.Logger) *ClassifierService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassifierService{
		metrics: rec,
		logger:  logger,
	}
}

// Rank scores every model against input and returns them best first. Equal
// totals keep declaration order, so the earlier-declared model ranks higher.
func (s *ClassifierService) Rank(input string, c *domain.Context) []domain.ScoredModel {
	normalized := strings.ToLower(input)

	var bonuses [domain.ModelCount]float64
	if c != nil && c.PillarType != "" {
		if !lexicon.KnownPillar(c.PillarType) {
			s.logger.Debug("unknown pillar contributes no bonus", zap.String("pillar", c.PillarType))
		}
		bonuses = lexicon.PillarBonuses(c.PillarType)
	}

	ranked := make([]domain.ScoredModel, 0, domain.ModelCount)
	for _, m := range lexicon.AllModels() {
		sm := domain.ScoredModel{Model: m, Bonus: bonuses[m]}
		for _, trigger := range lexicon.Triggers(m) {
			if strings.Contains(normalized, trigger) {
				sm.TriggerScore++
				sm.MatchedTriggers = append(sm.MatchedTriggers, trigger)
			}
		}
		sm.Total = sm.TriggerScore + sm.Bonus
		ranked = append(ranked, sm)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	return ranked
}

// Classify selects a primary and optional secondary coaching model. It never
// fails: weak or empty input yields the adaptive fallback.
func (s *ClassifierService) Classify(input string, c *domain.Context) domain.ModelSelection {
	ranked := s.Rank(input, c)
	top := ranked[0]

	if top.Total < SelectionThreshold {
		sel := fallbackSelection()
		s.logger.Debug("no confident model match",
			zap.Float64("top_score", top.Total),
			zap.String("top_model", top.Model.String()))
		s.metrics.ObserveSelection(sel, true)
		return sel
	}

	sel := domain.ModelSelection{
		Primary:    top.Model,
		Confidence: min(top.Total/ConfidenceSaturation, 1.0),
	}

	second := ranked[1]
	if second.Total > SecondaryThreshold && second.Model != top.Model {
		secondary := second.Model
		sel.Secondary = &secondary
	}

	pillar := ""
	if c != nil && top.Bonus > 0 {
		pillar = lexicon.NormalizePillar(c.PillarType)
	}
	sel.Reasoning = buildReasoning(top, sel.Secondary, pillar)

	s.logger.Debug("classified input",
		zap.String("primary", sel.Primary.String()),
		zap.Float64("confidence", sel.Confidence),
		zap.Float64("top_score", top.Total),
		zap.Bool("has_secondary", sel.Secondary != nil),
		zap.Strings("matched_triggers", top.MatchedTriggers))
	s.metrics.ObserveSelection(sel, false)

	return sel
}

func fallbackSelection() domain.ModelSelection {
	def := lexicon.DefinitionOf(domain.ModelAdaptive)
	return domain.ModelSelection{
		Primary:    domain.ModelAdaptive,
		Confidence: FallbackConfidence,
		Reasoning: fmt.Sprintf(
			"Ingen tydlig matchning mot någon coachingmodell hittades. Använder %s: %s.",
			def.DisplayName, def.Approach),
	}
}

// buildReasoning renders the human-readable motivation. pillar is non-empty
// only when the pillar bonus contributed to the primary model's score.
func buildReasoning(top domain.ScoredModel, secondary *domain.CoachingModel, pillar string) string {
	def := lexicon.DefinitionOf(top.Model)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Valde %s med angreppssättet: %s.", def.DisplayName, def.Approach)
	if len(top.MatchedTriggers) > 0 {
		fmt.Fprintf(&sb, " Signaler i texten: %s.", strings.Join(top.MatchedTriggers, ", "))
	}
	if secondary != nil {
		fmt.Fprintf(&sb, " Kompletterande modell: %s.", lexicon.DefinitionOf(*secondary).DisplayName)
	}
	if pillar != "" {
		fmt.Fprintf(&sb, " Utvecklingspelaren %q vägde in i valet.", pillar)
	}
	return sb.String()
}
