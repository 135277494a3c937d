package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pillarcoach/coachengine/internal/content"
	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/pillarcoach/coachengine/internal/lexicon"
	"github.com/pillarcoach/coachengine/internal/metrics"
	"go.uber.org/zap"
)

// Actionable count bounds
const (
	DefaultTaskCount = 5
	MinTaskCount     = 3
	MaxTaskCount     = 8

	maxHistoryItems = 5
)

// PromptComposer assembles instruction text for the external generation step.
// It performs no I/O; every method is a pure function of its arguments.
type PromptComposer struct {
	classifier *ClassifierService
	compiler   *DirectiveCompiler
	pack       *content.Pack
	metrics    *metrics.Recorder
	logger     *zap.Logger
}

// NewPromptComposer creates a composer. A nil pack selects the embedded
// content; rec and logger may be nil.
func NewPromptComposer(
	classifier *ClassifierService,
	compiler *DirectiveCompiler,
	pack *content.Pack,
	rec *metrics.Recorder,
	logger *zap.Logger,
) *PromptComposer {
	if pack == nil {
		pack = content.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PromptComposer{
		classifier: classifier,
		compiler:   compiler,
		pack:       pack,
		metrics:    rec,
		logger:     logger,
	}
}

// TargetTaskCount is TotalTasks (default 5) clamped to [3, 8].
func TargetTaskCount(prefs domain.Preferences) int {
	n := DefaultTaskCount
	if prefs.TotalTasks != nil {
		n = *prefs.TotalTasks
	}
	return max(MinTaskCount, min(n, MaxTaskCount))
}

// BuildConversationalInstruction composes the system instruction for a
// coaching conversation. cfg.Selection wins over classifying cfg.Message.
func (p *PromptComposer) BuildConversationalInstruction(c domain.Context, cfg domain.ConversationConfig) string {
	sel := p.selectionFor(cfg.Selection, cfg.Message, c)

	sections := []string{
		p.personaBlock(),
		p.modelBlock(sel),
	}
	if block := contextBlock(c); block != "" {
		sections = append(sections, block)
	}
	sections = append(sections,
		p.styleBlock(cfg.EmpathyLevel, cfg.Intensity),
		p.qualityBlock(),
	)

	p.logger.Debug("composed conversational instruction",
		zap.String("model", sel.Primary.String()),
		zap.String("content_version", p.pack.Version))
	p.metrics.ObserveComposition(metrics.KindConversation)

	return strings.Join(sections, "\n\n")
}

// BuildActionableInstructionPair composes the system/user texts for
// generating a bounded list of actionables. Data that cannot be serialized
// returns a *domain.SerializationError.
func (p *PromptComposer) BuildActionableInstructionPair(
	assessmentData any,
	prefs domain.Preferences,
	c domain.Context,
) (domain.InstructionPair, error) {
	ctxJSON, err := marshalField("context", c)
	if err != nil {
		p.metrics.ObserveSerializationError()
		return domain.InstructionPair{}, err
	}
	// A typed nil (nil map, nil pointer) encodes as null and counts as absent.
	var assessmentJSON string
	if assessmentData != nil {
		assessmentJSON, err = marshalField("assessment_data", assessmentData)
		if err != nil {
			p.metrics.ObserveSerializationError()
			return domain.InstructionPair{}, err
		}
		if assessmentJSON == "null" {
			assessmentJSON = ""
		}
	}
	prefsJSON, err := marshalField("preferences", prefs)
	if err != nil {
		p.metrics.ObserveSerializationError()
		return domain.InstructionPair{}, err
	}

	sel := p.selectionFor(nil, classificationText(c), c)
	count := TargetTaskCount(prefs)

	system := strings.Join([]string{
		p.personaBlock(),
		"# Uppdrag\n" + p.pack.Actionable.Framing,
		p.modelBlock(sel),
		bulletSection("# Handlingsfilosofi", p.pack.Actionable.Philosophy),
		p.qualityBlock(),
	}, "\n\n")

	user := userText(ctxJSON, assessmentJSON, prefsJSON, prefs, c, count)

	p.logger.Debug("composed actionable instruction pair",
		zap.String("model", sel.Primary.String()),
		zap.Int("target_count", count),
		zap.String("content_version", p.pack.Version))
	p.metrics.ObserveComposition(metrics.KindActionables)

	return domain.InstructionPair{
		SystemText:  system,
		UserText:    user,
		TargetCount: count,
	}, nil
}

func (p *PromptComposer) selectionFor(override *domain.ModelSelection, text string, c domain.Context) domain.ModelSelection {
	if override != nil {
		return *override
	}
	return p.classifier.Classify(text, &c)
}

// classificationText is the free text the actionable path classifies: the
// caller's stated challenges and goals.
func classificationText(c domain.Context) string {
	parts := make([]string, 0, len(c.CurrentChallenges)+len(c.UserGoals))
	parts = append(parts, c.CurrentChallenges...)
	parts = append(parts, c.UserGoals...)
	return strings.Join(parts, ". ")
}

func (p *PromptComposer) personaBlock() string {
	persona := p.pack.Persona

	var sb strings.Builder
	sb.WriteString("# Identitet\n")
	sb.WriteString(persona.Identity)
	if len(persona.Tone) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bulletSection("## Ton", persona.Tone))
	}
	if len(persona.Principles) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bulletSection("## Principer", persona.Principles))
	}
	if len(persona.KnowledgeAreas) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bulletSection("## Kunskapsområden", persona.KnowledgeAreas))
	}
	if len(persona.Memories) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bulletSection("## Erfarenheter från tidigare coachning", persona.Memories))
	}
	return sb.String()
}

func (p *PromptComposer) modelBlock(sel domain.ModelSelection) string {
	directive := p.compiler.Compile(sel.Primary)

	var sb strings.Builder
	sb.WriteString("# Vald coachingmodell\n")
	sb.WriteString(directive.Text)
	if sel.Secondary != nil {
		def := lexicon.DefinitionOf(*sel.Secondary)
		fmt.Fprintf(&sb, "\nKomplettera vid behov med %s: %s.\n", def.DisplayName, def.Approach)
	}
	if sel.Reasoning != "" {
		sb.WriteString("\nMotivering: ")
		sb.WriteString(sel.Reasoning)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// contextBlock lists only the context fields that are present; it returns ""
// when there is nothing to say.
func contextBlock(c domain.Context) string {
	var lines []string
	if c.PillarType != "" {
		lines = append(lines, "Utvecklingspelare: "+c.PillarType)
	}
	if len(c.CurrentChallenges) > 0 {
		lines = append(lines, "Aktuella utmaningar: "+strings.Join(c.CurrentChallenges, "; "))
	}
	if len(c.UserGoals) > 0 {
		lines = append(lines, "Mål: "+strings.Join(c.UserGoals, "; "))
	}
	if len(c.UserHistory) > 0 {
		history := c.UserHistory
		if len(history) > maxHistoryItems {
			history = history[len(history)-maxHistoryItems:]
		}
		lines = append(lines, "Tidigare samtal: "+strings.Join(history, "; "))
	}
	if len(lines) == 0 {
		return ""
	}
	return bulletSection("# Kontextmedvetenhet", lines)
}

func (p *PromptComposer) styleBlock(empathy domain.EmpathyLevel, intensity domain.Intensity) string {
	if !empathy.IsValid() {
		empathy = domain.EmpathyMedium
	}
	if !intensity.IsValid() {
		intensity = domain.IntensityModerate
	}
	style := p.pack.CommunicationStyle
	return "# Kommunikationsstil\n" +
		style.Empathy[string(empathy)] + "\n" +
		style.Intensity[string(intensity)]
}

func (p *PromptComposer) qualityBlock() string {
	return bulletSection("# Kvalitetskrav", p.pack.QualityStandards)
}

func userText(ctxJSON, assessmentJSON, prefsJSON string, prefs domain.Preferences, c domain.Context, count int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Skapa exakt %d handlingar (actionables) för personen nedan.\n", count)

	sb.WriteString("\n## Kontext\n")
	writeJSONBlock(&sb, ctxJSON)
	if assessmentJSON != "" {
		sb.WriteString("\n## Bedömningsdata\n")
		writeJSONBlock(&sb, assessmentJSON)
	}
	sb.WriteString("\n## Preferenser\n")
	writeJSONBlock(&sb, prefsJSON)

	sb.WriteString("\n## Antal\n")
	fmt.Fprintf(&sb, "Målantal: %d handlingar (minst %d, högst %d).\n", count, MinTaskCount, MaxTaskCount)

	if prefs.StartDate != "" {
		sb.WriteString("\n## Schemaläggning\n")
		fmt.Fprintf(&sb, "Sätt eventDate från och med %s", prefs.StartDate)
		if prefs.TimeframeDays > 0 {
			fmt.Fprintf(&sb, " och sprid handlingarna över %d dagar", prefs.TimeframeDays)
		}
		sb.WriteString(".\n")
	}

	sb.WriteString("\n## Utdataformat\n")
	sb.WriteString("Svara ENDAST med en JSON-array utan markdown. Varje objekt ska ha exakt dessa fält:\n")
	for _, f := range domain.ActionableContract {
		fmt.Fprintf(&sb, "- %s (%s): %s\n", f.Name, f.Type, f.Description)
	}
	if c.PillarType != "" {
		fmt.Fprintf(&sb, "\nAnvänd pillar %q om inget annat framgår av underlaget.\n", c.PillarType)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func marshalField(field string, v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", &domain.SerializationError{Field: field, Err: err}
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func writeJSONBlock(sb *strings.Builder, body string) {
	sb.WriteString("```json\n")
	sb.WriteString(body)
	sb.WriteString("\n```\n")
}

func bulletSection(heading string, items []string) string {
	var sb strings.Builder
	sb.WriteString(heading)
	for _, item := range items {
		sb.WriteString("\n- ")
		sb.WriteString(item)
	}
	return sb.String()
}
