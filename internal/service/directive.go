package service

import (
	"strings"

	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/pillarcoach/coachengine/internal/lexicon"
)

// DirectiveCompiler renders a model definition into an instruction block.
type DirectiveCompiler struct{}

func NewDirectiveCompiler() *DirectiveCompiler {
	return &DirectiveCompiler{}
}

// Compile is a pure lookup plus formatting; the same model always yields
// byte-identical text.
func (c *DirectiveCompiler) Compile(m domain.CoachingModel) domain.Directive {
	def := lexicon.DefinitionOf(m)

	var sb strings.Builder
	sb.WriteString("COACHINGMODELL: ")
	sb.WriteString(def.DisplayName)
	sb.WriteString("\n")
	sb.WriteString(def.Description)
	sb.WriteString("\n\nAngreppssätt: ")
	sb.WriteString(def.Approach)
	sb.WriteString("\n")

	writeBullets(&sb, "Fokusområden", def.FocusAreas)
	writeBullets(&sb, "Metoder", def.Methodologies)
	writeBullets(&sb, "Förväntade resultat", def.ExpectedOutcomes)

	return domain.Directive{Model: m, Text: sb.String()}
}

func writeBullets(sb *strings.Builder, label string, items []string) {
	sb.WriteString("\n")
	sb.WriteString(label)
	sb.WriteString(":\n")
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
}
