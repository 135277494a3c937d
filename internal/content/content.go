// Package content holds the versioned persona, style and quality text used by
// the prompt composer. The text is data, not logic: edit coach.yaml and bump
// its version without touching selection or composition code.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed coach.yaml
var embeddedPack []byte

// Pack is one version of the composer's static text.
type Pack struct {
	Version            string             `yaml:"version"`
	Persona            Persona            `yaml:"persona"`
	CommunicationStyle CommunicationStyle `yaml:"communication_style"`
	QualityStandards   []string           `yaml:"quality_standards"`
	Actionable         ActionableContent  `yaml:"actionable"`
}

type Persona struct {
	Identity       string   `yaml:"identity"`
	Tone           []string `yaml:"tone"`
	Principles     []string `yaml:"principles"`
	KnowledgeAreas []string `yaml:"knowledge_areas"`
	Memories       []string `yaml:"memories"`
}

// CommunicationStyle maps empathy and intensity keys to fixed sentences.
type CommunicationStyle struct {
	Empathy   map[string]string `yaml:"empathy"`
	Intensity map[string]string `yaml:"intensity"`
}

type ActionableContent struct {
	Framing    string   `yaml:"framing"`
	Philosophy []string `yaml:"philosophy"`
}

var defaultPack = mustParse(embeddedPack)

// Default returns the embedded content pack. The returned value is shared and
// must be treated as read-only.
func Default() *Pack {
	return defaultPack
}

// Parse decodes and validates a content pack.
func Parse(data []byte) (*Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse content pack: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func mustParse(data []byte) *Pack {
	p, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pack) validate() error {
	var errs []error
	if p.Version == "" {
		errs = append(errs, errors.New("version is required"))
	}
	if p.Persona.Identity == "" {
		errs = append(errs, errors.New("persona.identity is required"))
	}
	if len(p.Persona.Principles) == 0 {
		errs = append(errs, errors.New("persona.principles must not be empty"))
	}
	for _, k := range []string{"high", "medium", "low"} {
		if p.CommunicationStyle.Empathy[k] == "" {
			errs = append(errs, fmt.Errorf("communication_style.empathy.%s is required", k))
		}
	}
	for _, k := range []string{"gentle", "moderate", "challenging"} {
		if p.CommunicationStyle.Intensity[k] == "" {
			errs = append(errs, fmt.Errorf("communication_style.intensity.%s is required", k))
		}
	}
	if len(p.QualityStandards) == 0 {
		errs = append(errs, errors.New("quality_standards must not be empty"))
	}
	if len(p.Actionable.Philosophy) == 0 {
		errs = append(errs, errors.New("actionable.philosophy must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content pack: %w", errors.Join(errs...))
	}
	return nil
}
