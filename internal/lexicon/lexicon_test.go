package lexicon

import (
	"errors"
	"strings"
	"testing"

	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllModels_DeclarationOrder(t *testing.T) {
	models := AllModels()
	require.Len(t, models, domain.ModelCount)
	assert.Equal(t, domain.ModelNeuroplastic, models[0])
	assert.Equal(t, domain.ModelAdaptive, models[len(models)-1])
	for i, m := range models {
		assert.Equal(t, domain.CoachingModel(i), m)
	}
}

func TestAllModels_ReturnsCopy(t *testing.T) {
	models := AllModels()
	models[0] = domain.ModelAdaptive
	assert.Equal(t, domain.ModelNeuroplastic, AllModels()[0])
}

func TestDefinitionOf_Complete(t *testing.T) {
	for _, m := range AllModels() {
		t.Run(m.String(), func(t *testing.T) {
			def := DefinitionOf(m)
			assert.Equal(t, m, def.ID)
			assert.NotEmpty(t, def.DisplayName)
			assert.NotEmpty(t, def.Description)
			assert.NotEmpty(t, def.Approach)
			assert.NotEmpty(t, def.Triggers)
			assert.NotEmpty(t, def.FocusAreas)
			assert.NotEmpty(t, def.Methodologies)
			assert.NotEmpty(t, def.ExpectedOutcomes)

			for _, trig := range def.Triggers {
				assert.Equal(t, strings.ToLower(trig), trig, "trigger must be lowercase")
				assert.NotEmpty(t, trig)
			}
		})
	}
}

func TestDefinitionOf_CallerCannotMutateTable(t *testing.T) {
	def := DefinitionOf(domain.ModelMindfulness)
	def.FocusAreas[0] = "changed"
	def.Triggers[0] = "changed"

	fresh := DefinitionOf(domain.ModelMindfulness)
	assert.NotEqual(t, "changed", fresh.FocusAreas[0])
	assert.NotEqual(t, "changed", fresh.Triggers[0])
}

func TestDefinitionOf_UnknownModelPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, domain.ErrUnknownModel))
	}()
	DefinitionOf(domain.CoachingModel(99))
}

func TestTriggers_MatchesDefinition(t *testing.T) {
	for _, m := range AllModels() {
		assert.Equal(t, DefinitionOf(m).Triggers, Triggers(m))
	}
}

func TestPillarBonuses(t *testing.T) {
	tests := []struct {
		pillar string
		model  domain.CoachingModel
		want   float64
	}{
		{"talent", domain.ModelStrengthsBased, 0.8},
		{"self_care", domain.ModelNeuroplastic, 0.5},
		{"self_care", domain.ModelMindfulness, 0.5},
		{"Self-Care", domain.ModelMindfulness, 0.5},
		{"skills", domain.ModelSolutionFocused, 0.5},
		{"skills", domain.ModelNeuroplastic, 0.3},
		{"brand", domain.ModelStrengthsBased, 0.4},
		{"economy", domain.ModelCognitiveBehavioral, 0.3},
		{"open track", domain.ModelHolistic, 0.6},
		{"talent", domain.ModelMindfulness, 0},
		{"unknown", domain.ModelStrengthsBased, 0},
		{"", domain.ModelAdaptive, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pillar+"/"+tt.model.String(), func(t *testing.T) {
			got := PillarBonuses(tt.pillar)
			assert.InDelta(t, tt.want, got[tt.model], 1e-9)
		})
	}
}

func TestKnownPillar(t *testing.T) {
	for _, p := range Pillars() {
		assert.True(t, KnownPillar(p), p)
	}
	assert.False(t, KnownPillar("astrology"))
	assert.Equal(t, "open_track", NormalizePillar(" Open-Track "))
}
