// Package lexicon holds the static coaching-model definitions and the pillar
// bonus table. Everything here is built once at package initialization and
// never written again.
package lexicon

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pillarcoach/coachengine/internal/domain"
)

var definitions = [domain.ModelCount]domain.ModelDefinition{
	domain.ModelNeuroplastic: {
		ID:          domain.ModelNeuroplastic,
		DisplayName: "Neuroplastisk vanecoachning",
		Description: "Bygger om vanor genom att arbeta med hjärnans förmåga att skapa nya kopplingar.",
		Triggers: []string{
			"vana", "vanor", "sluta", "snus", "röka", "rökning", "beroende",
			"rutin", "hjärnan", "neuroplast", "beteende",
		},
		Approach: "Neuroplastisk förändring där nya beteenden repeteras tills de blir automatiska",
		FocusAreas: []string{
			"Identifiera triggers och belöningar i befintliga vanor",
			"Ersätta gamla beteenden med nya, hållbara rutiner",
			"Små dagliga steg som bygger nya neurala banor",
		},
		Methodologies: []string{
			"Vaneloopen: signal, rutin, belöning",
			"Habit stacking",
			"Implementationsintentioner (om-så-planer)",
		},
		ExpectedOutcomes: []string{
			"Automatiserade hälsosamma vanor",
			"Minskat sug och färre återfall",
			"Ökad känsla av självkontroll",
		},
	},
	domain.ModelHolistic: {
		ID:          domain.ModelHolistic,
		DisplayName: "Holistisk livsbalans",
		Description: "Ser hela livet som ett system där varje område påverkar de andra.",
		Triggers: []string{
			"balans", "livet", "helhet", "livsområde", "harmoni", "livshjul",
			"välmående", "work-life",
		},
		Approach: "Helhetsperspektiv där arbete, relationer, hälsa och fritid vägs samman",
		FocusAreas: []string{
			"Kartlägga nuläget i livets olika områden",
			"Hitta obalanser som påverkar välmåendet",
			"Prioritera det som ger mest energi",
		},
		Methodologies: []string{
			"Livshjulet",
			"Värderingsarbete",
			"Energikartläggning",
		},
		ExpectedOutcomes: []string{
			"Tydligare prioriteringar",
			"Mer hållbar vardag",
			"Ökad livstillfredsställelse",
		},
	},
	domain.ModelCognitiveBehavioral: {
		ID:          domain.ModelCognitiveBehavioral,
		DisplayName: "Kognitiv beteendecoachning",
		Description: "Utforskar sambandet mellan tankar, känslor och beteenden.",
		Triggers: []string{
			"tankar", "tankemönster", "negativ", "känslor", "ältar", "självkritik",
			"grubbla", "kognitiv", "tolkning",
		},
		Approach: "Kognitiv omstrukturering där automatiska tankar granskas och prövas mot verkligheten",
		FocusAreas: []string{
			"Upptäcka automatiska negativa tankar",
			"Se sambandet mellan tanke, känsla och handling",
			"Pröva alternativa tolkningar",
		},
		Methodologies: []string{
			"Tankedagbok",
			"Sokratiskt ifrågasättande",
			"Beteendeexperiment",
		},
		ExpectedOutcomes: []string{
			"Mer balanserade tankemönster",
			"Minskad självkritik",
			"Större handlingsfrihet",
		},
	},
	domain.ModelSolutionFocused: {
		ID:          domain.ModelSolutionFocused,
		DisplayName: "Lösningsfokuserad coachning",
		Description: "Riktar uppmärksamheten mot det som redan fungerar och nästa konkreta steg.",
		Triggers: []string{
			"lösning", "mål", "framåt", "nästa steg", "konkret", "problem",
			"uppnå", "resultat",
		},
		Approach: "Lösningsfokus där önskad framtid och befintliga resurser styr nästa steg",
		FocusAreas: []string{
			"Beskriva den önskade framtiden",
			"Hitta undantag när problemet inte finns",
			"Definiera nästa lilla steg",
		},
		Methodologies: []string{
			"Mirakelfrågan",
			"Skalfrågor",
			"Undantagsfrågor",
		},
		ExpectedOutcomes: []string{
			"Tydliga och mätbara mål",
			"Snabb rörelse framåt",
			"Ökad tilltro till egna resurser",
		},
	},
	domain.ModelStrengthsBased: {
		ID:          domain.ModelStrengthsBased,
		DisplayName: "Styrkebaserad coachning",
		Description: "Utgår från personens talanger och styrkor istället för brister.",
		Triggers: []string{
			"styrka", "styrkor", "talang", "begåv", "passion",
			"det jag är bra på", "förmåga", "potential",
		},
		Approach: "Styrkebaserad utveckling där unika talanger förstärks och används medvetet",
		FocusAreas: []string{
			"Identifiera signaturstyrkor",
			"Använda styrkor i nya sammanhang",
			"Bygga identitet kring det som ger energi",
		},
		Methodologies: []string{
			"Styrkekartläggning",
			"Flow-analys",
			"Best Possible Self",
		},
		ExpectedOutcomes: []string{
			"Ökat självförtroende",
			"Högre engagemang",
			"Tydligare personligt varumärke",
		},
	},
	domain.ModelMindfulness: {
		ID:          domain.ModelMindfulness,
		DisplayName: "Mindfulnessbaserad coachning",
		Description: "Tränar närvaro och acceptans för att minska stress och oro.",
		Triggers: []string{
			"stress", "närvaro", "medveten", "andning", "meditation", "lugn",
			"oro", "ångest", "mindful", "sömn",
		},
		Approach: "Medveten närvaro där uppmärksamhet och acceptans tränas för att skapa inre lugn",
		FocusAreas: []string{
			"Träna uppmärksamhet på nuet",
			"Hantera stress och oro",
			"Acceptera känslor utan att döma",
		},
		Methodologies: []string{
			"Andningsankare",
			"Kroppsskanning",
			"STOP-övningen",
		},
		ExpectedOutcomes: []string{
			"Lägre upplevd stress",
			"Bättre sömn och återhämtning",
			"Ökad emotionell stabilitet",
		},
	},
	domain.ModelAdaptive: {
		ID:          domain.ModelAdaptive,
		DisplayName: "Adaptiv coachning",
		Description: "Anpassar angreppssättet efter situationen när inget enskilt perspektiv dominerar.",
		Triggers: []string{
			"vet inte", "osäker", "allmänt", "lite av allt", "annat",
		},
		Approach: "Adaptivt förhållningssätt där coachen utforskar behovet och kombinerar metoder efter situationen",
		FocusAreas: []string{
			"Utforska vad personen behöver just nu",
			"Skapa trygghet och förtroende",
			"Hitta rätt fokus tillsammans",
		},
		Methodologies: []string{
			"Öppna utforskande frågor",
			"Aktivt lyssnande",
			"Kombination av beprövade coachingmetoder",
		},
		ExpectedOutcomes: []string{
			"Tydligare bild av behovet",
			"Ett gemensamt fokus",
			"Motivation att gå vidare",
		},
	},
}

var order = func() []domain.CoachingModel {
	out := make([]domain.CoachingModel, domain.ModelCount)
	for i := range out {
		out[i] = domain.CoachingModel(i)
	}
	return out
}()

func init() {
	for i := range definitions {
		def := &definitions[i]
		if def.ID != domain.CoachingModel(i) {
			panic(fmt.Sprintf("lexicon: definition %d declares id %v", i, def.ID))
		}
		for j, t := range def.Triggers {
			def.Triggers[j] = strings.ToLower(strings.TrimSpace(t))
		}
	}
}

// DefinitionOf returns a copy of the model's definition. An undeclared model
// value is a programming defect and panics with domain.ErrUnknownModel.
func DefinitionOf(m domain.CoachingModel) domain.ModelDefinition {
	if !m.IsValid() {
		panic(fmt.Errorf("%w: %d", domain.ErrUnknownModel, int(m)))
	}
	def := definitions[m]
	def.Triggers = slices.Clone(def.Triggers)
	def.FocusAreas = slices.Clone(def.FocusAreas)
	def.Methodologies = slices.Clone(def.Methodologies)
	def.ExpectedOutcomes = slices.Clone(def.ExpectedOutcomes)
	return def
}

// AllModels returns every model in declaration (tie-break) order.
func AllModels() []domain.CoachingModel {
	return slices.Clone(order)
}

// Triggers returns m's lowercase trigger keywords without copying. The slice
// is shared and must not be modified.
func Triggers(m domain.CoachingModel) []string {
	if !m.IsValid() {
		panic(fmt.Errorf("%w: %d", domain.ErrUnknownModel, int(m)))
	}
	return definitions[m].Triggers
}
