package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pillarcoach/coachengine/internal/content"
	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/pillarcoach/coachengine/internal/lexicon"
)

func do(t *testing.T, app *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	app := NewApp(zap.NewNop())

	rec := do(t, app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, content.Default().Version, body["content_version"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestListModels(t *testing.T) {
	app := NewApp(zap.NewNop())

	rec := do(t, app, http.MethodGet, "/v1/models", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Models []domain.ModelDefinition `json:"models"`
		Count  int                      `json:"count"`
	}](t, rec)
	assert.Equal(t, domain.ModelCount, body.Count)
	require.Len(t, body.Models, domain.ModelCount)
	assert.Equal(t, domain.ModelNeuroplastic, body.Models[0].ID)
	assert.Equal(t, domain.ModelAdaptive, body.Models[domain.ModelCount-1].ID)
}

func TestGetModel(t *testing.T) {
	app := NewApp(zap.NewNop())

	rec := do(t, app, http.MethodGet, "/v1/models/strengths-based", "")
	require.Equal(t, http.StatusOK, rec.Code)
	def := decode[domain.ModelDefinition](t, rec)
	assert.Equal(t, domain.ModelStrengthsBased, def.ID)
	assert.NotEmpty(t, def.FocusAreas)

	rec = do(t, app, http.MethodGet, "/v1/models/astrology", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "unknown coaching model")
}

func TestModelDirective(t *testing.T) {
	app := NewApp(zap.NewNop())

	rec := do(t, app, http.MethodGet, "/v1/models/cbt/directive", "")
	require.Equal(t, http.StatusOK, rec.Code)

	d := decode[domain.Directive](t, rec)
	assert.Equal(t, domain.ModelCognitiveBehavioral, d.Model)
	assert.True(t, strings.HasPrefix(d.Text, "COACHINGMODELL: "))

	rec = do(t, app, http.MethodGet, "/v1/models/nope/directive", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClassify(t *testing.T) {
	app := NewApp(zap.NewNop())

	tests := []struct {
		name    string
		path    string
		body    string
		status  int
		primary string
		ranking bool
	}{
		{"quit snus", "/v1/classify", `{"text":"jag vill sluta snusa"}`, http.StatusOK, "neuroplastic", false},
		{"pillar only", "/v1/classify", `{"text":"","context":{"pillar_type":"talent"}}`, http.StatusOK, "strengths_based", false},
		{"empty body", "/v1/classify", ``, http.StatusOK, "adaptive", false},
		{"explain", "/v1/classify?explain=true", `{"text":"stress"}`, http.StatusOK, "mindfulness", true},
		{"bad explain", "/v1/classify?explain=maybe", `{"text":"stress"}`, http.StatusBadRequest, "", false},
		{"bad json", "/v1/classify", `{"text":`, http.StatusBadRequest, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, app, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status != http.StatusOK {
				return
			}

			body := decode[map[string]json.RawMessage](t, rec)
			var sel domain.ModelSelection
			require.NoError(t, json.Unmarshal(body["selection"], &sel))
			assert.Equal(t, tt.primary, sel.Primary.String())

			_, hasRanking := body["ranking"]
			assert.Equal(t, tt.ranking, hasRanking)
		})
	}
}

func TestConversationPrompt(t *testing.T) {
	app := NewApp(zap.NewNop())
	pack := content.Default()

	rec := do(t, app, http.MethodPost, "/v1/prompts/conversation",
		`{"context":{"pillar_type":"self_care"},"config":{"message":"jag är stressad","intensity":"challenging"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	instruction := decode[map[string]string](t, rec)["instruction"]
	assert.Contains(t, instruction, "Utvecklingspelare: self_care")
	assert.Contains(t, instruction, pack.CommunicationStyle.Intensity["challenging"])
	// empathy falls back to the configured default
	assert.Contains(t, instruction, pack.CommunicationStyle.Empathy["medium"])

	rec = do(t, app, http.MethodPost, "/v1/prompts/conversation",
		`{"config":{"selection":{"primary":"astrology","confidence":1}}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversationPrompt_SelectionOverride(t *testing.T) {
	app := NewApp(zap.NewNop())
	message := `"message":"stress och oro och ångest"`

	tests := []struct {
		name      string
		selection string
		status    int
		directive domain.CoachingModel
	}{
		{"no override classifies the message", ``, http.StatusOK, domain.ModelMindfulness},
		{"valid override wins", `,"selection":{"primary":"cbt","secondary":"holistic","confidence":0.9}`, http.StatusOK, domain.ModelCognitiveBehavioral},
		{"missing primary", `,"selection":{"confidence":5}`, http.StatusBadRequest, 0},
		{"null primary", `,"selection":{"primary":null,"confidence":0.5}`, http.StatusBadRequest, 0},
		{"confidence above one", `,"selection":{"primary":"cbt","confidence":5}`, http.StatusBadRequest, 0},
		{"negative confidence", `,"selection":{"primary":"cbt","confidence":-1}`, http.StatusBadRequest, 0},
		{"secondary equals primary", `,"selection":{"primary":"cbt","secondary":"cbt","confidence":0.5}`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, app, http.MethodPost, "/v1/prompts/conversation", `{"config":{`+message+tt.selection+`}}`)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())

			if tt.status != http.StatusOK {
				assert.Contains(t, decode[map[string]string](t, rec)["error"], "invalid model selection")
				return
			}
			instruction := decode[map[string]string](t, rec)["instruction"]
			assert.Contains(t, instruction, "COACHINGMODELL: "+lexicon.DefinitionOf(tt.directive).DisplayName)
		})
	}
}

func TestActionablesPrompt(t *testing.T) {
	app := NewApp(zap.NewNop())

	rec := do(t, app, http.MethodPost, "/v1/prompts/actionables",
		`{"assessment_data":{"score":3},"preferences":{"total_tasks":20},"context":{"user_goals":["hitta balans i livet"]}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	pair := decode[domain.InstructionPair](t, rec)
	assert.Equal(t, 8, pair.TargetCount)
	assert.Contains(t, pair.UserText, "Målantal: 8")
	assert.Contains(t, pair.UserText, `"score": 3`)
	assert.Contains(t, pair.SystemText, "Holistisk livsbalans")

	rec = do(t, app, http.MethodPost, "/v1/prompts/actionables", `{"assessment_data":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	pair = decode[domain.InstructionPair](t, rec)
	assert.Equal(t, 5, pair.TargetCount)
	assert.NotContains(t, pair.UserText, "## Bedömningsdata")
}

func TestStatsAndMetrics(t *testing.T) {
	app := NewApp(zap.NewNop())

	do(t, app, http.MethodPost, "/v1/classify", `{"text":"snus"}`)
	do(t, app, http.MethodPost, "/v1/classify", ``)
	do(t, app, http.MethodGet, "/v1/models/nope", "")

	rec := do(t, app, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[struct {
		Requests struct {
			Requests     int64 `json:"requests"`
			ClientErrors int64 `json:"client_errors"`
		} `json:"requests"`
	}](t, rec)
	// the stats request counts itself before it is served
	assert.Equal(t, int64(4), stats.Requests.Requests)
	assert.Equal(t, int64(1), stats.Requests.ClientErrors)

	rec = do(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `coachengine_classifier_selections_total{model="neuroplastic"} 1`)
	assert.Contains(t, rec.Body.String(), `coachengine_classifier_fallbacks_total 1`)
}
