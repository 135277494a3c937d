package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/pillarcoach/coachengine/internal/service"
)

// StyleDefaults fill in communication style fields a request leaves unset.
type StyleDefaults struct {
	EmpathyLevel domain.EmpathyLevel
	Intensity    domain.Intensity
}

type PromptHandler struct {
	composer *service.PromptComposer
	defaults StyleDefaults
}

func NewPromptHandler(composer *service.PromptComposer, defaults StyleDefaults) *PromptHandler {
	return &PromptHandler{composer: composer, defaults: defaults}
}

// selectionRequest mirrors domain.ModelSelection with a pointer primary so a
// missing field is distinguishable from neuroplastic, the zero model.
type selectionRequest struct {
	Primary    *domain.CoachingModel `json:"primary"`
	Secondary  *domain.CoachingModel `json:"secondary,omitempty"`
	Confidence float64               `json:"confidence"`
	Reasoning  string                `json:"reasoning"`
}

type conversationConfigRequest struct {
	Message      string              `json:"message,omitempty"`
	Selection    *selectionRequest   `json:"selection,omitempty"`
	EmpathyLevel domain.EmpathyLevel `json:"empathy_level,omitempty"`
	Intensity    domain.Intensity    `json:"intensity,omitempty"`
}

type conversationRequest struct {
	Context domain.Context            `json:"context"`
	Config  conversationConfigRequest `json:"config"`
}

type conversationResponse struct {
	Instruction string `json:"instruction"`
}

// toConfig applies style defaults and validates a caller-supplied selection.
func (req conversationConfigRequest) toConfig(defaults StyleDefaults) (domain.ConversationConfig, error) {
	cfg := domain.ConversationConfig{
		Message:      req.Message,
		EmpathyLevel: req.EmpathyLevel,
		Intensity:    req.Intensity,
	}
	if cfg.EmpathyLevel == "" {
		cfg.EmpathyLevel = defaults.EmpathyLevel
	}
	if cfg.Intensity == "" {
		cfg.Intensity = defaults.Intensity
	}

	if req.Selection == nil {
		return cfg, nil
	}
	if req.Selection.Primary == nil {
		return cfg, fmt.Errorf("%w: primary is required", domain.ErrInvalidSelection)
	}
	sel := domain.ModelSelection{
		Primary:    *req.Selection.Primary,
		Secondary:  req.Selection.Secondary,
		Confidence: req.Selection.Confidence,
		Reasoning:  req.Selection.Reasoning,
	}
	if err := sel.Validate(); err != nil {
		return cfg, err
	}
	cfg.Selection = &sel
	return cfg, nil
}

func (h *PromptHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	var req conversationRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := req.Config.toConfig(h.defaults)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	instruction := h.composer.BuildConversationalInstruction(req.Context, cfg)
	writeJSON(w, http.StatusOK, conversationResponse{Instruction: instruction})
}

type actionablesRequest struct {
	AssessmentData json.RawMessage    `json:"assessment_data,omitempty"`
	Preferences    domain.Preferences `json:"preferences"`
	Context        domain.Context     `json:"context"`
}

func (h *PromptHandler) Actionables(w http.ResponseWriter, r *http.Request) {
	var req actionablesRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var assessment any
	if len(req.AssessmentData) > 0 && string(req.AssessmentData) != "null" {
		if err := json.Unmarshal(req.AssessmentData, &assessment); err != nil {
			writeError(w, http.StatusBadRequest, "invalid assessment_data")
			return
		}
	}

	pair, err := h.composer.BuildActionableInstructionPair(assessment, req.Preferences, req.Context)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}
