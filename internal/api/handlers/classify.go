package handlers

import (
	"net/http"
	"strconv"

	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/pillarcoach/coachengine/internal/service"
)

type ClassifyHandler struct {
	svc *service.ClassifierService
}

func NewClassifyHandler(svc *service.ClassifierService) *ClassifyHandler {
	return &ClassifyHandler{svc: svc}
}

type classifyRequest struct {
	Text    string          `json:"text"`
	Context *domain.Context `json:"context,omitempty"`
}

type classifyResponse struct {
	Selection domain.ModelSelection `json:"selection"`
	Ranking   []domain.ScoredModel  `json:"ranking,omitempty"`
}

// Classify selects a coaching model for the request text. With
// ?explain=true the full score ranking is included.
func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	explain := false
	if v := r.URL.Query().Get("explain"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid explain parameter")
			return
		}
		explain = b
	}

	resp := classifyResponse{Selection: h.svc.Classify(req.Text, req.Context)}
	if explain {
		resp.Ranking = h.svc.Rank(req.Text, req.Context)
	}

	writeJSON(w, http.StatusOK, resp)
}
