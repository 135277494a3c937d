package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pillarcoach/coachengine/internal/domain"
	"github.com/pillarcoach/coachengine/internal/lexicon"
	"github.com/pillarcoach/coachengine/internal/service"
)

type ModelHandler struct {
	compiler *service.DirectiveCompiler
}

func NewModelHandler(compiler *service.DirectiveCompiler) *ModelHandler {
	return &ModelHandler{compiler: compiler}
}

type listModelsResponse struct {
	Models []domain.ModelDefinition `json:"models"`
	Count  int                      `json:"count"`
}

func (h *ModelHandler) List(w http.ResponseWriter, r *http.Request) {
	models := make([]domain.ModelDefinition, 0, domain.ModelCount)
	for _, m := range lexicon.AllModels() {
		models = append(models, lexicon.DefinitionOf(m))
	}

	writeJSON(w, http.StatusOK, listModelsResponse{Models: models, Count: len(models)})
}

func (h *ModelHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	m, err := domain.ParseCoachingModel(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lexicon.DefinitionOf(m))
}

func (h *ModelHandler) Directive(w http.ResponseWriter, r *http.Request) {
	m, err := domain.ParseCoachingModel(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.compiler.Compile(m))
}
