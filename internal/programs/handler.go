package programs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=programs_test

type templatesRepo interface {
	Upsert(ctx context.Context, template Template) error
	Get(ctx context.Context, id string) (*Template, error)
	List(ctx context.Context) ([]Template, error)
}

type Handler struct {
	repo           templatesRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo templatesRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

type RecommendResponse struct {
	Template *Template `json:"template"`
	Ranking  []Scored  `json:"ranking"`
}

func (h *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.recommend")
	defer span.End()

	var pref Preference
	if err := json.NewDecoder(r.Body).Decode(&pref); err != nil {
		log.Errorf("recommend program, unmarshal json: %s", err)
		http.Error(w, "invalid preference", http.StatusBadRequest)
		return
	}
	if pref.ExperienceLevel != "" && !pref.ExperienceLevel.IsValid() {
		http.Error(w, "invalid experience level", http.StatusBadRequest)
		return
	}
	if pref.SplitType != "" && !pref.SplitType.IsValid() {
		http.Error(w, "invalid split type", http.StatusBadRequest)
		return
	}

	templates, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("recommend program, list templates: %s", err)
		http.Error(w, "failed to get templates", http.StatusInternalServerError)
		return
	}

	begin := time.Now()
	recommended := Recommend(pref, templates)
	ranking := Rank(pref, templates)
	if h.metricsManager != nil {
		h.metricsManager.HistogramEngineDuration.
			WithLabelValues("program_recommend").
			Observe(time.Since(begin).Seconds())
	}

	if recommended == nil {
		http.Error(w, "no program templates", http.StatusNotFound)
		return
	}
	span.SetAttributes(attribute.String("template.id", recommended.ID))

	pkg.WriteJSONResponseOK(w, RecommendResponse{
		Template: recommended,
		Ranking:  ranking,
	})
}

func (h *Handler) HandleUpsertTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.upsert")
	defer span.End()

	var template Template
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Errorf("upsert program, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if template.ID == "" || template.Name == "" {
		http.Error(w, "missing id or name", http.StatusBadRequest)
		return
	}
	if !template.Difficulty.IsValid() {
		http.Error(w, "invalid difficulty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("template.id", template.ID))

	if err := h.repo.Upsert(ctx, template); err != nil {
		log.Errorf("upsert program %s: %s", template.ID, err)
		http.Error(w, "failed to save template", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, template, http.StatusCreated)
}

func (h *Handler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	template, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("get program %s: %s", id, err)
		http.Error(w, "failed to get template", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, template)
}

func (h *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.list")
	defer span.End()

	templates, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("list programs: %s", err)
		http.Error(w, "failed to get templates", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, templates)
}
