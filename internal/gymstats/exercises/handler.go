package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type analyzer interface {
	AddSession(ctx context.Context, session WorkoutSession) error
	UpsertTemplate(ctx context.Context, template ExerciseTemplate) error
	Template(ctx context.Context, id string) (*ExerciseTemplate, error)
	OneRMHistory(ctx context.Context, authorID, templateID string) (*OneRMHistory, error)
	MuscleSets(ctx context.Context, authorID string, end *time.Time) (*MuscleSetsResponse, error)
	Location() *time.Location
}

type Handler struct {
	analyzer analyzer
}

func NewHandler(analyzer analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (h *Handler) HandleAddSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.sessions.add")
	defer span.End()

	var session WorkoutSession
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Errorf("add session, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if session.AuthorID == "" {
		http.Error(w, "missing author id", http.StatusBadRequest)
		return
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	span.SetAttributes(attribute.String("session.id", session.ID))

	if err := h.analyzer.AddSession(ctx, session); err != nil {
		log.Errorf("add session %s: %s", session.ID, err)
		http.Error(w, "failed to add session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleUpsertTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.templates.upsert")
	defer span.End()

	var template ExerciseTemplate
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		log.Errorf("upsert template, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if template.ID == "" || template.Name == "" {
		http.Error(w, "missing template id or name", http.StatusBadRequest)
		return
	}
	for _, target := range template.Muscles {
		if !target.Muscle.IsValid() {
			http.Error(w, fmt.Sprintf("unknown muscle: %s", target.Muscle), http.StatusBadRequest)
			return
		}
	}

	if err := h.analyzer.UpsertTemplate(ctx, template); err != nil {
		log.Errorf("upsert template %s: %s", template.ID, err)
		http.Error(w, "failed to save template", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, template)
}

func (h *Handler) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.templates.get")
	defer span.End()

	templateID := mux.Vars(r)["templateId"]
	template, err := h.analyzer.Template(ctx, templateID)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		log.Errorf("get template %s: %s", templateID, err)
		http.Error(w, "failed to get template", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, template)
}

func (h *Handler) HandleOneRM(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.exercises.onerm")
	defer span.End()

	templateID := mux.Vars(r)["templateId"]
	authorID := r.URL.Query().Get("author_id")
	if templateID == "" || authorID == "" {
		http.Error(w, "missing template id or author id", http.StatusBadRequest)
		return
	}

	history, err := h.analyzer.OneRMHistory(ctx, authorID, templateID)
	if err != nil {
		log.Errorf("get 1rm history for %s: %s", templateID, err)
		http.Error(w, "failed to get 1rm history", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, history)
}

func (h *Handler) HandleMuscleSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.muscles.sets")
	defer span.End()

	authorID := r.URL.Query().Get("author_id")
	if authorID == "" {
		http.Error(w, "missing author id", http.StatusBadRequest)
		return
	}

	var end *time.Time
	if endParam := r.URL.Query().Get("end"); endParam != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, endParam, h.analyzer.Location())
		if err != nil {
			http.Error(w, "invalid end param, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		end = &parsed
	}

	resp, err := h.analyzer.MuscleSets(ctx, authorID, end)
	if err != nil {
		log.Errorf("get muscle sets for %s: %s", authorID, err)
		http.Error(w, "failed to get muscle sets", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, resp)
}
