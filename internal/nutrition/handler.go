package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type planManager interface {
	EstimateTDEE(profile UserProfile) float64
	CreateAndSavePlan(ctx context.Context, profile UserProfile, pref DietPreference, userID string) (*DietPlan, error)
	CurrentPlan() *DietPlan
	PlanForUser(ctx context.Context, userID string) (*DietPlan, error)
	DailyTarget(date time.Time, userID string) *DailyMacroTarget
}

type profileProvider interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
	Upsert(ctx context.Context, userID string, profile UserProfile) error
}

type Handler struct {
	manager  planManager
	profiles profileProvider
}

func NewHandler(manager planManager, profiles profileProvider) *Handler {
	return &Handler{
		manager:  manager,
		profiles: profiles,
	}
}

type TDEEResponse struct {
	TDEE float64 `json:"tdee"`
}

func (h *Handler) HandleEstimateTDEE(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.tdee")
	defer span.End()

	var profile UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Errorf("estimate tdee, unmarshal json: %s", err)
		http.Error(w, "invalid profile", http.StatusBadRequest)
		return
	}
	if imperialUnits(r) {
		profile = profile.FromImperial()
	}

	pkg.WriteJSONResponseOK(w, TDEEResponse{
		TDEE: h.manager.EstimateTDEE(profile),
	})
}

type PlanRequest struct {
	UserID string `json:"userId"`
	// Profile is loaded from the profile store by UserID when not provided.
	Profile    *UserProfile   `json:"profile"`
	Preference DietPreference `json:"preference"`
}

func (h *Handler) HandleCreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.plan.create")
	defer span.End()

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("create plan, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("user_id", req.UserID))

	profile := req.Profile
	if profile != nil && imperialUnits(r) {
		converted := profile.FromImperial()
		profile = &converted
	}
	if profile == nil {
		if req.UserID == "" {
			http.Error(w, "profile or user id required", http.StatusBadRequest)
			return
		}
		stored, err := h.profiles.Get(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, ErrProfileNotFound) {
				http.Error(w, "profile not found", http.StatusNotFound)
				return
			}
			log.Errorf("create plan, get profile %s: %s", req.UserID, err)
			http.Error(w, "failed to get profile", http.StatusInternalServerError)
			return
		}
		profile = stored
	}

	plan, err := h.manager.CreateAndSavePlan(ctx, *profile, req.Preference, req.UserID)
	if err != nil {
		if errors.Is(err, ErrInvalidPreference) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("create plan: %s", err)
		http.Error(w, "failed to create plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusCreated)
}

// HandleGetPlan returns the current plan, or the user's latest plan when user_id is given.
func (h *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.plan.get")
	defer span.End()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		plan := h.manager.CurrentPlan()
		if plan == nil {
			http.Error(w, "no current plan", http.StatusNotFound)
			return
		}
		pkg.WriteJSONResponseOK(w, plan)
		return
	}

	plan, err := h.manager.PlanForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("get plan for user %s: %s", userID, err)
		http.Error(w, "failed to get plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, plan)
}

type DailyTargetResponse struct {
	Date   string            `json:"date"`
	Target *DailyMacroTarget `json:"target"`
}

// HandleDailyTarget serves ?date=YYYY-MM-DD (today when missing) and optional user_id.
func (h *Handler) HandleDailyTarget(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.target")
	defer span.End()

	date := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse(time.DateOnly, dateParam)
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	target := h.manager.DailyTarget(date, r.URL.Query().Get("user_id"))
	if target == nil {
		http.Error(w, "no daily target", http.StatusNotFound)
		return
	}

	pkg.WriteJSONResponseOK(w, DailyTargetResponse{
		Date:   date.Format(time.DateOnly),
		Target: target,
	})
}

type ProfileRequest struct {
	UserID  string      `json:"userId"`
	Profile UserProfile `json:"profile"`
}

func (h *Handler) HandleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.profile.upsert")
	defer span.End()

	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("upsert profile, unmarshal json: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}
	if req.Profile.WeightKg < 0 || req.Profile.HeightCm < 0 {
		http.Error(w, "weight and height must not be negative", http.StatusBadRequest)
		return
	}

	if imperialUnits(r) {
		req.Profile = req.Profile.FromImperial()
	}

	if err := h.profiles.Upsert(ctx, req.UserID, req.Profile); err != nil {
		log.Errorf("upsert profile %s: %s", req.UserID, err)
		http.Error(w, "failed to save profile", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, req)
}

// imperialUnits reports whether the request body uses pounds and inches (?units=imperial).
func imperialUnits(r *http.Request) bool {
	return r.URL.Query().Get("units") == "imperial"
}
