package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/trend"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type service interface {
	AddWeightReport(ctx context.Context, wr WeightReport) (int, error)
	WeightTrend(ctx context.Context, params TrendParams) (*WeightTrend, error)
	TrendOf(samples []trend.Sample, consolidate bool) *WeightTrend
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleAddWeightReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.new.weightreport")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var weightReport WeightReport
	if err := json.NewDecoder(r.Body).Decode(&weightReport); err != nil {
		log.Errorf("new weight report, unmarshal json params: %s", err)
		http.Error(w, "add weight report failed", http.StatusBadRequest)
		return
	}
	switch weightReport.Unit {
	case "", UnitKg:
	case UnitLb:
		weightReport.Weight = pkg.LbToKg(weightReport.Weight)
	default:
		http.Error(w, "unit must be kg or lb", http.StatusBadRequest)
		return
	}
	weightReport.Unit = UnitKg

	id, err := h.service.AddWeightReport(ctx, weightReport)
	if err != nil {
		if errors.Is(err, ErrInvalidWeight) {
			http.Error(w, "weight must be positive", http.StatusBadRequest)
			return
		}
		log.Errorf("new weight report: %s", err)
		http.Error(w, "add weight report failed", http.StatusInternalServerError)
		return
	}
	weightReport.ID = id

	pkg.WriteJSON(w, weightReport, http.StatusCreated)
}

// HandleGetWeightTrend returns the stored weight history (one sample per day) and its trend.
// Query params: user_id, from, to (RFC3339 or YYYY-MM-DD), unit (kg or lb), all optional.
func (h *Handler) HandleGetWeightTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.weight.trend")
	defer span.End()

	params := TrendParams{
		UserID: r.URL.Query().Get("user_id"),
	}
	var err error
	if params.From, err = parseTimeParam(r.URL.Query().Get("from")); err != nil {
		http.Error(w, "invalid from param", http.StatusBadRequest)
		return
	}
	if params.To, err = parseTimeParam(r.URL.Query().Get("to")); err != nil {
		http.Error(w, "invalid to param", http.StatusBadRequest)
		return
	}

	unit := r.URL.Query().Get("unit")
	if unit != "" && unit != UnitKg && unit != UnitLb {
		http.Error(w, "unit must be kg or lb", http.StatusBadRequest)
		return
	}

	weightTrend, err := h.service.WeightTrend(ctx, params)
	if err != nil {
		log.Errorf("get weight trend: %s", err)
		http.Error(w, "failed to get weight trend", http.StatusInternalServerError)
		return
	}
	if unit == UnitLb {
		weightTrend = inPounds(weightTrend)
	}

	pkg.WriteJSONResponseOK(w, weightTrend)
}

type trendRequest struct {
	Samples     []trend.Sample `json:"samples"`
	Consolidate bool           `json:"consolidate"`
}

func (h *Handler) HandlePostWeightTrend(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.weight.trend.calc")
	defer span.End()

	var req trendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("weight trend, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pkg.WriteJSONResponseOK(w, h.service.TrendOf(req.Samples, req.Consolidate))
}

const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// inPounds converts a kilo trend for display, rounded to 2 decimals.
func inPounds(wt *WeightTrend) *WeightTrend {
	convert := func(samples []trend.Sample) []trend.Sample {
		converted := make([]trend.Sample, len(samples))
		for i, s := range samples {
			converted[i] = trend.Sample{
				Date:  s.Date,
				Value: pkg.RoundTo(pkg.KgToLb(s.Value), 2),
			}
		}
		return converted
	}
	return &WeightTrend{
		Samples: convert(wt.Samples),
		Trend:   convert(wt.Trend),
	}
}

func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
