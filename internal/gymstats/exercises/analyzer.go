package exercises

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=exercises_test

const megabyte = 1024 * 1024

type exercisesRepo interface {
	AddSession(ctx context.Context, session WorkoutSession) error
	ListSessions(ctx context.Context, params SessionParams) ([]WorkoutSession, error)
	UpsertTemplate(ctx context.Context, template ExerciseTemplate) error
	GetTemplate(ctx context.Context, id string) (*ExerciseTemplate, error)
	MuscleMapping(ctx context.Context, templateIDs []string) (MuscleMapping, error)
}

type OneRMHistory struct {
	TemplateID string `json:"templateId"`
	// Series is ascending by day, Display has the most recent day first.
	Series  []OneRMPoint `json:"series"`
	Display []OneRMPoint `json:"display"`
}

type MuscleSetsResponse struct {
	End     time.Time             `json:"end"`
	Muscles map[Muscle]MuscleSets `json:"muscles"`
}

type AnalyzerParams struct {
	Repo           exercisesRepo
	Location       *time.Location
	CacheSizeMB    int
	CacheTTL       time.Duration
	MetricsManager *metrics.Manager
	// Now is used as the default window end, time.Now when nil.
	Now func() time.Time
}

// Analyzer fetches session snapshots and runs the 1RM and muscle volume aggregations,
// caching the results per author.
type Analyzer struct {
	repo           exercisesRepo
	loc            *time.Location
	cache          *freecache.Cache
	cacheTTL       time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewAnalyzer(params AnalyzerParams) *Analyzer {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}
	cacheSize := params.CacheSizeMB * megabyte
	if cacheSize <= 0 {
		cacheSize = 10 * megabyte
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Analyzer{
		repo:           params.Repo,
		loc:            loc,
		cache:          freecache.NewCache(cacheSize),
		cacheTTL:       params.CacheTTL,
		metricsManager: params.MetricsManager,
		now:            now,
	}
}

// Location is the calendar sessions are bucketed in.
func (a *Analyzer) Location() *time.Location {
	return a.loc
}

// AddSession stores a session and drops the cached results, since any of them may include it.
func (a *Analyzer) AddSession(ctx context.Context, session WorkoutSession) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymstats.add-session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := a.repo.AddSession(ctx, session); err != nil {
		return fmt.Errorf("add session: %w", err)
	}
	a.cache.Clear()
	return nil
}

func (a *Analyzer) UpsertTemplate(ctx context.Context, template ExerciseTemplate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymstats.upsert-template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := a.repo.UpsertTemplate(ctx, template); err != nil {
		return fmt.Errorf("upsert template: %w", err)
	}
	a.cache.Clear()
	return nil
}

func (a *Analyzer) Template(ctx context.Context, id string) (*ExerciseTemplate, error) {
	return a.repo.GetTemplate(ctx, id)
}

func (a *Analyzer) OneRMHistory(
	ctx context.Context,
	authorID, templateID string,
) (_ *OneRMHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymstats.onerm-history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("author_id", authorID),
		attribute.String("template_id", templateID),
	)

	cacheKey := fmt.Sprintf("onerm::%s::%s", authorID, templateID)
	history := &OneRMHistory{}
	if a.fromCache(cacheKey, history) {
		return history, nil
	}

	sessions, err := a.repo.ListSessions(ctx, SessionParams{AuthorID: authorID})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	begin := time.Now()
	series := DailyOneRM(sessions, templateID, a.loc)
	history = &OneRMHistory{
		TemplateID: templateID,
		Series:     series,
		Display:    OneRMDisplayList(series),
	}
	a.observe("one_rm", begin)

	a.toCache(cacheKey, history)
	return history, nil
}

// MuscleSets aggregates the author's completed sets per muscle for the 7 days ending at end
// (today when nil).
func (a *Analyzer) MuscleSets(
	ctx context.Context,
	authorID string,
	end *time.Time,
) (_ *MuscleSetsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.gymstats.muscle-sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("author_id", authorID))

	endTime := a.now()
	if end != nil {
		endTime = *end
	}
	endDay := pkg.StartOfDay(endTime, a.loc)

	cacheKey := fmt.Sprintf("muscle-sets::%s::%s", authorID, endDay.Format(time.DateOnly))
	resp := &MuscleSetsResponse{}
	if a.fromCache(cacheKey, resp) {
		return resp, nil
	}

	sessions, err := a.repo.ListSessions(ctx, SessionParams{AuthorID: authorID})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	templateIDs := templateIDsOf(sessions)
	mapping, err := a.repo.MuscleMapping(ctx, templateIDs)
	if err != nil {
		return nil, fmt.Errorf("get muscle mapping: %w", err)
	}
	span.SetAttributes(
		attribute.Int("sessions", len(sessions)),
		attribute.Int("templates", len(templateIDs)),
	)

	begin := time.Now()
	resp = &MuscleSetsResponse{
		End:     endDay,
		Muscles: AggregateMuscleSets(sessions, mapping, a.loc, endTime),
	}
	a.observe("muscle_sets", begin)

	a.toCache(cacheKey, resp)
	return resp, nil
}

func (a *Analyzer) fromCache(key string, target any) bool {
	cached, err := a.cache.Get([]byte(key))
	if err != nil {
		a.countCache("miss")
		return false
	}
	if err := json.Unmarshal(cached, target); err != nil {
		log.Errorf("failed to unmarshal cached analyzer result [%s]: %s", key, err)
		a.countCache("miss")
		return false
	}
	log.Tracef("analyzer result [%s] found in cache", key)
	a.countCache("hit")
	return true
}

func (a *Analyzer) toCache(key string, value any) {
	if a.cacheTTL <= 0 {
		return
	}
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal analyzer result [%s]: %s", key, err)
		return
	}
	if err := a.cache.Set([]byte(key), valueBytes, int(a.cacheTTL.Seconds())); err != nil {
		log.Errorf("failed to write analyzer cache [%s]: %s", key, err)
	}
}

func (a *Analyzer) countCache(result string) {
	if a.metricsManager != nil {
		a.metricsManager.CounterAnalyzerCacheHits.WithLabelValues(result).Inc()
	}
}

func (a *Analyzer) observe(operation string, begin time.Time) {
	if a.metricsManager != nil {
		a.metricsManager.HistogramEngineDuration.
			WithLabelValues(operation).
			Observe(time.Since(begin).Seconds())
	}
}

func templateIDsOf(sessions []WorkoutSession) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, session := range sessions {
		for _, occurrence := range session.Exercises {
			if seen[occurrence.TemplateID] {
				continue
			}
			seen[occurrence.TemplateID] = true
			ids = append(ids, occurrence.TemplateID)
		}
	}
	return ids
}
