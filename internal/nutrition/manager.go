package nutrition

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type ManagerParams struct {
	LocalStore     LocalPlanStore
	RemoteStore    RemotePlanStore
	MetricsManager *metrics.Manager
	// Now is time.Now when nil.
	Now func() time.Time
}

// Manager owns the current diet plan. The plan is loaded from the local store by Init
// and replaced atomically by every successful CreateAndSavePlan.
type Manager struct {
	localStore     LocalPlanStore
	remoteStore    RemotePlanStore
	metricsManager *metrics.Manager
	now            func() time.Time

	current atomic.Pointer[DietPlan]
}

func NewManager(params ManagerParams) *Manager {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		localStore:     params.LocalStore,
		remoteStore:    params.RemoteStore,
		metricsManager: params.MetricsManager,
		now:            now,
	}
}

// Init loads the last saved plan from the local store. A missing plan is not an error.
func (m *Manager) Init(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "manager.nutrition.init")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan, err := m.localStore.LoadCurrent(ctx)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			log.Debugln("no cached diet plan found")
			return nil
		}
		return fmt.Errorf("load current plan: %w", err)
	}

	m.current.Store(plan)
	log.Infof("loaded cached diet plan [%s] created at %s", plan.ID, plan.CreatedAt)
	return nil
}

// EstimateTDEE is EstimateTDEE at the manager's clock.
func (m *Manager) EstimateTDEE(profile UserProfile) float64 {
	return EstimateTDEE(profile, m.now())
}

// CreateAndSavePlan computes a plan, stores it locally and, when userID is set, remotely,
// then makes it the current plan. Remote store failures are logged and do not fail the call.
func (m *Manager) CreateAndSavePlan(
	ctx context.Context,
	profile UserProfile,
	pref DietPreference,
	userID string,
) (_ *DietPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "manager.nutrition.create-plan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	pref = pref.WithDefaults()
	if err := pref.Validate(); err != nil {
		return nil, err
	}

	begin := time.Now()
	plan := ComputeDietPlan(profile, pref, userID, m.now())
	if m.metricsManager != nil {
		m.metricsManager.HistogramEngineDuration.
			WithLabelValues("diet_plan").
			Observe(time.Since(begin).Seconds())
	}
	span.SetAttributes(
		attribute.String("plan.id", plan.ID),
		attribute.Float64("plan.tdee", plan.TDEE),
	)

	if err := m.localStore.SaveCurrent(ctx, plan); err != nil {
		return nil, fmt.Errorf("save plan locally: %w", err)
	}

	if userID != "" && m.remoteStore != nil {
		if err := m.remoteStore.Save(ctx, plan); err != nil {
			log.Errorf("save diet plan [%s] for user [%s] remotely: %s", plan.ID, userID, err)
		}
	}

	m.current.Store(plan)
	if m.metricsManager != nil {
		m.metricsManager.CounterDietPlans.Inc()
	}

	return plan, nil
}

// CurrentPlan returns the plan held by the manager, nil if none was created or loaded.
func (m *Manager) CurrentPlan() *DietPlan {
	return m.current.Load()
}

// PlanForUser returns the current plan when it belongs to userID, otherwise the
// user's plan cached locally, falling back to the latest one in the remote store.
func (m *Manager) PlanForUser(ctx context.Context, userID string) (_ *DietPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "manager.nutrition.plan-for-user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	if plan := m.CurrentPlan(); plan != nil && plan.UserID != nil && *plan.UserID == userID {
		return plan, nil
	}

	plan, err := m.localStore.LoadForUser(ctx, userID)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, ErrPlanNotFound) {
		log.Warnf("load cached plan for user %s: %s", userID, err)
	}

	if m.remoteStore == nil {
		return nil, ErrPlanNotFound
	}
	return m.remoteStore.Latest(ctx, userID)
}

// DailyTarget returns the current plan's macros for date's weekday, nil without a plan.
// The current plan serves every caller; userID does not filter it.
func (m *Manager) DailyTarget(date time.Time, _ string) *DailyMacroTarget {
	plan := m.CurrentPlan()
	if plan == nil {
		return nil
	}

	idx := WeekdayIndex(date)
	if idx < 0 || idx >= len(plan.Days) {
		return nil
	}
	target := plan.Days[idx]
	return &target
}
