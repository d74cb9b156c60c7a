package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/events"
	"github.com/2beens/gymcoach/internal/gymstats/exercises"
	"github.com/2beens/gymcoach/internal/nutrition"
	"github.com/2beens/gymcoach/internal/programs"
)

var ErrNoProgramTemplates = errors.New("no program templates")

type weightTrendProvider interface {
	WeightTrend(ctx context.Context, params events.TrendParams) (*events.WeightTrend, error)
}

type trainingAnalyzer interface {
	OneRMHistory(ctx context.Context, authorID, templateID string) (*exercises.OneRMHistory, error)
	MuscleSets(ctx context.Context, authorID string, end *time.Time) (*exercises.MuscleSetsResponse, error)
	Location() *time.Location
}

type dailyTargetProvider interface {
	DailyTarget(date time.Time, userID string) *nutrition.DailyMacroTarget
}

type programTemplates interface {
	List(ctx context.Context) ([]programs.Template, error)
}

// contextService is what the tool handlers need, one method per tool.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	WeightTrend(ctx context.Context, params events.TrendParams) (*events.WeightTrend, error)
	MuscleSets(ctx context.Context, authorID string, end *time.Time) (*exercises.MuscleSetsResponse, error)
	OneRMHistory(ctx context.Context, authorID, templateID string) (*exercises.OneRMHistory, error)
	DailyTarget(date time.Time, userID string) *nutrition.DailyMacroTarget
	RecommendProgram(ctx context.Context, pref programs.Preference) (*programs.RecommendResponse, error)
	Location() *time.Location
}

type ContextServiceParams struct {
	Schema      SchemaRepo
	Weight      weightTrendProvider
	Analyzer    trainingAnalyzer
	Nutrition   dailyTargetProvider
	ProgramRepo programTemplates
}

type ContextService struct {
	schema      SchemaRepo
	weight      weightTrendProvider
	analyzer    trainingAnalyzer
	nutrition   dailyTargetProvider
	programRepo programTemplates
}

func NewContextService(params ContextServiceParams) *ContextService {
	return &ContextService{
		schema:      params.Schema,
		weight:      params.Weight,
		analyzer:    params.Analyzer,
		nutrition:   params.Nutrition,
		programRepo: params.ProgramRepo,
	}
}

// GetSchema returns the gymcoach tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymcoach DB Schema\n\nNo gymcoach tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gymcoach DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(tableOrder, ", "))
	b.WriteString(" (schema: public).\n")

	for _, tableName := range tableOrder {
		b.WriteString("\n## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
	}

	return b.String()
}

func (s *ContextService) WeightTrend(ctx context.Context, params events.TrendParams) (*events.WeightTrend, error) {
	return s.weight.WeightTrend(ctx, params)
}

func (s *ContextService) MuscleSets(ctx context.Context, authorID string, end *time.Time) (*exercises.MuscleSetsResponse, error) {
	return s.analyzer.MuscleSets(ctx, authorID, end)
}

// Location is the analyzer's calendar, UTC without an analyzer.
func (s *ContextService) Location() *time.Location {
	if s.analyzer == nil {
		return time.UTC
	}
	return s.analyzer.Location()
}

func (s *ContextService) OneRMHistory(ctx context.Context, authorID, templateID string) (*exercises.OneRMHistory, error) {
	return s.analyzer.OneRMHistory(ctx, authorID, templateID)
}

func (s *ContextService) DailyTarget(date time.Time, userID string) *nutrition.DailyMacroTarget {
	return s.nutrition.DailyTarget(date, userID)
}

// RecommendProgram ranks all stored program templates against the preference.
func (s *ContextService) RecommendProgram(ctx context.Context, pref programs.Preference) (*programs.RecommendResponse, error) {
	templates, err := s.programRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list program templates: %w", err)
	}
	if len(templates) == 0 {
		return nil, ErrNoProgramTemplates
	}
	return &programs.RecommendResponse{
		Template: programs.Recommend(pref, templates),
		Ranking:  programs.Rank(pref, templates),
	}, nil
}
