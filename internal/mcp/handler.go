package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/events"
	"github.com/2beens/gymcoach/internal/programs"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool inputs into service calls and formats the results.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func parseDate(value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(time.DateOnly, value, loc)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type WeightTrendInput struct {
	UserID   string `json:"user_id,omitempty" jsonschema:"User whose weight reports are used"`
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

func (h *Handler) GetWeightTrendTool() func(context.Context, *mcp.CallToolRequest, WeightTrendInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeightTrendInput) (*mcp.CallToolResult, any, error) {
		from, err := parseDate(in.FromDate, time.UTC)
		if err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, err := parseDate(in.ToDate, time.UTC)
		if err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		if to != nil {
			endOfDay := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
			to = &endOfDay
		}

		weightTrend, err := h.service.WeightTrend(ctx, events.TrendParams{
			UserID: in.UserID,
			From:   from,
			To:     to,
		})
		if err != nil {
			return errorResult("Error getting weight trend: " + err.Error()), nil, nil
		}
		return jsonResult(weightTrend), nil, nil
	}
}

type MuscleSetsInput struct {
	AuthorID string `json:"author_id" jsonschema:"Author of the workout sessions"`
	EndDate  string `json:"end_date,omitempty" jsonschema:"Last day of the 7 day window (YYYY-MM-DD), today when empty"`
}

func (h *Handler) GetMuscleSetsTool() func(context.Context, *mcp.CallToolRequest, MuscleSetsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MuscleSetsInput) (*mcp.CallToolResult, any, error) {
		if in.AuthorID == "" {
			return errorResult("author_id is required"), nil, nil
		}
		end, err := parseDate(in.EndDate, h.service.Location())
		if err != nil {
			return errorResult("Invalid end_date: use YYYY-MM-DD"), nil, nil
		}

		muscleSets, err := h.service.MuscleSets(ctx, in.AuthorID, end)
		if err != nil {
			return errorResult("Error getting muscle sets: " + err.Error()), nil, nil
		}
		return jsonResult(muscleSets), nil, nil
	}
}

type OneRMInput struct {
	AuthorID   string `json:"author_id" jsonschema:"Author of the workout sessions"`
	TemplateID string `json:"template_id" jsonschema:"Exercise template id (e.g. bench_press)"`
}

func (h *Handler) GetOneRMHistoryTool() func(context.Context, *mcp.CallToolRequest, OneRMInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in OneRMInput) (*mcp.CallToolResult, any, error) {
		if in.AuthorID == "" || in.TemplateID == "" {
			return errorResult("author_id and template_id are required"), nil, nil
		}
		history, err := h.service.OneRMHistory(ctx, in.AuthorID, in.TemplateID)
		if err != nil {
			return errorResult("Error getting 1RM history: " + err.Error()), nil, nil
		}
		return jsonResult(history), nil, nil
	}
}

type DailyTargetInput struct {
	Date   string `json:"date,omitempty" jsonschema:"Day to get the target for (YYYY-MM-DD), today when empty"`
	UserID string `json:"user_id,omitempty" jsonschema:"Only return the target when the current plan belongs to this user"`
}

func (h *Handler) GetDailyTargetTool() func(context.Context, *mcp.CallToolRequest, DailyTargetInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in DailyTargetInput) (*mcp.CallToolResult, any, error) {
		date := time.Now()
		if in.Date != "" {
			parsed, err := time.Parse(time.DateOnly, in.Date)
			if err != nil {
				return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
			}
			date = parsed
		}

		target := h.service.DailyTarget(date, in.UserID)
		if target == nil {
			return errorResult("No diet plan available"), nil, nil
		}
		return jsonResult(target), nil, nil
	}
}

func (h *Handler) RecommendProgramTool() func(context.Context, *mcp.CallToolRequest, programs.Preference) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, pref programs.Preference) (*mcp.CallToolResult, any, error) {
		if !pref.ExperienceLevel.IsValid() || !pref.SplitType.IsValid() {
			return errorResult("Invalid experienceLevel or splitType"), nil, nil
		}
		resp, err := h.service.RecommendProgram(ctx, pref)
		if err != nil {
			if errors.Is(err, ErrNoProgramTemplates) {
				return errorResult("No program templates stored"), nil, nil
			}
			return errorResult("Error recommending program: " + err.Error()), nil, nil
		}
		return jsonResult(resp), nil, nil
	}
}
