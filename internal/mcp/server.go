package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the gymcoach MCP server: schema, weight trend, muscle sets, 1RM history,
// daily macro target and program recommendation tools.
// Served over stdio by cmd/gymcoach_mcp and over HTTP at /mcp by the main service.
func NewServer(service *ContextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymcoach-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_gymcoach_schema",
		Description: "Returns the DB schema of the gymcoach tables (profiles, diet plans, weight events, sessions, sets, program templates): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weight_trend",
		Description: "Returns daily body weight samples and their smoothed trend (EWMA). Optional: user_id, from_date, to_date (YYYY-MM-DD).",
	}, h.GetWeightTrendTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_sets",
		Description: "Returns completed working sets per muscle for each of the 7 days ending at end_date, plus totals. Args: author_id; optional end_date (YYYY-MM-DD).",
	}, h.GetMuscleSetsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_one_rm_history",
		Description: "Returns the estimated one rep max (Epley) per day for an exercise template. Args: author_id, template_id.",
	}, h.GetOneRMHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_daily_target",
		Description: "Returns calories and protein/carb/fat grams of the current diet plan for a date. Optional: date (YYYY-MM-DD), user_id.",
	}, h.GetDailyTargetTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "recommend_program",
		Description: "Ranks stored training program templates against experienceLevel, targetDaysPerWeek, splitType and availableEquipment, and returns the best one.",
	}, h.RecommendProgramTool())

	return s
}

// NewHTTPHandler serves the given MCP server over streamable HTTP.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
