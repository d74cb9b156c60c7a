// Package main runs the gymcoach MCP server over stdio.
// The main service serves the same tools over HTTP at /mcp on its metrics port.
package main

import (
	"context"
	"flag"
	"net"
	"os"

	"github.com/2beens/gymcoach/internal/config"
	"github.com/2beens/gymcoach/internal/db"
	"github.com/2beens/gymcoach/internal/gymstats/events"
	"github.com/2beens/gymcoach/internal/gymstats/exercises"
	coachmcp "github.com/2beens/gymcoach/internal/mcp"
	"github.com/2beens/gymcoach/internal/nutrition"
	"github.com/2beens/gymcoach/internal/programs"
	"github.com/2beens/gymcoach/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("load location: %v", err)
	}
	cacheTTL, err := cfg.CacheTTL()
	if err != nil {
		log.Fatalf("analyzer cache ttl: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("REDIS_PASS"),
	})
	defer rdb.Close()

	metricsManager := metrics.NewManager("gymcoach", "mcp", nil)

	nutritionManager := nutrition.NewManager(nutrition.ManagerParams{
		LocalStore:     nutrition.NewRedisPlanStore(rdb),
		RemoteStore:    nutrition.NewPsqlPlanStore(dbPool),
		MetricsManager: metricsManager,
	})
	if err := nutritionManager.Init(ctx); err != nil {
		log.Warnf("init nutrition manager: %s", err)
	}

	service := coachmcp.NewContextService(coachmcp.ContextServiceParams{
		Schema:    coachmcp.NewPoolSchemaRepo(dbPool),
		Weight:    events.NewService(events.NewRepo(dbPool), loc, metricsManager),
		Nutrition: nutritionManager,
		Analyzer: exercises.NewAnalyzer(exercises.AnalyzerParams{
			Repo:           exercises.NewRepo(dbPool),
			Location:       loc,
			CacheSizeMB:    cfg.AnalyzerCacheSizeMB,
			CacheTTL:       cacheTTL,
			MetricsManager: metricsManager,
		}),
		ProgramRepo: programs.NewRepo(dbPool),
	})

	if err := coachmcp.NewServer(service).Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
