// cmd/crcms/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/VedantChandore/crcms/pkg/api"
	"github.com/VedantChandore/crcms/pkg/config"
	"github.com/VedantChandore/crcms/pkg/db"
	"github.com/VedantChandore/crcms/pkg/fleet"
	"github.com/VedantChandore/crcms/pkg/lifecycle"
	"github.com/VedantChandore/crcms/pkg/registry"
	"github.com/VedantChandore/crcms/pkg/scheduler"
	"github.com/VedantChandore/crcms/pkg/scoring"
)

func main() {
	log.Printf("Starting crcms scheduling server...")

	// A local .env is optional; deployments set real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	configPath := flag.String("config", "/etc/crcms/server.json", "Path to config file")
	flag.Parse()

	var cfg config.ServerConfig
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ApplyEnv()

	store, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	roads, err := registry.LoadRoads(cfg.RoadsCSV)
	if err != nil {
		log.Fatalf("Failed to load road registry: %v", err)
	}

	if cfg.InspectionsCSV != "" {
		records, err := registry.LoadInspections(cfg.InspectionsCSV)
		if err != nil {
			log.Fatalf("Failed to load inspection history: %v", err)
		}

		roads = registry.JoinInspections(roads, records)
	}

	engine, err := scheduler.NewEngine(scheduler.DefaultConfig(), scoring.BaseInspectionInterval)
	if err != nil {
		log.Fatalf("Failed to build scheduling engine: %v", err)
	}

	fleetSvc, err := fleet.NewService(engine, scoring.ComputeHealthScore, store, time.Now)
	if err != nil {
		log.Fatalf("Failed to create fleet service: %v", err)
	}

	if err := fleetSvc.LoadFleet(roads); err != nil {
		log.Fatalf("Failed to load fleet: %v", err)
	}

	if cfg.MonsoonMode {
		fleetSvc.SetMonsoonMode(true)
	}

	log.Printf("Loaded %d roads from %s", len(roads), cfg.RoadsCSV)

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	apiServer := api.NewAPIServer(fleetSvc, limiter)

	err = lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "crcms",
		Handler:     apiServer.Router(),
		Services: []lifecycle.Service{
			fleet.NewRefresher(fleetSvc, fleet.DefaultRefreshInterval),
		},
		ShutdownTimeout: time.Duration(cfg.ShutdownTimeout),
	})
	if err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}

	log.Printf("Shutdown complete")
}
