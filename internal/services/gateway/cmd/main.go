package main

import (
	"log"
	"net/http"
	"time"

	"github.com/dlorenzetti/greensim_project/internal/services/gateway"
)

func main() {
	cfg := loadConfig()
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond

	telemetry := gateway.NewUpstream("telemetry-service", cfg.TelemetryURL, timeout,
		gateway.NewBreaker("telemetry-service", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs))
	simulation := gateway.NewUpstream("simulation-service", cfg.SimulationURL, timeout,
		gateway.NewBreaker("simulation-service", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs))

	svc := gateway.NewService(telemetry, simulation)

	addr := ":" + cfg.Port
	log.Printf("gateway listening on %s (telemetry=%s simulation=%s)", addr, cfg.TelemetryURL, cfg.SimulationURL)
	log.Fatal(http.ListenAndServe(addr, svc.Router(timeout)))
}
