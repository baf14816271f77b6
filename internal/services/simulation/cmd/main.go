package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dlorenzetti/greensim_project/internal/services/simulation"
)

func main() {
	cfg := loadConfig()

	presets, err := simulation.LoadPresets(cfg.PresetsPath)
	if err != nil {
		log.Fatalf("simulation: load presets: %v", err)
	}
	log.Printf("simulation: loaded %d scenario presets from %s", len(presets), cfg.PresetsPath)

	svc := simulation.NewService(presets)

	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           svc.Router(),
		ReadHeaderTimeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("simulation: listening on :%s", cfg.Port)
		if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("simulation: http server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.Printf("simulation: shutdown: %v", err)
	}
}
