package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	greenhouseSimulator "github.com/dlorenzetti/greensim_project/internal/greenhouse-simulator"
	"github.com/dlorenzetti/greensim_project/pkg/mqttbus"
)

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func main() {
	greenhouseID := flag.String("greenhouse-id", "gh-1", "greenhouse identifier")
	zoneID := flag.String("zone-id", "zone-1", "zone identifier")
	clientID := flag.String("client-id", "greenhousePublisher1", "MQTT client ID")
	interval := flag.Duration("interval", 10*time.Second, "publish interval")
	profilePath := flag.String("profile", "", "optional JSON zone profile file")
	flag.Parse()

	cfg := &mqttbus.BrokerConfig{
		Host:     getenv("MQTT_HOST", "localhost"),
		Port:     1883,
		User:     getenv("MQTT_USER", "guest"),
		Password: getenv("MQTT_PASSWORD", "guest"),
		ClientID: *clientID,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := mqttbus.NewConn(cfg, ctx)
	if err != nil {
		log.Fatal(err)
	}

	profile := greenhouseSimulator.DefaultProfile()
	if *profilePath != "" {
		raw, err := os.ReadFile(*profilePath)
		if err != nil {
			log.Fatalf("read profile: %v", err)
		}
		if err := json.Unmarshal(raw, &profile); err != nil {
			log.Fatalf("parse profile: %v", err)
		}
	}

	topic := fmt.Sprintf("greenhouse/reading/%s/%s", *greenhouseID, *zoneID)
	publisher := mqttbus.NewPublisher(client, topic)
	generator := greenhouseSimulator.NewDiurnalGenerator(profile)

	sim := greenhouseSimulator.NewGreenhouseSimulator(publisher, generator, *greenhouseID, *zoneID)
	log.Printf("greenhouse-simulator: %s/%s publishing to %s every %s", *greenhouseID, *zoneID, topic, *interval)
	sim.Start(ctx, *interval)
}
