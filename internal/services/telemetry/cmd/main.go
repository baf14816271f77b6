package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"github.com/dlorenzetti/greensim_project/internal/services/telemetry"
	"github.com/dlorenzetti/greensim_project/pkg/mqttbus"
)

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	cfg := struct {
		Broker mqttbus.BrokerConfig

		InfluxURL    string
		InfluxToken  string
		InfluxOrg    string
		InfluxBucket string

		ReadingTopic  string
		EventTopic    string
		BatchSize     int
		FlushInterval time.Duration

		HTTPPort int
	}{
		Broker: mqttbus.BrokerConfig{
			Host:     envStr("MQTT_HOST", "localhost"),
			Port:     envInt("MQTT_PORT", 1883),
			User:     envStr("MQTT_USER", "guest"),
			Password: envStr("MQTT_PASSWORD", "guest"),
			ClientID: envStr("HOSTNAME", "telemetry-service"),
		},

		InfluxURL:    envStr("INFLUX_URL", "http://localhost:8086"),
		InfluxToken:  os.Getenv("INFLUX_TOKEN"),
		InfluxOrg:    envStr("INFLUX_ORG", "greensim"),
		InfluxBucket: envStr("INFLUX_BUCKET", "evaluations"),

		ReadingTopic:  envStr("READING_TOPIC", "greenhouse/reading/#"),
		EventTopic:    envStr("EVENT_TOPIC_TMPL", "evaluation/{greenhouse}/{zone}"),
		BatchSize:     envInt("WRITE_BATCH_SIZE", 10),
		FlushInterval: time.Duration(envInt("WRITE_FLUSH_INTERVAL_MS", 200)) * time.Millisecond,

		HTTPPort: envInt("HTTP_PORT", 5011),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// === InfluxDB ===
	opts := influxdb2.DefaultOptions().
		SetBatchSize(uint(cfg.BatchSize)).
		SetFlushInterval(uint(cfg.FlushInterval.Milliseconds()))
	influx := influxdb2.NewClientWithOptions(cfg.InfluxURL, cfg.InfluxToken, opts)
	defer influx.Close()
	writer := telemetry.NewWriter(influx.WriteAPI(cfg.InfluxOrg, cfg.InfluxBucket))

	// === MQTT ===
	mqttClient, err := mqttbus.NewConn(&cfg.Broker, ctx)
	if err != nil {
		log.Fatalf("telemetry: mqtt connection: %v", err)
	}
	defer mqttbus.CloseConn(mqttClient)

	consumer := mqttbus.NewConsumer(mqttClient, cfg.ReadingTopic, nil)
	publisher := mqttbus.NewPublisher(mqttClient, cfg.EventTopic)
	_ = telemetry.NewEvaluator(consumer, publisher, writer, cfg.EventTopic)
	go consumer.ConsumeMessage(ctx)

	// === HTTP ===
	mux := http.NewServeMux()
	mux.Handle("/healthz", telemetry.NewHealthHandler(mqttClient, influx, writer))
	mux.Handle("/readyz", telemetry.NewReadyHandler(mqttClient, influx, writer, 2*time.Second))
	mux.Handle("/evaluations/latest", telemetry.NewLatestEvaluationsHandler(influx, cfg.InfluxOrg, cfg.InfluxBucket))

	hs := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("telemetry: listening on :%d", cfg.HTTPPort)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("telemetry: http server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.Printf("telemetry: shutdown: %v", err)
	}
}
