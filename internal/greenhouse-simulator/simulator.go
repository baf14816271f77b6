package greenhouse_simulator

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/dlorenzetti/greensim_project/internal/model/messages"
	"github.com/dlorenzetti/greensim_project/pkg/mqttbus"
)

// GreenhouseSimulator publishes one zone's environment readings at a
// fixed interval.
type GreenhouseSimulator struct {
	greenhouseID string
	zoneID       string
	generator    *DiurnalGenerator
	publisher    mqttbus.IPublisher
	now          func() time.Time // stubbed in tests
}

func NewGreenhouseSimulator(publisher mqttbus.IPublisher, gen *DiurnalGenerator, greenhouseID, zoneID string) *GreenhouseSimulator {
	return &GreenhouseSimulator{
		greenhouseID: greenhouseID,
		zoneID:       zoneID,
		generator:    gen,
		publisher:    publisher,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Start blocks, publishing a reading every interval until the context
// is cancelled.
func (s *GreenhouseSimulator) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.publisher.Close()
			return
		case <-ticker.C:
			if err := s.publishOnce(); err != nil {
				log.Printf("simulator: publish error: %v", err)
			}
		}
	}
}

func (s *GreenhouseSimulator) publishOnce() error {
	now := s.now()
	f := s.generator.At(now)

	reading := messages.EnvironmentReading{
		GreenhouseID: s.greenhouseID,
		ZoneID:       s.zoneID,
		Light:        f.Light,
		CO2:          f.CO2,
		Temperature:  f.Temperature,
		Timestamp:    now,
	}
	log.Printf("simulator: pub %s/%s light=%.0f co2=%.0f temp=%.1f",
		s.greenhouseID, s.zoneID, f.Light, f.CO2, f.Temperature)

	payload, _ := json.Marshal(reading)
	return s.publisher.PublishMessage(string(payload))
}
