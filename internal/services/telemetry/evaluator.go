package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"math"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
	"github.com/dlorenzetti/greensim_project/internal/model/messages"
	"github.com/dlorenzetti/greensim_project/internal/photosynthesis"
	"github.com/dlorenzetti/greensim_project/pkg/dedup"
	"github.com/dlorenzetti/greensim_project/pkg/mqttbus"
)

const readingTopicPrefix = "greenhouse/reading/"

// Evaluator consumes environment readings, runs each one through the
// rate model, persists the evaluation and republishes it as an event.
type Evaluator struct {
	consumer       mqttbus.IConsumer[messages.EnvironmentReading]
	publisher      mqttbus.IPublisher
	writer         *Writer
	deduper        *dedup.Deduper
	eventTopicTmpl string // e.g. "evaluation/{greenhouse}/{zone}"
}

func NewEvaluator(
	consumer mqttbus.IConsumer[messages.EnvironmentReading],
	publisher mqttbus.IPublisher,
	writer *Writer,
	eventTopicTmpl string,
) *Evaluator {
	if strings.TrimSpace(eventTopicTmpl) == "" {
		eventTopicTmpl = "evaluation/{greenhouse}/{zone}"
	}
	ev := &Evaluator{
		consumer:       consumer,
		publisher:      publisher,
		writer:         writer,
		deduper:        dedup.New(10*time.Minute, 20000),
		eventTopicTmpl: eventTopicTmpl,
	}
	consumer.SetHandler(ev.handleReading)
	return ev
}

func (e *Evaluator) handleReading(topic string, msg mqtt.Message) error {
	// drop QoS-1 redeliveries before unmarshalling
	h := sha256.Sum256(msg.Payload())
	if e.deduper != nil && !e.deduper.ShouldProcess(hex.EncodeToString(h[:])) {
		return nil
	}

	reading, factors, err := DecodeReading(msg.Payload())
	if err != nil {
		log.Printf("telemetry: bad reading on %s: %v", topic, err)
		return nil // do not block the stream
	}
	greenhouseID, zoneID := ExtractIDs(msg.Topic(), reading.GreenhouseID, reading.ZoneID, readingTopicPrefix)
	if strings.TrimSpace(greenhouseID) == "" || strings.TrimSpace(zoneID) == "" {
		log.Printf("telemetry: dropping reading on %s: %v", topic, ErrMissingIDs)
		return nil
	}

	res := photosynthesis.ComputeRate(factors)
	report := photosynthesis.IdentifyLimitingFactor(res.Normalized)

	ts := reading.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	evt := messages.RateEvaluationEvent{
		EvaluationID:      uuid.NewString(),
		GreenhouseID:      greenhouseID,
		ZoneID:            zoneID,
		Rate:              res.Rate,
		EfficiencyPercent: int(math.Round(res.Rate * 100)),
		LimitingFactor:    report.Factor,
		Severity:          report.Severity,
		Timestamp:         ts,
	}

	if e.writer != nil {
		e.writer.api.WritePoint(evaluationToPoint(evt, res.Normalized))
		e.writer.MarkIngest(greenhouseID)
	}

	b, _ := json.Marshal(evt)
	eventTopic := strings.NewReplacer("{greenhouse}", greenhouseID, "{zone}", zoneID).Replace(e.eventTopicTmpl)
	if err := e.publisher.PublishToQos(eventTopic, 1, false, string(b)); err != nil {
		log.Printf("telemetry: publish evaluation: %v", err)
		return err
	}
	log.Printf("telemetry: %s/%s rate=%.3f limiting=%s severity=%s",
		greenhouseID, zoneID, res.Rate, report.Factor, report.Severity)
	return nil
}

// evaluationToPoint maps one evaluation to an Influx point under the
// single "rate_evaluation" measurement. Identifiers and the limiting
// factor become tags; everything numeric lands in fields.
func evaluationToPoint(evt messages.RateEvaluationEvent, n entities.NormalizedFactors) *write.Point {
	tags := map[string]string{
		"greenhouse_id":   evt.GreenhouseID,
		"zone_id":         evt.ZoneID,
		"limiting_factor": string(evt.LimitingFactor),
		"severity":        string(evt.Severity),
	}
	fields := map[string]interface{}{
		"rate":                   evt.Rate,
		"efficiency_percent":     int64(evt.EfficiencyPercent),
		"normalized_light":       n.Light,
		"normalized_co2":         n.CO2,
		"normalized_temperature": n.Temperature,
		"evaluation_id":          evt.EvaluationID,
	}
	return influxdb2.NewPoint("rate_evaluation", tags, fields, evt.Timestamp)
}
