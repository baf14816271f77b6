package telemetry

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/dlorenzetti/greensim_project/internal/model/messages"
	"github.com/dlorenzetti/greensim_project/internal/photosynthesis"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
)

// lightPercentFullScale converts legacy percentage light readings into
// photon flux. 100 % maps to three times the reference optimum, the
// point where the response curve is saturated.
const lightPercentFullScale = 3 * photosynthesis.OptimalLight

// ErrMissingIDs is returned when neither the payload nor the topic
// carries a greenhouse/zone identifier.
var ErrMissingIDs = errors.New("reading: missing greenhouse/zone id")

// DecodeReading parses an EnvironmentReading payload and converts it to
// raw model units. The model mandates one unit convention, so the
// percentage light scale used by older nodes is converted here, at the
// boundary, before anything reaches the core. Identifier validation is
// left to the caller, which may still recover the ids from the topic.
func DecodeReading(payload []byte) (messages.EnvironmentReading, entities.EnvironmentalFactors, error) {
	var reading messages.EnvironmentReading
	if err := json.Unmarshal(payload, &reading); err != nil {
		return messages.EnvironmentReading{}, entities.EnvironmentalFactors{}, err
	}

	light := reading.Light
	if reading.LightPct != nil {
		pct := *reading.LightPct
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		light = pct / 100 * lightPercentFullScale
	}

	return reading, entities.EnvironmentalFactors{
		Light:       light,
		CO2:         reading.CO2,
		Temperature: reading.Temperature,
	}, nil
}

// ExtractIDs falls back to the topic ("greenhouse/reading/{gh}/{zone}")
// when a payload omits its identifiers.
func ExtractIDs(topic, greenhouseID, zoneID, prefix string) (string, string) {
	if strings.TrimSpace(greenhouseID) != "" && strings.TrimSpace(zoneID) != "" {
		return greenhouseID, zoneID
	}
	suffix, ok := strings.CutPrefix(topic, prefix)
	if !ok {
		return greenhouseID, zoneID
	}
	parts := strings.Split(suffix, "/")
	if len(parts) >= 2 {
		return parts[0], parts[1]
	}
	return greenhouseID, zoneID
}
