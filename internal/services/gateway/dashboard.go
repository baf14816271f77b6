package gateway

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"
)

// DTOs toward the dashboard. The gateway keeps its own shapes instead
// of importing the upstream services' types, so a backend refactor
// cannot silently change the public payload.

type Evaluation struct {
	GreenhouseID   string  `json:"greenhouse_id"`
	ZoneID         string  `json:"zone_id"`
	Rate           float64 `json:"rate"`
	LimitingFactor string  `json:"limiting_factor"`
	Time           string  `json:"time"` // RFC3339
}

type Factors struct {
	Light       float64 `json:"light"`
	CO2         float64 `json:"co2"`
	Temperature float64 `json:"temperature"`
}

type Preset struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Factors     Factors `json:"factors"`
}

// ReferenceSummary is the slice of the simulator's trajectory summary
// the dashboard shows.
type ReferenceSummary struct {
	Days                   int     `json:"days"`
	FinalBiomass           float64 `json:"final_biomass"`
	GrowthPercent          float64 `json:"growth_percent"`
	DominantLimitingFactor string  `json:"dominant_limiting_factor"`
}

// ReferenceSimulation is the first preset run over a fixed horizon, a
// baseline growers compare their live zones against.
type ReferenceSimulation struct {
	Preset  string           `json:"preset"`
	Summary ReferenceSummary `json:"summary"`
}

type Stats struct {
	MeanRate       float64        `json:"mean_rate"`
	MinRate        float64        `json:"min_rate"`
	MaxRate        float64        `json:"max_rate"`
	LimitingCounts map[string]int `json:"limiting_counts"`
}

type Payload struct {
	Evaluations []Evaluation         `json:"evaluations"`
	Presets     []Preset             `json:"presets"`
	Reference   *ReferenceSimulation `json:"reference_simulation,omitempty"`
	Stats       Stats                `json:"stats"`
}

// referenceHorizonDays is the horizon of the baseline simulation run.
const referenceHorizonDays = 30

// Service aggregates the telemetry and simulation services into one
// dashboard payload. Each upstream sits behind its own breaker; when
// telemetry is unreachable the last good evaluation batch is served.
type Service struct {
	telemetry  *Upstream
	simulation *Upstream

	mu            sync.Mutex
	lastGoodEvals []Evaluation
}

func NewService(telemetry, simulation *Upstream) *Service {
	return &Service{telemetry: telemetry, simulation: simulation}
}

func (s *Service) BuildDashboard(ctx context.Context) Payload {
	// a healthy empty batch is served as-is; the cache covers only the
	// error path so the dashboard never shows evaluations that no
	// longer exist
	var evals []Evaluation
	if err := s.telemetry.GetJSON(ctx, "/evaluations/latest", &evals); err != nil {
		log.Printf("gateway: telemetry unavailable, serving cache: %v", err)
		s.mu.Lock()
		evals = s.lastGoodEvals
		s.mu.Unlock()
	} else if len(evals) > 0 {
		s.mu.Lock()
		s.lastGoodEvals = evals
		s.mu.Unlock()
	}

	var presets []Preset
	if err := s.simulation.GetJSON(ctx, "/presets", &presets); err != nil {
		log.Printf("gateway: simulation unavailable: %v", err)
		presets = nil
	}

	return Payload{
		Evaluations: evals,
		Presets:     presets,
		Reference:   s.referenceRun(ctx, presets),
		Stats:       summarize(evals),
	}
}

// referenceRun simulates the first preset over the fixed horizon. Both
// calls ride the simulation breaker, so a tripped catalog fetch also
// skips the run.
func (s *Service) referenceRun(ctx context.Context, presets []Preset) *ReferenceSimulation {
	if len(presets) == 0 {
		return nil
	}
	req := struct {
		Factors Factors `json:"factors"`
		Days    int     `json:"days"`
	}{Factors: presets[0].Factors, Days: referenceHorizonDays}

	var resp struct {
		Summary ReferenceSummary `json:"summary"`
	}
	if err := s.simulation.PostJSON(ctx, "/simulate", req, &resp); err != nil {
		log.Printf("gateway: reference simulation unavailable: %v", err)
		return nil
	}
	return &ReferenceSimulation{Preset: presets[0].Name, Summary: resp.Summary}
}

func summarize(evals []Evaluation) Stats {
	st := Stats{LimitingCounts: map[string]int{}}
	if len(evals) == 0 {
		return st
	}
	st.MinRate = evals[0].Rate
	st.MaxRate = evals[0].Rate
	sum := 0.0
	for _, e := range evals {
		sum += e.Rate
		if e.Rate < st.MinRate {
			st.MinRate = e.Rate
		}
		if e.Rate > st.MaxRate {
			st.MaxRate = e.Rate
		}
		if e.LimitingFactor != "" {
			st.LimitingCounts[e.LimitingFactor]++
		}
	}
	st.MeanRate = sum / float64(len(evals))
	return st
}

// Router exposes the dashboard endpoint plus a liveness probe.
func (s *Service) Router(timeout time.Duration) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/dashboard/data", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp := s.BuildDashboard(ctx)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)

		log.Printf("GET /dashboard/data [%dms] cb[telemetry]=%v cb[simulation]=%v evaluations=%d presets=%d",
			time.Since(start).Milliseconds(), s.telemetry.State(), s.simulation.State(),
			len(resp.Evaluations), len(resp.Presets))
	})
	return mux
}
