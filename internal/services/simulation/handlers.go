package simulation

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dlorenzetti/greensim_project/internal/growth"
	"github.com/dlorenzetti/greensim_project/internal/model"
	"github.com/dlorenzetti/greensim_project/internal/photosynthesis"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service serves the rate model and the growth simulator over HTTP.
// It holds only the immutable preset catalog; every request is a pure
// computation over its body.
type Service struct {
	presets []model.ScenarioPreset
}

func NewService(presets []model.ScenarioPreset) *Service {
	return &Service{presets: presets}
}

// Router wires all endpoints onto a fresh mux.
func (s *Service) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/rate", s.handleRate)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/validate", s.handleValidate)
	mux.HandleFunc("/simulate", s.handleSimulate)
	mux.HandleFunc("/compare", s.handleCompare)
	mux.HandleFunc("/presets", s.handlePresets)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type factorsRequest struct {
	Factors model.EnvironmentalFactors `json:"factors"`
}

// POST /rate — Blackman rate for one reading.
func (s *Service) handleRate(w http.ResponseWriter, r *http.Request) {
	var req factorsRequest
	if !decodePost(w, r, &req, "rate") {
		return
	}
	res := photosynthesis.ComputeRate(req.Factors)
	limitingFactorTotal.WithLabelValues(string(photosynthesis.IdentifyLimitingFactor(res.Normalized).Factor)).Inc()
	writeJSON(w, res, "rate")
}

type analyzeResponse struct {
	Rate           model.RateResult           `json:"rate_result"`
	Limiting       model.LimitingFactorReport `json:"limiting_factor"`
	Detail         string                     `json:"detail"`
	Recommendation model.Recommendation       `json:"recommendation"`
}

// POST /analyze — rate, limiting-factor report with explanation, and the
// corrective recommendation in one round trip for the dashboard.
func (s *Service) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req factorsRequest
	if !decodePost(w, r, &req, "analyze") {
		return
	}
	res := photosynthesis.ComputeRate(req.Factors)
	report := photosynthesis.IdentifyLimitingFactor(res.Normalized)
	limitingFactorTotal.WithLabelValues(string(report.Factor)).Inc()

	writeJSON(w, analyzeResponse{
		Rate:           res,
		Limiting:       report,
		Detail:         photosynthesis.ExplainLimitation(report, req.Factors),
		Recommendation: photosynthesis.Recommend(report.Factor, req.Factors),
	}, "analyze")
}

type validateRequest struct {
	Target          string                     `json:"factor"`
	ProposedValue   float64                    `json:"proposed_value"`
	CurrentFactors  model.EnvironmentalFactors `json:"current_factors"`
	CurrentLimiting string                     `json:"current_limiting_factor"`
}

// POST /validate — would this change actually help?
func (s *Service) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodePost(w, r, &req, "validate") {
		return
	}
	res := photosynthesis.ValidateChange(
		model.Factor(req.Target),
		req.ProposedValue,
		req.CurrentFactors,
		model.Factor(req.CurrentLimiting),
	)
	writeJSON(w, res, "validate")
}

type simulateRequest struct {
	Factors        model.EnvironmentalFactors   `json:"factors"`
	Schedule       []model.EnvironmentalFactors `json:"schedule,omitempty"` // optional per-day override
	Days           int                          `json:"days"`
	InitialBiomass float64                      `json:"initial_biomass"`
}

type simulateResponse struct {
	Trajectory model.GrowthTrajectory  `json:"trajectory"`
	Summary    model.TrajectorySummary `json:"summary"`
}

// POST /simulate — day-by-day growth trajectory plus its summary. When
// a schedule is given it supplies the conditions for each day in turn,
// the last entry carrying through any remaining days.
func (s *Service) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if !decodePost(w, r, &req, "simulate") {
		return
	}
	simulatedDays.Observe(float64(req.Days))

	var trajectory model.GrowthTrajectory
	if len(req.Schedule) > 0 {
		trajectory = growth.SimulateVariableConditions(func(day int) model.EnvironmentalFactors {
			if day > len(req.Schedule) {
				return req.Schedule[len(req.Schedule)-1]
			}
			return req.Schedule[day-1]
		}, req.Days, req.InitialBiomass)
	} else {
		trajectory = growth.SimulateGrowth(req.Factors, req.Days, req.InitialBiomass)
	}
	writeJSON(w, simulateResponse{
		Trajectory: trajectory,
		Summary:    growth.AnalyzeTrajectory(trajectory),
	}, "simulate")
}

type compareRequest struct {
	Base        model.EnvironmentalFactors `json:"base"`
	Alternative model.EnvironmentalFactors `json:"alternative"`
	Days        int                        `json:"days"`
}

// POST /compare — two scenarios over the same horizon.
func (s *Service) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !decodePost(w, r, &req, "compare") {
		return
	}
	simulatedDays.Observe(float64(req.Days))
	writeJSON(w, growth.CompareScenarios(req.Base, req.Alternative, req.Days), "compare")
}

// GET /presets — the immutable scenario catalog.
func (s *Service) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		requestsTotal.WithLabelValues("presets", "error").Inc()
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.presets, "presets")
}

// decodePost enforces POST+JSON; a malformed body is a caller bug and
// fails fast with 400 rather than being coerced.
func decodePost(w http.ResponseWriter, r *http.Request, out any, endpoint string) bool {
	if r.Method != http.MethodPost {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		log.Printf("simulation: bad request on /%s: %v", endpoint, err)
		http.Error(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any, endpoint string) {
	requestsTotal.WithLabelValues(endpoint, "ok").Inc()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
