package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testUpstream(t *testing.T, name string, h http.Handler) (*Upstream, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewUpstream(name, srv.URL, time.Second, NewBreaker(name, 3, 100, 0)), srv
}

func TestBuildDashboardAggregatesUpstreams(t *testing.T) {
	telemetry, _ := testUpstream(t, "telemetry", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"greenhouse_id":"gh-1","zone_id":"z-1","rate":0.8,"limiting_factor":"light","time":"2026-08-01T10:00:00Z"},
			{"greenhouse_id":"gh-1","zone_id":"z-2","rate":0.4,"limiting_factor":"co2","time":"2026-08-01T10:00:00Z"},
			{"greenhouse_id":"gh-1","zone_id":"z-3","rate":0.6,"limiting_factor":"light","time":"2026-08-01T10:00:00Z"}
		]`))
	}))
	simulation, _ := testUpstream(t, "simulation", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/presets":
			_, _ = w.Write([]byte(`[{"name":"optimal-greenhouse","factors":{"light":500,"co2":400,"temperature":25}},{"name":"cloudy-day"}]`))
		case "/simulate":
			_, _ = w.Write([]byte(`{"summary":{"days":30,"final_biomass":320.5,"growth_percent":220.5,"dominant_limiting_factor":"light"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	svc := NewService(telemetry, simulation)
	p := svc.BuildDashboard(context.Background())

	if len(p.Evaluations) != 3 || len(p.Presets) != 2 {
		t.Fatalf("got %d evaluations, %d presets", len(p.Evaluations), len(p.Presets))
	}
	if p.Reference == nil || p.Reference.Preset != "optimal-greenhouse" {
		t.Fatalf("reference simulation missing or mislabelled: %+v", p.Reference)
	}
	if p.Reference.Summary.Days != 30 || p.Reference.Summary.DominantLimitingFactor != "light" {
		t.Fatalf("reference summary wrong: %+v", p.Reference.Summary)
	}
	if p.Stats.MinRate != 0.4 || p.Stats.MaxRate != 0.8 {
		t.Fatalf("stats range wrong: %+v", p.Stats)
	}
	if got := p.Stats.MeanRate; got < 0.59 || got > 0.61 {
		t.Fatalf("mean rate %v, want 0.6", got)
	}
	if p.Stats.LimitingCounts["light"] != 2 || p.Stats.LimitingCounts["co2"] != 1 {
		t.Fatalf("limiting counts wrong: %+v", p.Stats.LimitingCounts)
	}
}

func TestBuildDashboardServesCacheWhenTelemetryDown(t *testing.T) {
	healthy := true
	telemetry, _ := testUpstream(t, "telemetry", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[{"greenhouse_id":"gh-1","zone_id":"z-1","rate":0.7,"limiting_factor":"temperature","time":"2026-08-01T10:00:00Z"}]`))
	}))
	simulation, _ := testUpstream(t, "simulation", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))

	svc := NewService(telemetry, simulation)

	p := svc.BuildDashboard(context.Background())
	if len(p.Evaluations) != 1 {
		t.Fatalf("warm-up fetch failed: %+v", p)
	}

	healthy = false
	p = svc.BuildDashboard(context.Background())
	if len(p.Evaluations) != 1 || p.Evaluations[0].Rate != 0.7 {
		t.Fatalf("cache not served: %+v", p.Evaluations)
	}
}

func TestBuildDashboardServesHealthyEmptyBatch(t *testing.T) {
	empty := false
	telemetry, _ := testUpstream(t, "telemetry", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if empty {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[{"greenhouse_id":"gh-1","zone_id":"z-1","rate":0.7,"limiting_factor":"temperature","time":"2026-08-01T10:00:00Z"}]`))
	}))
	simulation, _ := testUpstream(t, "simulation", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))

	svc := NewService(telemetry, simulation)
	if p := svc.BuildDashboard(context.Background()); len(p.Evaluations) != 1 {
		t.Fatalf("warm-up fetch failed: %+v", p)
	}

	// telemetry is healthy but has nothing in the window; the stale
	// cache must not resurrect old evaluations
	empty = true
	p := svc.BuildDashboard(context.Background())
	if len(p.Evaluations) != 0 {
		t.Fatalf("healthy empty batch replaced by cache: %+v", p.Evaluations)
	}
	if p.Reference != nil {
		t.Fatalf("no presets, so no reference simulation: %+v", p.Reference)
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	down, _ := testUpstream(t, "telemetry", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	var out []Evaluation
	for i := 0; i < 3; i++ {
		if err := down.GetJSON(context.Background(), "/evaluations/latest", &out); err == nil {
			t.Fatal("expected failure")
		}
	}
	if down.State().String() != "open" {
		t.Fatalf("breaker state %v after 3 consecutive failures", down.State())
	}
}

func TestDashboardEndpoint(t *testing.T) {
	telemetry, _ := testUpstream(t, "telemetry", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	simulation, _ := testUpstream(t, "simulation", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/simulate" {
			_, _ = w.Write([]byte(`{"summary":{"days":30}}`))
			return
		}
		_, _ = w.Write([]byte(`[{"name":"heatwave"}]`))
	}))

	mux := NewService(telemetry, simulation).Router(time.Second)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/data", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %q", ct)
	}
}
