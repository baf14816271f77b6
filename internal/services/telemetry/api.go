package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

// Evaluation is the payload shape served to the gateway.
type Evaluation struct {
	GreenhouseID   string  `json:"greenhouse_id"`
	ZoneID         string  `json:"zone_id"`
	Rate           float64 `json:"rate"`
	LimitingFactor string  `json:"limiting_factor"`
	Time           string  `json:"time"` // RFC3339
}

type queryParams struct {
	Minutes   int
	Limit     int
	TimeoutMS int
}

func parseQuery(r *http.Request, defMin, defLim, defTOms int) queryParams {
	q := r.URL.Query()
	get := func(k string, def, min, max int) int {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				if n < min {
					return min
				}
				if max > 0 && n > max {
					return max
				}
				return n
			}
		}
		return def
	}
	return queryParams{
		Minutes:   get("minutes", defMin, 1, 7*24*60),
		Limit:     get("limit", defLim, 1, 500),
		TimeoutMS: get("timeout_ms", defTOms, 200, 5000),
	}
}

func buildFlux(bucket string, minutes, limit int) string {
	return fmt.Sprintf(`
from(bucket: %q)
  |> range(start: -%dm)
  |> filter(fn: (r) => r._measurement == "rate_evaluation")
  |> filter(fn: (r) => r._field == "rate")
  |> keep(columns: ["_time","_value","greenhouse_id","zone_id","limiting_factor"])
  |> sort(columns: ["_time"], desc: true)
  |> limit(n:%d)
`, bucket, minutes, limit)
}

// NewLatestEvaluationsHandler serves
// GET /evaluations/latest?limit=20[&minutes=1440] from Influx.
func NewLatestEvaluationsHandler(influx influxdb2.Client, org, bucket string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := parseQuery(r, 1440, 20, 2000)

		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(p.TimeoutMS)*time.Millisecond)
		defer cancel()

		api := influx.QueryAPI(org)
		res, err := api.Query(ctx, buildFlux(bucket, p.Minutes, p.Limit))
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Error", "influx-query-error")
			_, _ = w.Write([]byte("[]"))
			return
		}
		defer func() { _ = res.Close() }()

		out := make([]Evaluation, 0, p.Limit)
		for res.Next() {
			rec := res.Record()

			var rate float64
			switch v := rec.Value().(type) {
			case float64:
				rate = v
			case int64:
				rate = float64(v)
			case string:
				if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
					rate = f
				}
			}

			tag := func(key string) string {
				if v := rec.ValueByKey(key); v != nil {
					if s, ok := v.(string); ok {
						return strings.TrimSpace(s)
					}
				}
				return ""
			}

			out = append(out, Evaluation{
				GreenhouseID:   tag("greenhouse_id"),
				ZoneID:         tag("zone_id"),
				Rate:           rate,
				LimitingFactor: tag("limiting_factor"),
				Time:           rec.Time().UTC().Format(time.RFC3339),
			})
		}
		if res.Err() != nil {
			w.Header().Set("X-Error", "influx-iter-error")
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})
}
