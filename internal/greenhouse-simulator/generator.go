package greenhouse_simulator

import (
	"math"
	"time"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
)

// ZoneProfile describes one greenhouse zone's climate envelope. The
// generator derives every reading from the wall clock and this profile
// alone, so two simulators with the same profile publish the same
// curves and a replayed day reproduces the original evaluations.
type ZoneProfile struct {
	PeakLight   float64 `json:"peak_light"`   // µmol/m²/s at solar noon
	BaseCO2     float64 `json:"base_co2"`     // ppm overnight, vents closed
	CO2Drawdown float64 `json:"co2_drawdown"` // ppm consumed by the canopy at peak light
	NightTemp   float64 `json:"night_temp"`   // °C
	DayTemp     float64 `json:"day_temp"`     // °C at thermal peak
	SunriseHour float64 `json:"sunrise_hour"`
	SunsetHour  float64 `json:"sunset_hour"`
}

// thermalLagHours: air temperature peaks after solar noon because the
// structure stores heat.
const thermalLagHours = 1.5

func DefaultProfile() ZoneProfile {
	return ZoneProfile{
		PeakLight:   900,
		BaseCO2:     450,
		CO2Drawdown: 180,
		NightTemp:   16,
		DayTemp:     29,
		SunriseHour: 6,
		SunsetHour:  20,
	}
}

// DiurnalGenerator produces environmental readings on a deterministic
// day cycle.
type DiurnalGenerator struct {
	profile ZoneProfile
}

func NewDiurnalGenerator(profile ZoneProfile) *DiurnalGenerator {
	if profile.SunsetHour <= profile.SunriseHour {
		profile = DefaultProfile()
	}
	return &DiurnalGenerator{profile: profile}
}

// At returns the zone conditions at time t.
func (g *DiurnalGenerator) At(t time.Time) entities.EnvironmentalFactors {
	hour := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600

	sun := g.daylight(hour)
	return entities.EnvironmentalFactors{
		Light:       g.profile.PeakLight * sun,
		CO2:         g.profile.BaseCO2 - g.profile.CO2Drawdown*sun,
		Temperature: g.profile.NightTemp + (g.profile.DayTemp-g.profile.NightTemp)*g.daylight(hour-thermalLagHours),
	}
}

// daylight maps an hour of day to [0,1]: zero outside the sunrise to
// sunset window, a half sine inside it.
func (g *DiurnalGenerator) daylight(hour float64) float64 {
	rise, set := g.profile.SunriseHour, g.profile.SunsetHour
	if hour <= rise || hour >= set {
		return 0
	}
	return math.Sin(math.Pi * (hour - rise) / (set - rise))
}
