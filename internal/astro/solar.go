package astro

import (
	"math"
	"time"

	"github.com/suncron/suncron/internal/geo"
)

// Solar altitude thresholds in degrees that define each event pair.
const (
	horizonAltitude      = -0.833
	civilAltitude        = -6.0
	nauticalAltitude     = -12.0
	astronomicalAltitude = -18.0
)

const (
	j2000     = 2451545.0
	unixEpoch = 2440587.5
	earthTilt = 23.4397
)

// EventTime pairs an event timestamp with whether the event happens at
// all on the requested date. Near the poles the sun may never cross a
// threshold altitude, in which case Occurs is false.
type EventTime struct {
	Time   time.Time
	Occurs bool
}

// Times holds every solar time computed for one location and date.
type Times struct {
	SolarNoon time.Time

	events [len(eventNames)]EventTime
}

// Event returns the computed time for the given event.
func (t *Times) Event(e Event) EventTime {
	if e < 0 || int(e) >= len(t.events) {
		return EventTime{}
	}
	return t.events[e]
}

// DayLength reports the time between sunrise and sunset. The second
// return is false during polar day or night, when there is no sunrise
// or sunset to measure between.
func (t *Times) DayLength() (time.Duration, bool) {
	sunrise, sunset := t.events[Sunrise], t.events[Sunset]
	if !sunrise.Occurs || !sunset.Occurs {
		return 0, false
	}
	return sunset.Time.Sub(sunrise.Time), true
}

// Compute calculates the solar event times for the given position on
// the calendar date carried by date. Results are expressed in date's
// zone. The method is the standard sunrise-equation formulation, which
// is accurate to a couple of minutes; date is expected to be anchored
// at noon so that the day selection is unambiguous.
func Compute(coordinates geo.Coordinates, date time.Time) *Times {
	jd := float64(date.Unix())/86400.0 + unixEpoch
	n := math.Round(jd - j2000 + 0.0008)

	// Mean solar time at the observer's meridian.
	jstar := n - coordinates.Longitude/360.0

	meanAnomaly := normalizeDegrees(357.5291 + 0.98560028*jstar)
	center := 1.9148*sinDeg(meanAnomaly) + 0.0200*sinDeg(2*meanAnomaly) + 0.0003*sinDeg(3*meanAnomaly)
	eclipticLongitude := normalizeDegrees(meanAnomaly + center + 180.0 + 102.9372)

	transit := j2000 + jstar + 0.0053*sinDeg(meanAnomaly) - 0.0069*sinDeg(2*eclipticLongitude)
	declination := math.Asin(sinDeg(eclipticLongitude) * sinDeg(earthTilt))

	times := &Times{SolarNoon: fromJulian(transit, date.Location())}

	pairs := []struct {
		altitude float64
		rising   Event
		setting  Event
	}{
		{horizonAltitude, Sunrise, Sunset},
		{civilAltitude, CivilDawn, CivilDusk},
		{nauticalAltitude, NauticalDawn, NauticalDusk},
		{astronomicalAltitude, AstronomicalDawn, AstronomicalDusk},
	}
	for _, pair := range pairs {
		cosHourAngle := (sinDeg(pair.altitude) - sinDeg(coordinates.Latitude)*math.Sin(declination)) /
			(cosDeg(coordinates.Latitude) * math.Cos(declination))
		if cosHourAngle < -1 || cosHourAngle > 1 {
			// The sun never crosses this altitude today.
			continue
		}
		hourAngle := math.Acos(cosHourAngle) * 180.0 / math.Pi
		times.events[pair.rising] = EventTime{fromJulian(transit-hourAngle/360.0, date.Location()), true}
		times.events[pair.setting] = EventTime{fromJulian(transit+hourAngle/360.0, date.Location()), true}
	}

	return times
}

func fromJulian(jd float64, loc *time.Location) time.Time {
	seconds := (jd - unixEpoch) * 86400.0
	return time.Unix(int64(seconds), 0).In(loc)
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180.0) }

func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180.0) }
