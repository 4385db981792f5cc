package types

import "time"

// Reading is one station's real-time particulate measurement.
type Reading struct {
	UID         int
	Name        string
	Coordinates Coords
	PM25        float64
	// MeasuredAt is only populated in detail mode, where the per-station
	// feed reports the observation time. Zero otherwise.
	MeasuredAt time.Time
}

// Summary aggregates the readings that made it into the report.
type Summary struct {
	Count int
	Mean  float64
}

func NewSummary(readings []Reading) Summary {
	if len(readings) == 0 {
		return Summary{}
	}
	total := 0.0
	for _, r := range readings {
		total += r.PM25
	}
	return Summary{
		Count: len(readings),
		Mean:  total / float64(len(readings)),
	}
}
