package stations

import (
	"airscan/internal/providers/waqi"
	"airscan/internal/types"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// DefaultPollutant is the measurement reported when none is requested.
const DefaultPollutant = "pm25"

// Query describes one region lookup, built once from CLI input.
type Query struct {
	Box       types.BoundingBox
	Threshold *float64 // nil = no threshold filter
	Limit     int      // 0 = unlimited
	Pollutant string   // iaqi key resolved in detail mode
	Detail    bool     // resolve each station through its feed
}

// Provider defines the air-quality API surface the service depends on
type Provider interface {
	SearchBounds(box types.BoundingBox) ([]waqi.BoundsStation, error)
	GetFeed(uid int) (*waqi.FeedData, error)
}

// Service answers region queries with per-station readings
type Service interface {
	Query(q Query) ([]types.Reading, types.Summary, error)
}

type stationService struct {
	provider Provider
	logger   *slog.Logger
}

// NewService creates a station query service backed by the live WAQI API
func NewService(token string, timeout time.Duration, logger *slog.Logger) Service {
	return NewServiceWithProvider(waqi.NewClient(token, timeout, logger), logger)
}

// NewServiceWithProvider creates a station query service with a custom provider
// This is useful for testing with mock providers
func NewServiceWithProvider(provider Provider, logger *slog.Logger) Service {
	return &stationService{
		provider: provider,
		logger:   logger,
	}
}

// Query runs the full pipeline: bounds search, no-data skipping, optional
// per-station feed resolution, threshold filter, limit truncation. Station
// order always follows the API response.
func (s *stationService) Query(q Query) ([]types.Reading, types.Summary, error) {
	entries, err := s.provider.SearchBounds(q.Box)
	if err != nil {
		return nil, types.Summary{}, fmt.Errorf("bounds search failed: %w", err)
	}

	readings := make([]types.Reading, 0, len(entries))
	for _, e := range entries {
		// Stations without a current reading report "-"; skip them but
		// leave a trace in the debug log.
		value, err := strconv.ParseFloat(e.AQI, 64)
		if err != nil {
			s.logger.Debug("ignoring station without numeric reading", "uid", e.UID, "aqi", e.AQI)
			continue
		}

		position := types.NewCoords(e.Lat, e.Lon)
		if !q.Box.Contains(position) {
			s.logger.Debug("ignoring station outside requested box", "uid", e.UID)
			continue
		}

		readings = append(readings, types.Reading{
			UID:         e.UID,
			Name:        e.Station.Name,
			Coordinates: position,
			PM25:        value,
		})
	}

	if q.Detail {
		readings, err = s.resolveDetails(readings, pollutantOrDefault(q.Pollutant))
		if err != nil {
			return nil, types.Summary{}, err
		}
	}

	if q.Threshold != nil {
		kept := make([]types.Reading, 0, len(readings))
		for _, r := range readings {
			if r.PM25 >= *q.Threshold {
				kept = append(kept, r)
			}
		}
		readings = kept
	}

	if q.Limit > 0 && len(readings) > q.Limit {
		readings = readings[:q.Limit]
	}

	return readings, types.NewSummary(readings), nil
}

// resolveDetails replaces each reading's summary value with the exact
// concentration from the station's feed. Fetches are sequential; a feed
// failure aborts the whole query rather than producing partial output.
func (s *stationService) resolveDetails(readings []types.Reading, pollutant string) ([]types.Reading, error) {
	resolved := make([]types.Reading, 0, len(readings))
	for _, r := range readings {
		feed, err := s.provider.GetFeed(r.UID)
		if err != nil {
			return nil, fmt.Errorf("feed for station %d failed: %w", r.UID, err)
		}

		value, ok := feed.IAQI[pollutant]
		if !ok {
			s.logger.Debug("ignoring station without requested pollutant",
				"uid", r.UID,
				"pollutant", pollutant,
			)
			continue
		}

		r.PM25 = value.V
		if ts, err := time.Parse(time.RFC3339, feed.Time.ISO); err == nil {
			r.MeasuredAt = ts
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

func pollutantOrDefault(p string) string {
	if p == "" {
		return DefaultPollutant
	}
	return p
}
