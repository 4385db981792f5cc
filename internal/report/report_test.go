package report

import (
	"airscan/internal/types"
	"strings"
	"testing"
	"time"
)

func TestWrite_EmptyResultWritesNothing(t *testing.T) {
	var sb strings.Builder

	if err := Write(&sb, nil, types.Summary{}, "pm25"); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	if got := sb.String(); got != "" {
		t.Errorf("output = %q, want empty stdout for an empty result", got)
	}
}

func TestWrite_Readings(t *testing.T) {
	readings := []types.Reading{
		{UID: 10817, Name: "Kings Beach, California", Coordinates: types.NewCoords(39.236833, -120.065861), PM25: 26},
		{UID: 12271, Name: "Northstar, California", Coordinates: types.NewCoords(39.3403, -120.1725), PM25: 40},
	}
	summary := types.NewSummary(readings)

	var sb strings.Builder
	if err := Write(&sb, readings, summary, "pm25"); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got := sb.String()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}

	if !strings.Contains(lines[0], "10817") || !strings.Contains(lines[0], "Kings Beach, California") {
		t.Errorf("line 0 = %q, missing station id or name", lines[0])
	}
	if !strings.Contains(lines[0], "PM2.5 = 26.00") {
		t.Errorf("line 0 = %q, missing PM2.5 value", lines[0])
	}
	if !strings.Contains(lines[1], "12271") || !strings.Contains(lines[1], "PM2.5 = 40.00") {
		t.Errorf("line 1 = %q, want Northstar with PM2.5 = 40.00", lines[1])
	}
	if lines[2] != "2 station(s), mean PM2.5 = 33.00" {
		t.Errorf("summary line = %q, want %q", lines[2], "2 station(s), mean PM2.5 = 33.00")
	}
}

func TestWrite_PollutantLabel(t *testing.T) {
	tests := []struct {
		name      string
		pollutant string
		wantLabel string
	}{
		{
			name:      "default pm25",
			pollutant: "pm25",
			wantLabel: "PM2.5",
		},
		{
			name:      "empty falls back to pm25",
			pollutant: "",
			wantLabel: "PM2.5",
		},
		{
			name:      "pm10",
			pollutant: "pm10",
			wantLabel: "PM10",
		},
		{
			name:      "other measurements use the iaqi key",
			pollutant: "o3",
			wantLabel: "o3",
		},
	}

	readings := []types.Reading{
		{UID: 10817, Name: "Kings Beach, California", Coordinates: types.NewCoords(39.24, -120.07), PM25: 8.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := Write(&sb, readings, types.NewSummary(readings), tt.pollutant); err != nil {
				t.Fatalf("Write returned error: %v", err)
			}

			got := sb.String()
			if !strings.Contains(got, tt.wantLabel+" = 8.10") {
				t.Errorf("output = %q, missing reading labeled %q", got, tt.wantLabel)
			}
			if !strings.Contains(got, "mean "+tt.wantLabel+" = 8.10") {
				t.Errorf("output = %q, missing summary labeled %q", got, tt.wantLabel)
			}
		})
	}
}

func TestWrite_DetailTimestamp(t *testing.T) {
	measured, _ := time.Parse(time.RFC3339, "2026-08-25T14:00:00-07:00")
	readings := []types.Reading{
		{UID: 10817, Name: "Kings Beach, California", Coordinates: types.NewCoords(39.24, -120.07), PM25: 26, MeasuredAt: measured},
	}

	var sb strings.Builder
	if err := Write(&sb, readings, types.NewSummary(readings), "pm25"); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	if !strings.Contains(sb.String(), "2026-08-25T14:00:00-07:00") {
		t.Errorf("output = %q, missing measurement timestamp", sb.String())
	}
}
