// Package report renders station readings for the terminal. Results go to
// stdout only; anything diagnostic belongs on the logger.
package report

import (
	"airscan/internal/types"
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Write renders one line per reading followed by a summary line. An empty
// result writes nothing: stdout stays machine-readable.
func Write(w io.Writer, readings []types.Reading, summary types.Summary, pollutant string) error {
	if len(readings) == 0 {
		return nil
	}

	label := displayLabel(pollutant)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, r := range readings {
		if r.MeasuredAt.IsZero() {
			fmt.Fprintf(tw, "%d\t%s\t%.4f,%.4f\t%s = %.2f\n",
				r.UID, r.Name, r.Coordinates.Latitude, r.Coordinates.Longitude, label, r.PM25)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%.4f,%.4f\t%s = %.2f\t%s\n",
			r.UID, r.Name, r.Coordinates.Latitude, r.Coordinates.Longitude, label, r.PM25,
			r.MeasuredAt.Format(time.RFC3339))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d station(s), mean %s = %.2f\n", summary.Count, label, summary.Mean)
	return err
}

// displayLabel maps an iaqi key to its display form.
func displayLabel(pollutant string) string {
	switch pollutant {
	case "", "pm25":
		return "PM2.5"
	case "pm10":
		return "PM10"
	default:
		return pollutant
	}
}
