package main

import (
	"airscan/internal/config"
	"airscan/internal/stations"
	"airscan/internal/types"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

const usageText = `Usage: airscan [flags] <token> <lat1>,<lon1>,<lat2>,<lon2> [threshold] [limit]

Queries the WAQI API for real-time PM2.5 readings of the monitoring stations
inside a bounding box.

Arguments:
  token      WAQI API token (may be omitted when AIRSCAN_API_TOKEN is set)
  box        four comma-separated coordinates: lat1,lon1,lat2,lon2
  threshold  optional minimum PM2.5 value to display
  limit      optional maximum number of stations to display

Flags:
  --detail              resolve each station through its feed endpoint
  --pollutant string    iaqi measurement reported in detail mode (default "pm25")
  --timeout duration    HTTP client timeout (default 30s)
  --log-level string    debug, info, warn or error (default "info")
  --log-format string   text or json (default "text")
`

// usageError marks bad command-line input. It is reported with the usage text
// and exit code 2, before any network call is made.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

var validate = validator.New(validator.WithRequiredStructEnabled())

// cliInput is the validated shape of everything the user supplied.
type cliInput struct {
	Token     string            `validate:"required"`
	Box       types.BoundingBox // corners carry their own range tags
	Threshold *float64          `validate:"omitempty,gte=0"`
	Limit     int               `validate:"gte=0"`
	Pollutant string            `validate:"required,alphanum"`
}

// newFlagSet declares the optional flags. Config keys are bound to them in
// bindFlags so flag values override the config file and environment.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("airscan", pflag.ContinueOnError)
	fs.Bool("detail", false, "resolve each station through its feed endpoint")
	fs.String("pollutant", "pm25", "iaqi measurement reported in detail mode")
	fs.Duration("timeout", 30*time.Second, "HTTP client timeout")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "text", "text or json")
	// parse errors are reported by main with the usage text, keep pflag quiet
	fs.SetOutput(io.Discard)
	return fs
}

// parseArgs turns the positional arguments into a validated station query.
// The token may be omitted when the config layer supplies one; the bounding
// box is recognized by its commas.
func parseArgs(args []string, cfg *config.Config, detail bool) (string, stations.Query, error) {
	token := cfg.API.Token
	if len(args) > 0 && !strings.Contains(args[0], ",") {
		token = args[0]
		args = args[1:]
	}

	if len(args) < 1 {
		return "", stations.Query{}, &usageError{msg: "too few arguments: a bounding box is required"}
	}
	if len(args) > 3 {
		return "", stations.Query{}, &usageError{msg: "too many arguments"}
	}
	if token == "" {
		return "", stations.Query{}, &usageError{msg: "missing API token"}
	}

	box, err := types.ParseBoundingBox(args[0])
	if err != nil {
		return "", stations.Query{}, &usageError{msg: fmt.Sprintf("invalid bounding box: %v", err)}
	}

	var threshold *float64
	if len(args) >= 2 {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return "", stations.Query{}, &usageError{msg: fmt.Sprintf("threshold %q must be a valid decimal number", args[1])}
		}
		threshold = &v
	}

	limit := 0
	if len(args) == 3 {
		limit, err = strconv.Atoi(args[2])
		if err != nil {
			return "", stations.Query{}, &usageError{msg: fmt.Sprintf("limit %q must be a valid integer", args[2])}
		}
	}

	input := cliInput{
		Token:     token,
		Box:       box,
		Threshold: threshold,
		Limit:     limit,
		Pollutant: cfg.API.Pollutant,
	}
	if err := validate.Struct(input); err != nil {
		return "", stations.Query{}, &usageError{msg: validationMessage(err)}
	}

	return token, stations.Query{
		Box:       box,
		Threshold: threshold,
		Limit:     limit,
		Pollutant: cfg.API.Pollutant,
		Detail:    detail,
	}, nil
}

// validationMessage flattens the first validation failure into something a
// user can act on.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s check", fe.Namespace(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed %s check", fe.Namespace(), fe.Tag())
	}
	return err.Error()
}
