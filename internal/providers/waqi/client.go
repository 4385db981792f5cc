package waqi

import (
	"airscan/internal/types"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://aqicn.org/json-api/doc/
// Sample request: https://api.waqi.info/map/bounds?token=demo&latlng=39.379436,116.091230,40.235643,116.784382
const baseURL = "https://api.waqi.info"

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

func NewClient(token string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
		logger:     logger.With("component", "waqi-client"),
	}
}

// SearchBounds fetches the list of stations inside the given bounding box.
func (c *Client) SearchBounds(box types.BoundingBox) ([]BoundsStation, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/map/bounds"
	q := u.Query()
	q.Set("token", c.token)
	q.Set("latlng", box.LatLng())
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching WAQI bounds search", "latlng", box.LatLng())

	data, err := c.get(u.String())
	if err != nil {
		c.logger.Error("WAQI bounds search failed", "latlng", box.LatLng(), "error", err)
		return nil, err
	}

	var stations []BoundsStation
	if err := json.Unmarshal(data, &stations); err != nil {
		c.logger.Error("failed to decode WAQI bounds data", "error", err)
		return nil, &ResponseFormatError{Err: fmt.Errorf("decoding station list: %w", err)}
	}

	c.logger.Debug("successfully fetched WAQI bounds search", "station_count", len(stations))

	return stations, nil
}

// GetFeed fetches the full real-time feed for a single station.
func (c *Client) GetFeed(uid int) (*FeedData, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/feed/@%d/", uid)
	q := u.Query()
	q.Set("token", c.token)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching WAQI station feed", "uid", uid)

	data, err := c.get(u.String())
	if err != nil {
		c.logger.Error("WAQI station feed failed", "uid", uid, "error", err)
		return nil, err
	}

	var feed FeedData
	if err := json.Unmarshal(data, &feed); err != nil {
		c.logger.Error("failed to decode WAQI feed data", "uid", uid, "error", err)
		return nil, &ResponseFormatError{Err: fmt.Errorf("decoding station feed: %w", err)}
	}

	return &feed, nil
}

// get performs the request and unwraps the WAQI envelope, returning the raw
// data payload.
func (c *Client) get(rawURL string) (json.RawMessage, error) {
	resp, err := c.httpClient.Get(rawURL)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to fetch: %w", err)}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &NetworkError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &ResponseFormatError{Err: fmt.Errorf("decoding envelope: %w", err)}
	}

	if env.Status != "ok" {
		return nil, &APIError{Message: apiMessage(env)}
	}

	return env.Data, nil
}

// apiMessage digs the human-readable message out of an error envelope. The
// bounds endpoint puts it in data as a JSON string, the feed endpoint
// sometimes uses a top-level message field.
func apiMessage(env envelope) string {
	var msg string
	if err := json.Unmarshal(env.Data, &msg); err == nil && msg != "" {
		return msg
	}
	if env.Message != "" {
		return env.Message
	}
	return fmt.Sprintf("status %q", env.Status)
}
