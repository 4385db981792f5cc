package waqi

import "encoding/json"

// envelope is the outer shape every WAQI response shares. On success Data
// holds the payload; on status "error" it holds a plain string message
// (some endpoints use a top-level "message" field instead).
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// BoundsStation is one entry of the /map/bounds station list. AQI is a
// string; stations without a current reading report "-".
type BoundsStation struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	UID     int     `json:"uid"`
	AQI     string  `json:"aqi"`
	Station struct {
		Name string `json:"name"`
		Time string `json:"time"`
	} `json:"station"`
}

// FeedData is the /feed/@{uid} payload for a single station.
type FeedData struct {
	IDX  int `json:"idx"`
	City struct {
		Name string    `json:"name"`
		Geo  []float64 `json:"geo"`
		URL  string    `json:"url"`
	} `json:"city"`
	DominentPol string               `json:"dominentpol"`
	IAQI        map[string]IAQIValue `json:"iaqi"`
	Time        struct {
		S   string `json:"s"`
		TZ  string `json:"tz"`
		ISO string `json:"iso"`
	} `json:"time"`
}

// IAQIValue wraps a single pollutant concentration.
type IAQIValue struct {
	V float64 `json:"v"`
}
