package firms

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultURL     = "https://firms.modaps.eosdis.nasa.gov/api/area/csv"
	defaultSource  = "VIIRS_SNPP_NRT"
	defaultTimeout = 15 * time.Second
)

var errEmptyKey = fmt.Errorf("empty firms api key")

// Hotspot is one satellite detected thermal anomaly.
type Hotspot struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Brightness float64 `json:"brightness"`
	Confidence string  `json:"confidence"`
	AcqDate    string  `json:"acq_date"`
}

// FIRMS - NASA fire information accessor
type FIRMS interface {
	Hotspots(ctx context.Context, west, south, east, north float64, days int) ([]Hotspot, error)
}

type firms struct {
	key    string
	url    string
	client *http.Client
}

// Hotspots fetches hotspots inside a bounding box over the trailing
// number of days. The FIRMS area API answers in csv.
func (f *firms) Hotspots(ctx context.Context, west, south, east, north float64, days int) ([]Hotspot, error) {
	if f.key == "" {
		return nil, errEmptyKey
	}
	if days <= 0 || days > 10 {
		days = 1
	}

	// {url}/{key}/{source}/{west},{south},{east},{north}/{days}
	query := fmt.Sprintf("%s/%s/%s/%f,%f,%f,%f/%d",
		f.url, f.key, defaultSource, west, south, east, north, days)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("firms request failed with status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	hotspots := make([]Hotspot, 0)
	if len(records) < 2 {
		return hotspots, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}

	for _, record := range records[1:] {
		lat, err := strconv.ParseFloat(record[col["latitude"]], 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(record[col["longitude"]], 64)
		if err != nil {
			continue
		}

		h := Hotspot{
			Latitude:  lat,
			Longitude: lng,
			AcqDate:   record[col["acq_date"]],
		}
		if i, ok := col["bright_ti4"]; ok {
			h.Brightness, _ = strconv.ParseFloat(record[i], 64)
		}
		if i, ok := col["confidence"]; ok {
			h.Confidence = record[i]
		}

		hotspots = append(hotspots, h)
	}

	return hotspots, nil
}

// New - new FIRMS accessor. An empty url falls back to the public
// endpoint.
func New(key, url string) FIRMS {
	if url == "" {
		url = defaultURL
	}
	return &firms{
		key: key,
		url: url,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
