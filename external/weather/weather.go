package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const (
	defaultURL     = "https://api.open-meteo.com/v1/forecast"
	defaultTimeout = 10 * time.Second
)

// Observation is a current weather snapshot at one location.
type Observation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDegree  float64 `json:"wind_degree"`
	Code        int     `json:"weather_code"`
	ObservedAt  string  `json:"observed_at"`
}

// Source - current weather accessor
type Source interface {
	Current(ctx context.Context, lat, lng float64) (*Observation, error)
}

type openMeteo struct {
	url    string
	client *http.Client
}

type currentWeather struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	WindDegree  float64 `json:"winddirection"`
	Code        int     `json:"weathercode"`
	Time        string  `json:"time"`
}

type jsonResponse struct {
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	CurrentWeather currentWeather `json:"current_weather"`
}

func (o *openMeteo) Current(ctx context.Context, lat, lng float64) (*Observation, error) {
	query := fmt.Sprintf("%s?latitude=%f&longitude=%f&current_weather=true", o.url, lat, lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var r jsonResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return nil, err
	}

	return &Observation{
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Temperature: r.CurrentWeather.Temperature,
		WindSpeed:   r.CurrentWeather.WindSpeed,
		WindDegree:  r.CurrentWeather.WindDegree,
		Code:        r.CurrentWeather.Code,
		ObservedAt:  r.CurrentWeather.Time,
	}, nil
}

// New - new weather source. An empty url falls back to the public
// open-meteo endpoint.
func New(url string) Source {
	if url == "" {
		url = defaultURL
	}
	return &openMeteo{
		url: url,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
