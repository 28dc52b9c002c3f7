package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

type Current struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Pressure    int     `json:"pressure"`
	Icon        string  `json:"icon"`
}

type ForecastDay struct {
	Date        string  `json:"date"`
	TempMin     float64 `json:"tempMin"`
	TempMax     float64 `json:"tempMax"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	Icon        string  `json:"icon"`
}

type Report struct {
	Current  Current       `json:"current"`
	Forecast []ForecastDay `json:"forecast"`
	// Demo is set when the report is canned fallback data rather than a
	// live upstream response.
	Demo bool `json:"demo"`
}

// Client fetches current weather and a five-day forecast from
// OpenWeather. Without an API key, or when the upstream call fails, it
// serves canned demo data so the page still renders.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

func (c *Client) Report(ctx context.Context, city string) (Report, error) {
	if city == "" {
		city = "Delhi"
	}
	if c.apiKey == "" {
		return demoReport(city), nil
	}

	current, err := c.fetchCurrent(ctx, city)
	if err != nil {
		return demoReport(city), nil
	}
	forecast, err := c.fetchForecast(ctx, city)
	if err != nil {
		return demoReport(city), nil
	}
	return Report{Current: current, Forecast: forecast}, nil
}

type owWeather struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owCurrentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []owWeather `json:"weather"`
}

type owForecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []owWeather `json:"weather"`
	} `json:"list"`
}

func (c *Client) fetchCurrent(ctx context.Context, city string) (Current, error) {
	var resp owCurrentResponse
	if err := c.get(ctx, "/weather", city, &resp); err != nil {
		return Current{}, err
	}

	cur := Current{
		City:        resp.Name,
		Temperature: resp.Main.Temp,
		Humidity:    resp.Main.Humidity,
		Pressure:    resp.Main.Pressure,
		WindSpeed:   resp.Wind.Speed,
	}
	if len(resp.Weather) > 0 {
		cur.Description = resp.Weather[0].Description
		cur.Icon = resp.Weather[0].Icon
	}
	return cur, nil
}

// fetchForecast keeps one entry per day from the 3-hourly forecast list,
// up to five days.
func (c *Client) fetchForecast(ctx context.Context, city string) ([]ForecastDay, error) {
	var resp owForecastResponse
	if err := c.get(ctx, "/forecast", city, &resp); err != nil {
		return nil, err
	}

	var out []ForecastDay
	seen := make(map[string]bool)
	for _, item := range resp.List {
		if len(item.DtTxt) < 10 {
			continue
		}
		day := item.DtTxt[:10]
		if seen[day] {
			continue
		}
		seen[day] = true

		fd := ForecastDay{
			Date:     day,
			TempMin:  item.Main.TempMin,
			TempMax:  item.Main.TempMax,
			Humidity: item.Main.Humidity,
		}
		if len(item.Weather) > 0 {
			fd.Description = item.Weather[0].Description
			fd.Icon = item.Weather[0].Icon
		}
		out = append(out, fd)
		if len(out) == 5 {
			break
		}
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path, city string, target any) error {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func demoReport(city string) Report {
	return Report{
		Demo: true,
		Current: Current{
			City:        city,
			Temperature: 28,
			Description: "Partly cloudy",
			Humidity:    65,
			WindSpeed:   12,
			Pressure:    1013,
			Icon:        "partly-cloudy",
		},
		Forecast: []ForecastDay{
			{Date: "Today", TempMin: 22, TempMax: 30, Description: "Partly cloudy", Humidity: 65, Icon: "partly-cloudy"},
			{Date: "Tomorrow", TempMin: 20, TempMax: 28, Description: "Light rain", Humidity: 78, Icon: "rainy"},
			{Date: "Day 3", TempMin: 24, TempMax: 32, Description: "Sunny", Humidity: 45, Icon: "sunny"},
			{Date: "Day 4", TempMin: 23, TempMax: 29, Description: "Cloudy", Humidity: 70, Icon: "cloudy"},
			{Date: "Day 5", TempMin: 21, TempMax: 27, Description: "Heavy rain", Humidity: 85, Icon: "heavy-rain"},
		},
	}
}
