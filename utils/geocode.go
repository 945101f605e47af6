package utils

import (
	"fmt"
	"strconv"
	"time"

	"thumbpro/config"

	"github.com/go-resty/resty/v2"
)

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// GeocodeCity resolves a city name to coordinates for the community map
// through a Nominatim-compatible search endpoint.
func GeocodeCity(city string) (float64, float64, error) {
	if city == "" {
		return 0, 0, fmt.Errorf("city is empty")
	}

	client := resty.New().SetTimeout(10 * time.Second)

	var results []geocodeResult
	resp, err := client.R().
		SetHeader("User-Agent", "thumbpro/1.0").
		SetQueryParams(map[string]string{
			"q":      city,
			"format": "json",
			"limit":  "1",
		}).
		SetResult(&results).
		Get(config.AppConfig.GeocodeAPIURL)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		return 0, 0, fmt.Errorf("geocoding API returned status %d", resp.StatusCode())
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", city)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q", results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q", results[0].Lon)
	}

	return lat, lon, nil
}
