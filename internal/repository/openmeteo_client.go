package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/metrics"
)

const userAgent = "weather-activity-api (+https://github.com/fakhrymubarak/weather-activity-api)"

// Custom error types
var (
	ErrGeocodingUnavailable = errors.New("unable to search cities")
	ErrForecastUnavailable  = errors.New("Unable to retrieve weather forecast.")

	errUnexpectedStatus = errors.New("unexpected upstream status")
	errMalformedPayload = errors.New("malformed upstream payload")
)

// openMeteoClient performs GET requests against Open-Meteo and decodes JSON bodies.
type openMeteoClient struct {
	httpClient *http.Client
	metrics    *metrics.UpstreamMetrics
}

func newOpenMeteoClient(m *metrics.UpstreamMetrics, httpClient []*http.Client) openMeteoClient {
	client := &http.Client{}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return openMeteoClient{httpClient: client, metrics: m}
}

// getJSON issues the request and decodes the body into out. The caller's context
// bounds the request together with the configured upstream timeout.
func (c openMeteoClient) getJSON(ctx context.Context, endpoint, baseURL string, params url.Values, out any) error {
	if apiKey := config.GetOpenMeteoAPIKey(); apiKey != "" {
		params.Set("apikey", apiKey)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse %s url: %w", endpoint, err)
	}
	u.RawQuery = params.Encode()

	ctx, cancel := context.WithTimeout(ctx, config.GetUpstreamTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordError(endpoint, metrics.ErrorTypeTransport)
		return fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()
	c.metrics.RecordRequest(endpoint, resp.StatusCode, time.Since(start).Seconds())

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.metrics.RecordError(endpoint, metrics.ErrorTypeStatus)
		return fmt.Errorf("%w: %s returned %d: %s", errUnexpectedStatus, endpoint, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.metrics.RecordError(endpoint, metrics.ErrorTypeDecode)
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
