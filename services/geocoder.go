package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tripplanner/logger"
	"tripplanner/metrics"
)

// Resolver maps free text to coordinates. Every failure is a *LocationError.
type Resolver interface {
	Resolve(ctx context.Context, location string) (Coordinates, error)
}

// ─── Nominatim Client ─────────────────────────────────────────────────────────

// NominatimClient resolves places through an OpenStreetMap Nominatim server.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     logger.Logger
}

// NewNominatimClient builds a client. timeout bounds each lookup.
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration, log logger.Logger) *NominatimClient {
	return &NominatimClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.WithFields(map[string]interface{}{"component": "geocoder"}),
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve returns the first search hit. Service errors are folded into
// ErrLocationNotFound.
func (c *NominatimClient) Resolve(ctx context.Context, location string) (Coordinates, error) {
	coords, err := c.search(ctx, location)
	if err != nil {
		metrics.GeocodeLookups.WithLabelValues("not_found").Inc()
		c.logger.Debug("geocode failed", map[string]interface{}{
			"location": location,
			"error":    err.Error(),
		})
		return Coordinates{}, &LocationError{Location: location, Err: err}
	}
	metrics.GeocodeLookups.WithLabelValues("resolved").Inc()
	return coords, nil
}

func (c *NominatimClient) search(ctx context.Context, location string) (Coordinates, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Coordinates{}, fmt.Errorf("empty location")
	}

	query := url.Values{}
	query.Set("q", location)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return Coordinates{}, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Coordinates{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Coordinates{}, fmt.Errorf("reading geocoder response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Coordinates{}, fmt.Errorf("geocoder error (%d): %s", resp.StatusCode, string(body))
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return Coordinates{}, fmt.Errorf("failed to parse geocoder response: %w", err)
	}
	if len(results) == 0 {
		return Coordinates{}, fmt.Errorf("no results")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}

// ─── Cache ────────────────────────────────────────────────────────────────────

// CachedResolver keeps successful lookups in Redis. Failures are not cached.
type CachedResolver struct {
	next   Resolver
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedResolver(next Resolver, client *redis.Client, ttl time.Duration, log logger.Logger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		redis:  client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "geocode-cache"}),
	}
}

func (c *CachedResolver) Resolve(ctx context.Context, location string) (Coordinates, error) {
	key := geocodeCacheKey(location)
	if val, err := c.redis.Get(ctx, key).Result(); err == nil {
		var coords Coordinates
		if err := json.Unmarshal([]byte(val), &coords); err == nil {
			metrics.GeocodeLookups.WithLabelValues("cache_hit").Inc()
			return coords, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("geocode cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}

	coords, err := c.next.Resolve(ctx, location)
	if err != nil {
		return Coordinates{}, err
	}

	data, _ := json.Marshal(coords)
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("geocode cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return coords, nil
}

func geocodeCacheKey(location string) string {
	return "geocode:" + strings.ToLower(strings.Join(strings.Fields(location), " "))
}
