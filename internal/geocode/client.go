// Package geocode turns coordinates into human-readable address data by
// calling a Nominatim-compatible reverse-geocoding service, and builds
// shareable map links. Lookups are best effort: a failed call yields
// common.ErrEnrichmentUnavailable and never blocks plant creation. The
// client performs exactly one request per call; retry policy belongs to
// callers.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/verdant/planter/internal/common"
)

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
	userAgent      = "PlanterService/1.0"
)

// AddressInfo is the normalized result of a reverse-geocode lookup.
// It is a value object and is never persisted as-is.
type AddressInfo struct {
	FullAddress string     `json:"full_address"`
	PostalCode  string     `json:"pin_code,omitempty"`
	Components  Components `json:"components"`
	Landmarks   []string   `json:"landmarks"`
}

// Components holds the subset of address parts the service may return.
// Town substitutes for City when the provider has no city field.
type Components struct {
	Road    string `json:"road,omitempty"`
	Suburb  string `json:"suburb,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// nominatimResponse mirrors the wire shape of GET /reverse?format=json.
type nominatimResponse struct {
	DisplayName string           `json:"display_name"`
	Address     nominatimAddress `json:"address"`
}

type nominatimAddress struct {
	Road     string `json:"road"`
	Suburb   string `json:"suburb"`
	City     string `json:"city"`
	Town     string `json:"town"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Postcode string `json:"postcode"`

	// Point-of-interest style keys, used by the nearby-places search.
	Amenity  string `json:"amenity"`
	Tourism  string `json:"tourism"`
	Shop     string `json:"shop"`
	Leisure  string `json:"leisure"`
	Building string `json:"building"`
}

type searchResult struct {
	DisplayName string `json:"display_name"`
}

// Client calls the reverse-geocoding service.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different Nominatim-compatible endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient injects a shared http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient returns a Client with a 5 second default timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// ReverseGeocode resolves coordinates into an AddressInfo. On any transport
// or decode failure it returns common.ErrEnrichmentUnavailable wrapped with
// the cause; it never panics past this boundary and never retries.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*AddressInfo, error) {
	raw, err := c.reverse(ctx, lat, lon, false)
	if err != nil {
		return nil, err
	}
	return normalize(raw), nil
}

// reverse performs the GET /reverse call. addressDetails additionally asks
// the provider for POI tags, which the nearby-places search inspects.
func (c *Client) reverse(ctx context.Context, lat, lon float64, addressDetails bool) (*nominatimResponse, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%v", lat))
	q.Set("lon", fmt.Sprintf("%v", lon))
	q.Set("format", "json")
	if addressDetails {
		q.Set("addressdetails", "1")
		q.Set("extratags", "1")
	}

	u := c.baseURL + "/reverse?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEnrichmentUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEnrichmentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", common.ErrEnrichmentUnavailable, resp.StatusCode)
	}

	var r nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEnrichmentUnavailable, err)
	}
	return &r, nil
}

// normalize maps the provider response onto the AddressInfo contract:
// town substitutes for city, and landmarks are road, suburb, city-or-town
// in that order with absent fields skipped.
func normalize(r *nominatimResponse) *AddressInfo {
	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}

	var landmarks []string
	for _, v := range []string{r.Address.Road, r.Address.Suburb, city} {
		if v != "" {
			landmarks = append(landmarks, v)
		}
	}

	return &AddressInfo{
		FullAddress: r.DisplayName,
		PostalCode:  r.Address.Postcode,
		Components: Components{
			Road:    r.Address.Road,
			Suburb:  r.Address.Suburb,
			City:    city,
			State:   r.Address.State,
			Country: r.Address.Country,
		},
		Landmarks: landmarks,
	}
}

// NearbyPlaces lists named features around a coordinate: POI tags from the
// reverse lookup plus up to five names from a bounded-viewbox search of
// roughly radiusMeters. The result is deduplicated and capped at ten.
func (c *Client) NearbyPlaces(ctx context.Context, lat, lon float64, radiusMeters int) ([]string, error) {
	raw, err := c.reverse(ctx, lat, lon, true)
	if err != nil {
		return nil, err
	}

	var places []string
	for _, v := range []string{
		raw.Address.Amenity, raw.Address.Tourism, raw.Address.Shop,
		raw.Address.Leisure, raw.Address.Building,
	} {
		if v != "" {
			places = append(places, v)
		}
	}

	// 1 degree of latitude is ~111 km; a square viewbox is close enough
	// for a short-radius place search.
	offset := float64(radiusMeters) / 111000
	q := url.Values{}
	q.Set("format", "json")
	q.Set("limit", "10")
	q.Set("bounded", "1")
	q.Set("viewbox", fmt.Sprintf("%v,%v,%v,%v", lon-offset, lat+offset, lon+offset, lat-offset))

	u := c.baseURL + "/search?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEnrichmentUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrEnrichmentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var results []searchResult
		if err := json.NewDecoder(resp.Body).Decode(&results); err == nil {
			if len(results) > 5 {
				results = results[:5]
			}
			for _, p := range results {
				if p.DisplayName != "" {
					places = append(places, firstSegment(p.DisplayName))
				}
			}
		}
	}

	return dedup(places, 10), nil
}

func firstSegment(displayName string) string {
	for i := 0; i < len(displayName); i++ {
		if displayName[i] == ',' {
			return displayName[:i]
		}
	}
	return displayName
}

func dedup(in []string, limit int) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out
}
