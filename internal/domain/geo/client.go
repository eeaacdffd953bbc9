package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client reads country, subdivision, and currency reference data from the
// external geographic collaborator. It is best-effort and cache-free: every
// caller must tolerate failure, and the conditional-field resolver falls back
// to treating a country as stateless when a lookup fails.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Timeout:    timeout,
	}
}

type countriesResponse struct {
	Error bool `json:"error"`
	Data  []struct {
		Name string `json:"name"`
	} `json:"data"`
}

type subdivisionsResponse struct {
	Error bool `json:"error"`
	Data  struct {
		Name   string `json:"name"`
		States []struct {
			Name string `json:"name"`
			Code string `json:"state_code"`
		} `json:"states"`
	} `json:"data"`
}

type currenciesResponse struct {
	Error bool `json:"error"`
	Data  []struct {
		Name     string `json:"name"`
		Currency string `json:"currency"`
	} `json:"data"`
}

func (c *Client) Countries(ctx context.Context) ([]string, error) {
	var parsed countriesResponse
	if err := c.get(ctx, "/countries/positions", &parsed); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(parsed.Data))
	for _, country := range parsed.Data {
		out = append(out, country.Name)
	}
	return out, nil
}

// Subdivisions returns the first-level subdivision names for country. A
// country unknown to the collaborator yields an empty slice, not an error.
func (c *Client) Subdivisions(ctx context.Context, country string) ([]string, error) {
	payload := map[string]string{"country": country}
	var parsed subdivisionsResponse
	if err := c.post(ctx, "/countries/states", payload, &parsed); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(parsed.Data.States))
	for _, state := range parsed.Data.States {
		out = append(out, state.Name)
	}
	return out, nil
}

// Currencies returns ISO currency codes. On any failure it returns the
// fallback list so currency selection never blocks on the collaborator.
func (c *Client) Currencies(ctx context.Context) []string {
	var parsed currenciesResponse
	if err := c.get(ctx, "/countries/currency", &parsed); err != nil {
		return FallbackCurrencies()
	}
	seen := make(map[string]struct{})
	var out []string
	for _, entry := range parsed.Data {
		code := strings.ToUpper(strings.TrimSpace(entry.Currency))
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	if len(out) == 0 {
		return FallbackCurrencies()
	}
	return out
}

// FallbackCurrencies is served when the collaborator is unavailable.
func FallbackCurrencies() []string {
	return []string{"LKR", "USD", "EUR", "GBP", "INR", "AUD", "SGD"}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: c.Timeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("geo lookup failed with status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
