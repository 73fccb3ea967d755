package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2"

type Client struct {
	baseUrl string
	client  *http.Client
	sugar   *zap.SugaredLogger
}

// NewClient builds a client for the given API root. An empty baseUrl falls back
// to the public PokeAPI and a nil httpClient to a default http.Client.
func NewClient(sugar *zap.SugaredLogger, baseUrl string, httpClient *http.Client) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		client:  httpClient,
		sugar:   sugar,
	}
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	c.sugar.Debugf("GET %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return resp, nil
}

func (c *Client) getAndDecode(ctx context.Context, url string, target any) error {
	resp, err := c.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

func (c *Client) Generation(ctx context.Context, id int) (*GenerationResponse, error) {
	var generation GenerationResponse
	if err := c.getAndDecode(ctx, fmt.Sprintf("%s/generation/%d/", c.baseUrl, id), &generation); err != nil {
		return nil, err
	}
	return &generation, nil
}

// Pokemon fetches the detail resource of a species. Names are matched case-insensitively.
func (c *Client) Pokemon(ctx context.Context, name string) (*PokemonResponse, error) {
	slug := url.PathEscape(strings.ToLower(strings.TrimSpace(name)))
	var pokemon PokemonResponse
	if err := c.getAndDecode(ctx, fmt.Sprintf("%s/pokemon/%s/", c.baseUrl, slug), &pokemon); err != nil {
		return nil, err
	}
	return &pokemon, nil
}

// Image downloads raw bytes from an absolute URL, typically a sprite.
func (c *Client) Image(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
