package query

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultScopes are the query scopes fetched for a graph. Each scope is a
// separate backend query; their results overlap (a chunk query returns the
// documents it hangs off, an entity query returns the chunks that mention
// them), which is resolved downstream by normalization.
var DefaultScopes = []string{"document", "chunk", "entity"}

// HTTPClient implements Client against the query service's REST API.
type HTTPClient struct {
	baseURL string
	token   string
	scopes  []string
	timeout time.Duration
	client  *http.Client
}

// NewHTTPClientParams configures an HTTPClient. Scopes defaults to
// DefaultScopes, Timeout to 30s.
type NewHTTPClientParams struct {
	BaseURL string
	Token   string
	Scopes  []string
	Timeout time.Duration
}

func NewHTTPClient(params NewHTTPClientParams) *HTTPClient {
	scopes := params.Scopes
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: params.BaseURL,
		token:   params.Token,
		scopes:  scopes,
		timeout: timeout,
		client:  &http.Client{},
	}
}

// envelope mirrors the query service's response shape.
type envelope struct {
	Data struct {
		Data Result `json:"data"`
	} `json:"data"`
}

// FetchGraph runs all configured scope queries in parallel and returns the
// concatenated raw records. The whole fan-out shares one deadline; any
// scope failing fails the fetch, classified by wrapFetchError.
func (c *HTTPClient) FetchGraph(ctx context.Context, graphID string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	eg, gCtx := errgroup.WithContext(ctx)
	mutex := sync.Mutex{}

	var combined Result
	for _, scope := range c.scopes {
		s := scope
		eg.Go(func() error {
			part, err := c.fetchScope(gCtx, graphID, s)
			if err != nil {
				return fmt.Errorf("scope %q: %w", s, err)
			}

			mutex.Lock()
			defer mutex.Unlock()
			combined.Nodes = append(combined.Nodes, part.Nodes...)
			combined.Relationships = append(combined.Relationships, part.Relationships...)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Result{}, wrapFetchError(err)
	}
	return combined, nil
}

func (c *HTTPClient) fetchScope(ctx context.Context, graphID, scope string) (Result, error) {
	endpoint := fmt.Sprintf("%s/graphs/%s?scope=%s", c.baseURL, url.PathEscape(graphID), url.QueryEscape(scope))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("query service returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Result{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return env.Data.Data, nil
}
