// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	labelerrors "github.com/iahmedsabry/pr-size-label/internal/errors"
	"github.com/iahmedsabry/pr-size-label/internal/giterror"
)

// requestTimeout bounds every individual API request. There is no retry
// layer: a request is attempted exactly once and any failure is final.
const requestTimeout = 30 * time.Second

// RESTClient implements the GitHub Client interface using the REST API.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	inspector  giterror.Inspector
}

// NewRESTClient creates a new GitHub REST client with the provided token and
// API base URL (e.g. https://api.github.com, or a GitHub Enterprise
// endpoint). The client is configured with:
//   - Authentication via the provided token
//   - A fixed per-request timeout
//   - Response size limiting to prevent memory issues
//   - User-Agent and Accept headers for API compliance
//   - Optimized connection pooling for API performance
func NewRESTClient(token, baseURL string) *RESTClient {
	// Create optimized transport with connection pooling
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Timeout: requestTimeout,
		Transport: &authTransport{
			token: token,
			base:  transport,
		},
	}

	return &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		inspector:  giterror.NewErrorChainInspector(giterror.NewInspector()),
	}
}

// ListPullRequestFiles retrieves one page of the files changed by the pull
// request. The caller owns the pagination loop; this method fetches exactly
// the page named in opts.
func (c *RESTClient) ListPullRequestFiles(ctx context.Context, owner, repo string, number int, opts ListOptions) ([]PullRequestFile, error) {
	perPage := opts.PerPage
	if perPage <= 0 || perPage > DefaultPerPage {
		perPage = DefaultPerPage
	}
	page := opts.Page
	if page <= 0 {
		page = 1
	}

	url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d/files?per_page=%d&page=%d",
		c.baseURL, owner, repo, number, perPage, page)

	var files []PullRequestFile
	if err := c.get(ctx, url, &files); err != nil {
		return nil, c.mapError(err, owner, repo, number)
	}
	return files, nil
}

// AddLabels appends labels to the pull request. Labels live on the issue
// side of the API, hence the /issues/ path.
func (c *RESTClient) AddLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/labels", c.baseURL, owner, repo, number)
	if err := c.post(ctx, url, addLabelsRequest{Labels: labels}); err != nil {
		return c.mapError(err, owner, repo, number)
	}
	return nil
}

// get executes a GET request and decodes the JSON response into out.
func (c *RESTClient) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

// post executes a POST request with a JSON-encoded body. The response body
// is drained and discarded; only the status matters.
func (c *RESTClient) post(ctx context.Context, url string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, nil)
}

// do runs the request, turns non-2xx statuses into a StatusError and
// decodes a successful body into out when out is non-nil.
func (c *RESTClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w: %v", req.URL.Path, labelerrors.ErrAPIResponse, err)
	}
	return nil
}

// StatusError is a non-2xx answer from the GitHub API. It carries enough
// context for the error inspector to classify the failure without string
// matching.
type StatusError struct {
	StatusCode int
	Message    string
	Path       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github api %s: status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("github api %s: status %d: %s", e.Path, e.StatusCode, e.Message)
}

// IsAuthError reports an authentication or authorization failure.
func (e *StatusError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFoundError reports a missing or inaccessible resource.
func (e *StatusError) IsNotFoundError() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRateLimitError reports a primary or secondary rate limit. Secondary
// limits arrive as 403 with a rate limit message, so the message is
// consulted too.
func (e *StatusError) IsRateLimitError() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		(e.StatusCode == http.StatusForbidden && strings.Contains(strings.ToLower(e.Message), "rate limit"))
}

// IsValidationError reports a request the API understood but rejected.
func (e *StatusError) IsValidationError() bool {
	return e.StatusCode == http.StatusUnprocessableEntity
}

// newStatusError reads the error body and builds a StatusError. GitHub
// error bodies carry a "message" field worth surfacing to the user.
func newStatusError(resp *http.Response) *StatusError {
	se := &StatusError{StatusCode: resp.StatusCode}
	if resp.Request != nil && resp.Request.URL != nil {
		se.Path = resp.Request.URL.Path
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8192))
	if err != nil || len(body) == 0 {
		return se
	}
	var apiErr apiErrorResponse
	if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Message != "" {
		se.Message = apiErr.Message
	} else {
		se.Message = strings.TrimSpace(string(body))
	}
	return se
}

// mapError maps REST errors to our domain errors with actionable messages
func (c *RESTClient) mapError(err error, owner, repo string, number int) error {
	if err == nil {
		return nil
	}

	// Use the inspector to classify errors
	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", labelerrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", labelerrors.ErrInvalidToken)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("pull request %s/%s#%d not found. Please check the repository name and your access permissions: %w", owner, repo, number, labelerrors.ErrNotFound)
	}

	if c.inspector.IsValidationError(err) {
		return fmt.Errorf("GitHub rejected the request for %s/%s#%d: %v: %w", owner, repo, number, err, labelerrors.ErrAPIResponse)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %w", labelerrors.ErrNetworkFailure)
	}

	// Decode failures already carry the sentinel
	if errors.Is(err, labelerrors.ErrAPIResponse) {
		return err
	}

	var se *StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("%v: %w", se, labelerrors.ErrAPIResponse)
	}

	return fmt.Errorf("github api request failed: %w", err)
}
