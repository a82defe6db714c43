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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	labelerrors "github.com/iahmedsabry/pr-size-label/internal/errors"
)

// Compile-time check that RESTClient implements Client
var _ Client = (*RESTClient)(nil)

func TestRESTClient_ListPullRequestFiles(t *testing.T) {
	var gotReq *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"filename": "cmd/main.go", "status": "modified", "additions": 10, "deletions": 5, "changes": 15},
			{"filename": "pkg/new.go", "previous_filename": "pkg/old.go", "status": "renamed", "additions": 1, "deletions": 1, "changes": 2},
			{"filename": "assets/logo.bin", "status": "added", "additions": 0, "deletions": 0, "changes": "binary"}
		]`)
	}))
	defer server.Close()

	client := NewRESTClient("test-token", server.URL)
	files, err := client.ListPullRequestFiles(context.Background(), "acme", "widgets", 42, ListOptions{Page: 2, PerPage: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := "/repos/acme/widgets/pulls/42/files"; gotReq.URL.Path != want {
		t.Errorf("request path = %q, want %q", gotReq.URL.Path, want)
	}
	q := gotReq.URL.Query()
	if q.Get("per_page") != "100" || q.Get("page") != "2" {
		t.Errorf("query = %q, want per_page=100&page=2", gotReq.URL.RawQuery)
	}
	if got := gotReq.Header.Get("Authorization"); got != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", got)
	}
	if got := gotReq.Header.Get("Accept"); got != "application/vnd.github.raw+json" {
		t.Errorf("Accept = %q, want application/vnd.github.raw+json", got)
	}
	if got := gotReq.Header.Get("User-Agent"); !strings.HasPrefix(got, "pr-size-label/") {
		t.Errorf("User-Agent = %q, want pr-size-label/ prefix", got)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}
	if files[0].Changes != (ChangeCount{Value: 15, Valid: true}) {
		t.Errorf("files[0].Changes = %+v, want {15 true}", files[0].Changes)
	}
	if files[1].PreviousFilename != "pkg/old.go" {
		t.Errorf("files[1].PreviousFilename = %q, want pkg/old.go", files[1].PreviousFilename)
	}
	if files[2].Changes.Valid {
		t.Errorf("files[2].Changes = %+v, want invalid", files[2].Changes)
	}
}

func TestRESTClient_ListPullRequestFiles_DefaultsOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("per_page") != "100" {
			t.Errorf("per_page = %q, want 100", q.Get("per_page"))
		}
		if q.Get("page") != "1" {
			t.Errorf("page = %q, want 1", q.Get("page"))
		}
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewRESTClient("test-token", server.URL)
	files, err := client.ListPullRequestFiles(context.Background(), "acme", "widgets", 1, ListOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty page, got %d files", len(files))
	}
}

func TestRESTClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{
			name:     "401 bad credentials",
			status:   http.StatusUnauthorized,
			body:     `{"message": "Bad credentials"}`,
			sentinel: labelerrors.ErrInvalidToken,
		},
		{
			name:     "403 plain forbidden",
			status:   http.StatusForbidden,
			body:     `{"message": "Resource not accessible by integration"}`,
			sentinel: labelerrors.ErrInvalidToken,
		},
		{
			name:     "403 secondary rate limit",
			status:   http.StatusForbidden,
			body:     `{"message": "You have exceeded a secondary rate limit. Please wait a few minutes before you try again."}`,
			sentinel: labelerrors.ErrRateLimit,
		},
		{
			name:     "404 not found",
			status:   http.StatusNotFound,
			body:     `{"message": "Not Found"}`,
			sentinel: labelerrors.ErrNotFound,
		},
		{
			name:     "429 too many requests",
			status:   http.StatusTooManyRequests,
			body:     `{"message": "API rate limit exceeded"}`,
			sentinel: labelerrors.ErrRateLimit,
		},
		{
			name:     "500 server error",
			status:   http.StatusInternalServerError,
			body:     `{"message": "Server Error"}`,
			sentinel: labelerrors.ErrAPIResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := NewRESTClient("test-token", server.URL)
			_, err := client.ListPullRequestFiles(context.Background(), "acme", "widgets", 42, ListOptions{})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error %v does not wrap %v", err, tt.sentinel)
			}
		})
	}
}

func TestRESTClient_MalformedListResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"this is": "not an array"`)
	}))
	defer server.Close()

	client := NewRESTClient("test-token", server.URL)
	_, err := client.ListPullRequestFiles(context.Background(), "acme", "widgets", 42, ListOptions{})
	if !errors.Is(err, labelerrors.ErrAPIResponse) {
		t.Errorf("expected ErrAPIResponse, got %v", err)
	}
}

func TestRESTClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	// Shut the server down so the dial fails.
	serverURL := server.URL
	server.Close()

	client := NewRESTClient("test-token", serverURL)
	_, err := client.ListPullRequestFiles(context.Background(), "acme", "widgets", 42, ListOptions{})
	if !errors.Is(err, labelerrors.ErrNetworkFailure) {
		t.Errorf("expected ErrNetworkFailure, got %v", err)
	}
}

func TestRESTClient_AddLabels(t *testing.T) {
	t.Run("posts the label payload", func(t *testing.T) {
		var gotMethod, gotPath, gotContentType string
		var gotBody addLabelsRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `[{"name": "size/M"}]`)
		}))
		defer server.Close()

		client := NewRESTClient("test-token", server.URL)
		err := client.AddLabels(context.Background(), "acme", "widgets", 42, []string{"size/M"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotMethod != http.MethodPost {
			t.Errorf("method = %q, want POST", gotMethod)
		}
		if want := "/repos/acme/widgets/issues/42/labels"; gotPath != want {
			t.Errorf("path = %q, want %q", gotPath, want)
		}
		if gotContentType != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", gotContentType)
		}
		if len(gotBody.Labels) != 1 || gotBody.Labels[0] != "size/M" {
			t.Errorf("body labels = %v, want [size/M]", gotBody.Labels)
		}
	})

	t.Run("accepts 201 created", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewRESTClient("test-token", server.URL)
		if err := client.AddLabels(context.Background(), "acme", "widgets", 42, []string{"size/XS"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("maps validation failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			fmt.Fprint(w, `{"message": "Validation Failed"}`)
		}))
		defer server.Close()

		client := NewRESTClient("test-token", server.URL)
		err := client.AddLabels(context.Background(), "acme", "widgets", 42, []string{strings.Repeat("x", 100)})
		if !errors.Is(err, labelerrors.ErrAPIResponse) {
			t.Errorf("expected ErrAPIResponse, got %v", err)
		}
	})
}

func TestStatusError(t *testing.T) {
	tests := []struct {
		name       string
		err        *StatusError
		wantString string
		auth       bool
		notFound   bool
		rateLimit  bool
		validation bool
	}{
		{
			name:       "unauthorized",
			err:        &StatusError{StatusCode: 401, Message: "Bad credentials", Path: "/repos/a/b/pulls/1/files"},
			wantString: "github api /repos/a/b/pulls/1/files: status 401: Bad credentials",
			auth:       true,
		},
		{
			name:       "not found without message",
			err:        &StatusError{StatusCode: 404, Path: "/repos/a/b/pulls/1/files"},
			wantString: "github api /repos/a/b/pulls/1/files: status 404",
			notFound:   true,
		},
		{
			name:      "forbidden with rate limit message",
			err:       &StatusError{StatusCode: 403, Message: "API rate limit exceeded"},
			rateLimit: true,
			auth:      true,
		},
		{
			name:       "unprocessable",
			err:        &StatusError{StatusCode: 422, Message: "Validation Failed"},
			validation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantString != "" && tt.err.Error() != tt.wantString {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantString)
			}
			if got := tt.err.IsAuthError(); got != tt.auth {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.auth)
			}
			if got := tt.err.IsNotFoundError(); got != tt.notFound {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.notFound)
			}
			if got := tt.err.IsRateLimitError(); got != tt.rateLimit {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.rateLimit)
			}
			if got := tt.err.IsValidationError(); got != tt.validation {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.validation)
			}
		})
	}
}

func TestRESTClient_TrimsBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "//") {
			t.Errorf("path %q contains a double slash", r.URL.Path)
		}
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewRESTClient("test-token", server.URL+"/")
	if _, err := client.ListPullRequestFiles(context.Background(), "a", "b", 1, ListOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
