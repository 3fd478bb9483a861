// Package client drives the search API across pages. A Session holds
// one immutable State value that is replaced wholesale after each
// successful response; a failed fetch leaves the state untouched.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
)

const headerAccessToken = "x-access-token"

const defaultPageSize = 10

// State is one snapshot of a search session. Slices are owned by the
// session; treat them as read-only.
type State struct {
	Query      string
	Skip       int
	HasMore    bool
	ActiveUser string
	Users      []docstore.ScoredUser
	Drops      []docstore.DropView
	TopTags    []string
}

type Session struct {
	baseURL    string
	token      string
	pageSize   int
	httpClient *http.Client
	state      State
}

type searchEnvelope struct {
	Status          string                `json:"status"`
	Message         string                `json:"message"`
	ActiveUser      string                `json:"activeUser"`
	Users           []docstore.ScoredUser `json:"users"`
	Drops           []docstore.DropView   `json:"tweets"`
	Recommendations struct {
		TopTags []string `json:"topTags"`
	} `json:"recommendations"`
}

type Option func(*Session)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *Session) {
		s.httpClient = httpClient
	}
}

func NewSession(baseURL, token string, opts ...Option) *Session {
	session := &Session{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		pageSize:   defaultPageSize,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(session)
	}
	return session
}

// State returns the current session snapshot.
func (s *Session) State() State {
	return s.state
}

// Search starts a fresh session for query: first page at skip 0,
// previous results discarded. Recommended tags from a previous
// response are kept when the new response carries none, so that an
// empty result can still offer suggestions.
func (s *Session) Search(ctx context.Context, query string) (State, error) {
	if strings.TrimSpace(query) == "" {
		return s.state, fmt.Errorf("empty search query")
	}

	envelope, err := s.fetch(ctx, query, 0)
	if err != nil {
		return s.state, err
	}

	topTags := envelope.Recommendations.TopTags
	if len(topTags) == 0 {
		topTags = s.state.TopTags
	}

	s.state = State{
		Query:      query,
		Skip:       s.pageSize,
		HasMore:    len(envelope.Drops) == s.pageSize,
		ActiveUser: envelope.ActiveUser,
		Users:      envelope.Users,
		Drops:      envelope.Drops,
		TopTags:    topTags,
	}
	return s.state, nil
}

// LoadMore fetches the next page for the current query and appends its
// drops, dropping any whose ID is already present. The has-more flag
// is the page-full heuristic: a page of exactly pageSize items is
// assumed to have more after it, which misreads a total that is an
// exact multiple of the page size. Known approximation.
func (s *Session) LoadMore(ctx context.Context) (State, error) {
	if s.state.Query == "" {
		return s.state, fmt.Errorf("no active search")
	}

	envelope, err := s.fetch(ctx, s.state.Query, s.state.Skip)
	if err != nil {
		return s.state, err
	}

	topTags := envelope.Recommendations.TopTags
	if len(topTags) == 0 {
		topTags = s.state.TopTags
	}

	s.state = State{
		Query:      s.state.Query,
		Skip:       s.state.Skip + s.pageSize,
		HasMore:    len(envelope.Drops) == s.pageSize,
		ActiveUser: envelope.ActiveUser,
		Users:      s.state.Users,
		Drops:      appendNewDrops(s.state.Drops, envelope.Drops),
		TopTags:    topTags,
	}
	return s.state, nil
}

// Suggestions returns the recommended tags when the current query
// matched nothing; searching one of them is just Search(ctx, tag).
func (s *Session) Suggestions() []string {
	if s.state.Query == "" {
		return nil
	}
	if len(s.state.Users) > 0 || len(s.state.Drops) > 0 {
		return nil
	}
	return s.state.TopTags
}

func (s *Session) fetch(ctx context.Context, query string, skip int) (*searchEnvelope, error) {
	endpoint := fmt.Sprintf("%s/api/search/%s?skip=%d&limit=%d",
		s.baseURL, url.PathEscape(query), skip, s.pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set(headerAccessToken, s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	var envelope searchEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if envelope.Status != "ok" {
		if envelope.Message != "" {
			return nil, fmt.Errorf("search failed: %s", envelope.Message)
		}
		return nil, fmt.Errorf("search failed with HTTP status %d", resp.StatusCode)
	}

	return &envelope, nil
}

// appendNewDrops appends page items whose identity is not already in
// accumulated. This is the only defense against overlapping pages from
// out-of-order or repeated fetches.
func appendNewDrops(accumulated, page []docstore.DropView) []docstore.DropView {
	seen := make(map[string]struct{}, len(accumulated))
	for _, drop := range accumulated {
		seen[drop.ID] = struct{}{}
	}

	merged := accumulated
	for _, drop := range page {
		if _, ok := seen[drop.ID]; ok {
			continue
		}
		merged = append(merged, drop)
	}
	return merged
}
