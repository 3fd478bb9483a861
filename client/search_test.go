package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
)

// fakeSearchServer pages a fixed drop list through the search
// endpoint, recording the requests it sees.
type fakeSearchServer struct {
	drops    []docstore.DropView
	users    []docstore.ScoredUser
	topTags  []string
	requests []string
}

func (f *fakeSearchServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r.URL.String())

		if r.Header.Get("x-access-token") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"status": "error", "message": "Invalid or missing access token."})
			return
		}

		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		page := f.drops
		if skip < len(page) {
			page = page[skip:]
		} else {
			page = nil
		}
		if limit < len(page) {
			page = page[:limit]
		}

		json.NewEncoder(w).Encode(map[string]any{
			"status":     "ok",
			"activeUser": "clara",
			"users":      f.users,
			"tweets":     page,
			"recommendations": map[string]any{
				"topTags": f.topTags,
			},
		})
	}
}

func makeDrops(count int) []docstore.DropView {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	drops := make([]docstore.DropView, 0, count)
	for i := count; i >= 1; i-- {
		drops = append(drops, docstore.DropView{
			ID:        fmt.Sprintf("drop-%02d", i),
			Body:      fmt.Sprintf("algo thought %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return drops
}

func TestSearchAndLoadMore(t *testing.T) {
	assert := require.New(t)

	fake := &fakeSearchServer{drops: makeDrops(12), topTags: []string{"ml"}}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	session := NewSession(server.URL, "token123")

	state, err := session.Search(context.Background(), "algo")
	assert.NoError(err)
	assert.Len(state.Drops, 10)
	assert.True(state.HasMore, "a full page means more may exist")
	assert.Equal(10, state.Skip)
	assert.Equal("clara", state.ActiveUser)
	assert.Equal([]string{"ml"}, state.TopTags)

	state, err = session.LoadMore(context.Background())
	assert.NoError(err)
	assert.Len(state.Drops, 12, "remaining two drops appended")
	assert.False(state.HasMore, "a short page is treated as the last one")
	assert.Equal(20, state.Skip)

	assert.Len(fake.requests, 2)
	assert.Contains(fake.requests[0], "/api/search/algo?skip=0&limit=10")
	assert.Contains(fake.requests[1], "skip=10")
}

func TestLoadMoreFiltersDuplicates(t *testing.T) {
	assert := require.New(t)

	fake := &fakeSearchServer{drops: makeDrops(12)}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	session := NewSession(server.URL, "token123")

	_, err := session.Search(context.Background(), "algo")
	assert.NoError(err)

	// A new drop arrives at the top between pages, shifting the
	// window so the second page overlaps the first.
	shifted := append([]docstore.DropView{{ID: "drop-13", Body: "fresh algo"}}, fake.drops...)
	fake.drops = shifted

	state, err := session.LoadMore(context.Background())
	assert.NoError(err)

	seen := map[string]int{}
	for _, drop := range state.Drops {
		seen[drop.ID]++
		assert.Equal(1, seen[drop.ID], "drop %s appended twice", drop.ID)
	}
	assert.Len(state.Drops, 12, "10 from page one, 2 new from the overlapping page")
}

func TestEmptyResultOffersSuggestions(t *testing.T) {
	assert := require.New(t)

	fake := &fakeSearchServer{drops: makeDrops(3), topTags: []string{"ml", "robotics"}}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	session := NewSession(server.URL, "token123")

	_, err := session.Search(context.Background(), "algo")
	assert.NoError(err)
	assert.Nil(session.Suggestions(), "suggestions only appear for empty results")

	// The next query matches nothing; the previous response's tags
	// become the suggestions.
	fake.drops = nil
	fake.topTags = nil

	state, err := session.Search(context.Background(), "zzz")
	assert.NoError(err)
	assert.Empty(state.Drops)
	assert.Equal([]string{"ml", "robotics"}, session.Suggestions())

	// Clicking a suggestion is just a fresh search with the tag.
	fake.drops = makeDrops(2)
	state, err = session.Search(context.Background(), "ml")
	assert.NoError(err)
	assert.Len(state.Drops, 2)
	assert.Nil(session.Suggestions())
}

func TestFailedFetchLeavesStateUntouched(t *testing.T) {
	assert := require.New(t)

	fake := &fakeSearchServer{drops: makeDrops(12)}
	server := httptest.NewServer(fake.handler())
	defer server.Close()

	session := NewSession(server.URL, "token123")
	before, err := session.Search(context.Background(), "algo")
	assert.NoError(err)

	session.token = ""
	_, err = session.LoadMore(context.Background())
	assert.Error(err)
	assert.Contains(err.Error(), "access token")
	assert.Equal(before, session.State(), "a failed fetch must not advance the session")

	_, err = session.Search(context.Background(), "   ")
	assert.Error(err, "blank queries are rejected before any request")
	assert.Equal(before, session.State())
}

func TestLoadMoreWithoutSearch(t *testing.T) {
	assert := require.New(t)

	session := NewSession("http://127.0.0.1:0", "token123")
	_, err := session.LoadMore(context.Background())
	assert.Error(err)
}
