package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourlab/tourlab/compare"
	"github.com/tourlab/tourlab/scores"
	"github.com/tourlab/tourlab/server"
	"github.com/tourlab/tourlab/solve"
)

const squareBody = `{"cities": [[0,0],[0,10],[10,10],[10,0]]}`

// newTestServer spins up the API over an in-memory score store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := scores.Open(":memory:")
	require.NoError(t, err)

	srv := server.New(compare.NewEngine(solve.DefaultOptions(), nil), store, nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return ts
}

// decodeJSON decodes a response body or fails the test.
func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// TestCompare_Square posts the square fixture and checks all three solvers
// report the 40-length perimeter.
func TestCompare_Square(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/compare", "application/json", strings.NewReader(squareBody))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Entries []struct {
			Algorithm string   `json:"algorithm"`
			Tour      []int    `json:"tour"`
			Length    float64  `json:"length"`
			Gap       *float64 `json:"gap"`
			Error     string   `json:"error"`
		} `json:"entries"`
	}
	decodeJSON(t, resp, &out)

	require.Len(t, out.Entries, 3)
	for _, e := range out.Entries {
		assert.Empty(t, e.Error)
		assert.InDelta(t, 40.0, e.Length, 1e-9)
		assert.Len(t, e.Tour, 4)
		require.NotNil(t, e.Gap)
		assert.InDelta(t, 0.0, *e.Gap, 1e-9)
	}
}

// TestCompare_Selection verifies the algorithm filter and failure entries
// inside a 200 response.
func TestCompare_Selection(t *testing.T) {
	ts := newTestServer(t)

	body := `{"cities": [[0,0],[0,10],[10,10],[10,0]], "algorithms": ["nearest-neighbor"]}`
	resp, err := http.Post(ts.URL+"/compare", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Entries []struct {
			Algorithm string `json:"algorithm"`
		} `json:"entries"`
	}
	decodeJSON(t, resp, &out)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "nearest-neighbor", out.Entries[0].Algorithm)
}

// TestCompare_BadRequests covers malformed JSON, unknown algorithm tags
// and non-finite coordinates.
func TestCompare_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	cases := []string{
		`{not json`,
		`{"cities": [[0,0]], "algorithms": ["genetic"]}`,
	}
	for _, body := range cases {
		resp, err := http.Post(ts.URL+"/compare", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %q", body)
		resp.Body.Close()
	}
}

// TestCompare_EmptySetWithPlayer verifies the degenerate instance end to
// end: every solver succeeds with an empty route, the handler survives,
// and nothing is recorded (there is no tour to rank).
func TestCompare_EmptySetWithPlayer(t *testing.T) {
	ts := newTestServer(t)

	body := `{"cities": [], "player": "ada"}`
	resp, err := http.Post(ts.URL+"/compare", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Entries []struct {
			Tour   []int   `json:"tour"`
			Length float64 `json:"length"`
			Error  string  `json:"error"`
		} `json:"entries"`
	}
	decodeJSON(t, resp, &out)
	require.Len(t, out.Entries, 3)
	for _, e := range out.Entries {
		assert.Empty(t, e.Error)
		assert.Empty(t, e.Tour)
		assert.Zero(t, e.Length)
	}

	resp, err = http.Get(ts.URL + "/scores")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []scores.GameResult
	decodeJSON(t, resp, &rows)
	assert.Empty(t, rows, "an empty route must not become a high score")
}

// TestScores_RoundTrip records a score via /compare and reads it back.
func TestScores_RoundTrip(t *testing.T) {
	ts := newTestServer(t)

	body := `{"cities": [[0,0],[0,10],[10,10],[10,0]], "player": "ada"}`
	resp, err := http.Post(ts.URL+"/compare", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/scores?limit=5")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []scores.GameResult
	decodeJSON(t, resp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "ada", rows[0].PlayerName)
	assert.InDelta(t, 40.0, rows[0].RouteLength, 1e-9)
}

// TestScores_BadLimit verifies limit validation.
func TestScores_BadLimit(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/scores?limit=zero")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestScores_NoStore verifies the score routes disappear without a store.
func TestScores_NoStore(t *testing.T) {
	srv := server.New(compare.NewEngine(solve.DefaultOptions(), nil), nil, nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/scores")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestStats verifies the aggregate endpoint shape.
func TestStats(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/scores/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats []scores.AlgorithmStat
	decodeJSON(t, resp, &stats)
	assert.Empty(t, stats, "fresh store has no aggregates")
}
