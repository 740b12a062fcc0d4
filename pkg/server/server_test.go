package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddsmith/scoresim/internal/config"
	"github.com/oddsmith/scoresim/pkg/store"
)

func testServer(t *testing.T, withStore bool) *Server {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DefaultSimulations = 25

	var st *store.Store
	if withStore {
		var err error
		st, err = store.Open(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		t.Cleanup(func() { st.Close() })
	}

	return New(cfg, st)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestSimulateEndpoint(t *testing.T) {
	s := testServer(t, false)

	seed := int64(42)
	rec := doJSON(t, s, http.MethodPost, "/simulate", map[string]any{
		"rateA": 1.8, "rateB": 1.2, "count": 50, "seed": seed,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp simulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Outcomes, 50)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 50, resp.Summary.Total)
	assert.Equal(t, resp.Summary.Total,
		resp.Summary.WinsA+resp.Summary.Draws+resp.Summary.WinsB)
}

func TestSimulateDefaultsCount(t *testing.T) {
	s := testServer(t, false)

	rec := doJSON(t, s, http.MethodPost, "/simulate", map[string]any{
		"rateA": 1.0, "rateB": 1.0,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp simulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Outcomes, 25)
}

func TestSimulateRejectsBadRate(t *testing.T) {
	s := testServer(t, false)

	rec := doJSON(t, s, http.MethodPost, "/simulate", map[string]any{
		"rateA": -1.0, "rateB": 1.0, "count": 10,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "rateA")
}

func TestSimulatePersistsRuns(t *testing.T) {
	s := testServer(t, true)

	rec := doJSON(t, s, http.MethodPost, "/simulate", map[string]any{
		"rateA": 1.5, "rateB": 0.9, "count": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/runs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var runs []*store.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, 1.5, runs[0].RateA)
	assert.Equal(t, 10, runs[0].Count)
}

func TestRunsWithoutStore(t *testing.T) {
	s := testServer(t, false)

	rec := doJSON(t, s, http.MethodGet, "/runs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHealthz(t *testing.T) {
	s := testServer(t, false)

	rec := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
