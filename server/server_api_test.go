// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/netwatch/geopoints/geohash"
	"github.com/netwatch/geopoints/sampling"
	"github.com/netwatch/geopoints/store"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepository fails every query.
type failingRepository struct{}

var errBroken = errors.New("broken")

func (failingRepository) CreateSchema() error                          { return errBroken }
func (failingRepository) SaveRun(_ string, _ []*sampling.Sample) error { return errBroken }
func (failingRepository) CountSamples() (int, error)                   { return 0, errBroken }
func (failingRepository) ListRuns() ([]*store.Run, error)              { return nil, errBroken }
func (failingRepository) ListCells(_ store.CellFilter) ([]*store.Cell, error) {
	return nil, errBroken
}

func setupServerTest(t *testing.T, repo store.SampleRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	NewServer(repo).Register(router)

	return router
}

func setupSeededRepo(t *testing.T) (*sql.DB, store.SampleRepository, string) {
	db, err := sql.Open("duckdb", "")
	require.NoError(t, err)

	repo := store.NewSampleRepository(db)
	require.NoError(t, repo.CreateSchema())

	opts := sampling.DefaultOptions()
	opts.Count = 300

	g, err := sampling.NewGenerator(opts)
	require.NoError(t, err)

	var samples []*sampling.Sample

	require.NoError(t, g.Generate(func(s *sampling.Sample) error {
		samples = append(samples, s)

		return nil
	}))

	runID := store.NewRunID()
	require.NoError(t, repo.SaveRun(runID, samples))

	return db, repo, runID
}

func get(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestEncodeAPI(t *testing.T) {
	router := setupServerTest(t, failingRepository{})

	w := get(t, router, "/api/encode?lat=57.64911&lon=10.40744")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp cellResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u4pruy", resp.Geohash)
	assert.True(t, resp.BBox.Contains(57.64911, 10.40744))
	assert.InDelta(t, 57.649, resp.Center.Lat, 0.005)

	w = get(t, router, "/api/encode?lat=0&lon=0&precision=1")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s", resp.Geohash)

	for _, url := range []string{
		"/api/encode?lat=abc&lon=0",
		"/api/encode?lat=0",
		"/api/encode?lat=91&lon=0",
		"/api/encode?lat=0&lon=-181",
		"/api/encode?lat=0&lon=0&precision=0",
		"/api/encode?lat=0&lon=0&precision=13",
		"/api/encode?lat=0&lon=0&precision=x",
	} {
		t.Run(url, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, get(t, router, url).Code)
		})
	}
}

func TestDecodeAPI(t *testing.T) {
	router := setupServerTest(t, failingRepository{})

	w := get(t, router, "/api/geohash/ezs42")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp cellResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, geohash.BoundingBox{
		LatMin: 42.5830078125, LatMax: 42.626953125, LonMin: -5.625, LonMax: -5.5810546875,
	}, resp.BBox)
	assert.InDelta(t, 42.605, resp.Center.Lat, 0.001)
	assert.InDelta(t, -5.603, resp.Center.Lng, 0.001)

	w = get(t, router, "/api/geohash/ezs4a")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp struct {
		Error     string `json:"error"`
		Character string `json:"character"`
		Position  int    `json:"position"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "a", errResp.Character)
	assert.Equal(t, 4, errResp.Position)
}

func TestCellsAPI(t *testing.T) {
	db, repo, runID := setupSeededRepo(t)
	defer db.Close()

	router := setupServerTest(t, repo)

	w := get(t, router, "/api/cells?limit=10")
	assert.Equal(t, http.StatusOK, w.Code)

	fc, err := geojson.UnmarshalFeatureCollection(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 10)

	prev := fc.Features[0].Properties.MustFloat64("count")
	for _, f := range fc.Features {
		count := f.Properties.MustFloat64("count")
		assert.LessOrEqual(t, count, prev)
		prev = count
	}

	w = get(t, router, "/api/cells?region=US&run="+runID)
	assert.Equal(t, http.StatusOK, w.Code)

	fc, err = geojson.UnmarshalFeatureCollection(w.Body.Bytes())
	require.NoError(t, err)
	assert.NotEmpty(t, fc.Features)

	for _, f := range fc.Features {
		assert.Equal(t, "US", f.Properties.MustString("region"))
	}

	assert.Equal(t, http.StatusBadRequest, get(t, router, "/api/cells?limit=-1").Code)
}

func TestStatsAPI(t *testing.T) {
	db, repo, runID := setupSeededRepo(t)
	defer db.Close()

	router := setupServerTest(t, repo)

	w := get(t, router, "/api/stats")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Samples int          `json:"samples"`
		Runs    []*store.Run `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 300, resp.Samples)
	require.Len(t, resp.Runs, 1)
	assert.Equal(t, runID, resp.Runs[0].ID)
}

func TestRepositoryFailures(t *testing.T) {
	router := setupServerTest(t, failingRepository{})

	assert.Equal(t, http.StatusInternalServerError, get(t, router, "/api/cells").Code)
	assert.Equal(t, http.StatusInternalServerError, get(t, router, "/api/stats").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/healthz").Code)
}

func TestReadyz(t *testing.T) {
	w := get(t, setupServerTest(t, failingRepository{}), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "store not ready", w.Body.String())

	db, repo, _ := setupSeededRepo(t)
	defer db.Close()

	w = get(t, setupServerTest(t, repo), "/readyz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "ready", w.Body.String())
}
