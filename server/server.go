// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the geohash codec and the stored cells over HTTP.
package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/netwatch/geopoints/geohash"
	"github.com/netwatch/geopoints/points"
	"github.com/netwatch/geopoints/spatial"
	"github.com/netwatch/geopoints/store"
)

const (
	defaultPrecision = 6
	maxPrecision     = 12
	defaultCellLimit = 1000
)

type Server struct {
	repo store.SampleRepository
}

func NewServer(repo store.SampleRepository) *Server {
	return &Server{repo: repo}
}

// Register mounts the API on r.
func (s *Server) Register(r gin.IRoutes) {
	r.GET("/healthz", s.healthz)
	r.GET("/readyz", s.readyz)
	r.GET("/api/encode", s.encode)
	r.GET("/api/geohash/:hash", s.decode)
	r.GET("/api/cells", s.listCells)
	r.GET("/api/stats", s.stats)
}

func (s *Server) Run(addr string) error {
	r := gin.Default()
	s.Register(r)

	log.Printf("Listening on http://%s", addr)

	return r.Run(addr)
}

type cellResponse struct {
	Geohash string              `json:"geohash"`
	BBox    geohash.BoundingBox `json:"bbox"`
	Center  spatial.Point       `json:"center"`
}

func newCellResponse(hash string, box geohash.BoundingBox) cellResponse {
	lat, lng := box.Center()

	return cellResponse{Geohash: hash, BBox: box, Center: spatial.Point{Lat: lat, Lng: lng}}
}

func (s *Server) healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyz answers 503 until the store can be queried.
func (s *Server) readyz(ctx *gin.Context) {
	ctx.Header("Cache-Control", "no-store")

	if _, err := s.repo.CountSamples(); err != nil {
		log.Printf("readyz: %v", err)
		ctx.String(http.StatusServiceUnavailable, "store not ready")

		return
	}

	ctx.String(http.StatusOK, "ready")
}

func (s *Server) encode(ctx *gin.Context) {
	lat, errLat := strconv.ParseFloat(ctx.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(ctx.Query("lon"), 64)

	if err := errors.Join(errLat, errLng); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters must be numbers"})

		return
	}

	p := spatial.Point{Lat: lat, Lng: lng}
	if !p.InDomain() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "lat must be in [-90, 90] and lon in [-180, 180]"})

		return
	}

	precision := defaultPrecision

	if v := ctx.Query("precision"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPrecision {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "precision must be an integer in [1, 12]"})

			return
		}

		precision = n
	}

	hash := p.Geohash(precision)

	box, err := geohash.DecodeBBox(hash)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, newCellResponse(hash, box))
}

func (s *Server) decode(ctx *gin.Context) {
	hash := ctx.Param("hash")

	box, err := geohash.DecodeBBox(hash)
	if err != nil {
		var charErr *geohash.InvalidCharacterError
		if errors.As(err, &charErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"character": string(charErr.Char),
				"position":  charErr.Pos,
			})

			return
		}

		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	ctx.JSON(http.StatusOK, newCellResponse(hash, box))
}

func (s *Server) listCells(ctx *gin.Context) {
	limit := defaultCellLimit

	if v := ctx.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})

			return
		}

		limit = n
	}

	cells, err := s.repo.ListCells(store.CellFilter{
		Region: ctx.Query("region"),
		RunID:  ctx.Query("run"),
		Limit:  limit,
	})
	if err != nil {
		log.Printf("listing cells: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list cells"})

		return
	}

	ctx.JSON(http.StatusOK, points.CellCollection(cells))
}

func (s *Server) stats(ctx *gin.Context) {
	count, err := s.repo.CountSamples()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count samples"})

		return
	}

	runs, err := s.repo.ListRuns()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"samples": count, "runs": runs})
}
