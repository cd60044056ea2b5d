package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/parcon/apple-music-library-scripts/docs"
	"github.com/parcon/apple-music-library-scripts/internal/api/handler"
	"github.com/parcon/apple-music-library-scripts/internal/model"
	"github.com/parcon/apple-music-library-scripts/pkg/router"
)

// RegisterRoutes wires the dashboard page, the JSON API and the swagger
// UI onto the router, serving the given snapshot.
func RegisterRoutes(r *router.Router, snap *model.Snapshot) {
	handler.SetSnapshot(snap)

	r.GET("/", handler.Dashboard)
	r.GET("/api/v1/library", handler.GetLibrarySummary)
	r.GET("/api/v1/charts/years", handler.GetYearCounts)
	r.GET("/api/v1/charts/top-albums", handler.GetTopAlbums)
	r.GET("/api/v1/runs", handler.ListRuns)
	// More specific routes first
	r.GET("/api/v1/runs/*/errors", handler.GetRunErrors)
	r.GET("/api/v1/runs/*", handler.GetRun)
	r.GET("/swagger/*", func(w http.ResponseWriter, req *http.Request) {
		httpSwagger.WrapHandler(w, req)
	})
}
