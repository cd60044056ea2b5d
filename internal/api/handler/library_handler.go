package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/parcon/apple-music-library-scripts/internal/model"
	"github.com/parcon/apple-music-library-scripts/internal/store"
)

// The one snapshot this process serves. Set once before the router
// starts, read-only afterwards.
var snap *model.Snapshot

// SetSnapshot installs the parsed library snapshot the handlers serve.
func SetSnapshot(s *model.Snapshot) {
	snap = s
}

func respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// GetLibrarySummary returns headline numbers about the parsed library
// @Summary Library summary
// @Description Path, parse time and record counts of the served library snapshot
// @Tags library
// @Produce json
// @Success 200 {object} model.LibrarySummary "Snapshot summary"
// @Router /library [get]
func GetLibrarySummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, model.LibrarySummary{
		LibraryPath: snap.LibraryPath,
		ParsedAt:    snap.ParsedAt,
		Year:        snap.Year,
		TrackCount:  len(snap.Tracks),
		YearBuckets: len(snap.YearCounts),
		AlbumsShown: len(snap.AlbumPlays),
	})
}

// GetYearCounts returns the albums-by-year aggregate
// @Summary Albums by year
// @Description Distinct album titles per release year, ascending by year
// @Tags charts
// @Produce json
// @Success 200 {array} model.YearCount "Year buckets"
// @Router /charts/years [get]
func GetYearCounts(w http.ResponseWriter, r *http.Request) {
	counts := snap.YearCounts
	if counts == nil {
		counts = []model.YearCount{}
	}
	respondJSON(w, counts)
}

// GetTopAlbums returns the monthly top-albums table
// @Summary Top albums table
// @Description Top-5 most played albums replicated across the twelve months
// @Tags charts
// @Produce json
// @Success 200 {array} model.TopAlbumRow "Table rows"
// @Router /charts/top-albums [get]
func GetTopAlbums(w http.ResponseWriter, r *http.Request) {
	rows := snap.TopAlbums
	if rows == nil {
		rows = []model.TopAlbumRow{}
	}
	respondJSON(w, rows)
}

// ListRuns lists recorded runs
// @Summary List runs
// @Description All recorded parse/aggregate runs, newest first
// @Tags runs
// @Produce json
// @Success 200 {array} map[string]interface{} "Runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []map[string]interface{}{}
	}
	respondJSON(w, runs)
}

// GetRun returns one run with its stage history
// @Summary Get run
// @Description One run's status, counts and stage progress
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run details"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func GetRun(w http.ResponseWriter, r *http.Request) {
	runID := runIDFromPath(r.URL.Path, "")
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}
	respondJSON(w, run)
}

// GetRunErrors returns the errors recorded for a run
// @Summary Get run errors
// @Description Fatal errors recorded for one run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {array} map[string]interface{} "Errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/errors [get]
func GetRunErrors(w http.ResponseWriter, r *http.Request) {
	runID := runIDFromPath(r.URL.Path, "/errors")
	if runID == "" {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return
	}

	errs, err := store.GetRunErrors(runID)
	if err != nil {
		http.Error(w, "Failed to fetch run errors", http.StatusInternalServerError)
		return
	}
	if errs == nil {
		errs = []map[string]interface{}{}
	}
	respondJSON(w, errs)
}

// runIDFromPath pulls the run ID out of /api/v1/runs/{id}{suffix}.
func runIDFromPath(path, suffix string) string {
	const prefix = "/api/v1/runs/"
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return ""
	}
	return path[len(prefix) : len(path)-len(suffix)]
}
