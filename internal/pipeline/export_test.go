package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/parcon/apple-music-library-scripts/internal/model"
)

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		LibraryPath: "/tmp/Library.xml",
		ParsedAt:    time.Now(),
		Year:        2026,
		Tracks: []model.Track{
			{Album: "AlbumA", Artist: "ArtistX", Year: 2010, PlayCount: 12},
			{Album: "AlbumB", Artist: "ArtistY", Year: 2012, PlayCount: 3},
		},
		YearCounts: []model.YearCount{
			{Year: 2010, AlbumCount: 1},
			{Year: 2012, AlbumCount: 1},
		},
		AlbumPlays: []model.AlbumPlays{
			{Album: "AlbumA", Artist: "ArtistX", TotalPlays: 12},
			{Album: "AlbumB", Artist: "ArtistY", TotalPlays: 3},
		},
		TopAlbums: []model.TopAlbumRow{
			{Month: "January", Rank: 1, Artist: "ArtistX", Album: "AlbumA", TotalPlays: 12},
			{Month: "January", Rank: 2, Artist: "ArtistY", Album: "AlbumB", TotalPlays: 3},
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return records
}

func TestExportAggregates(t *testing.T) {
	baseDir := t.TempDir()
	snap := testSnapshot()

	paths, err := ExportAggregates("run-export", snap, baseDir)
	if err != nil {
		t.Fatalf("ExportAggregates failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("Expected 3 files, got %d: %v", len(paths), paths)
	}

	years := readCSV(t, paths[0])
	if len(years) != 3 {
		t.Fatalf("Expected header + 2 year rows, got %d rows", len(years))
	}
	if years[0][0] != "year" || years[0][1] != "album_count" {
		t.Errorf("Unexpected year CSV header: %v", years[0])
	}
	if years[1][0] != "2010" || years[1][1] != "1" {
		t.Errorf("Unexpected first year row: %v", years[1])
	}

	top := readCSV(t, paths[1])
	if len(top) != 3 {
		t.Fatalf("Expected header + 2 table rows, got %d rows", len(top))
	}
	if top[1][0] != "January" || top[1][1] != "1" || top[1][3] != "AlbumA" {
		t.Errorf("Unexpected first table row: %v", top[1])
	}
}

func TestExportSummaryJSON(t *testing.T) {
	baseDir := t.TempDir()
	snap := testSnapshot()

	paths, err := ExportAggregates("run-summary", snap, baseDir)
	if err != nil {
		t.Fatalf("ExportAggregates failed: %v", err)
	}

	data, err := os.ReadFile(paths[2])
	if err != nil {
		t.Fatalf("Failed to read summary: %v", err)
	}

	var summary struct {
		ExportInfo struct {
			RunID       string `json:"run_id"`
			LibraryPath string `json:"library_path"`
			TrackCount  int    `json:"track_count"`
			Year        int    `json:"year"`
		} `json:"export_info"`
		AlbumsByYear []model.YearCount  `json:"albums_by_year"`
		TopAlbums    []model.AlbumPlays `json:"top_albums"`
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("Summary is not valid JSON: %v", err)
	}

	if summary.ExportInfo.RunID != "run-summary" {
		t.Errorf("Unexpected run ID: %q", summary.ExportInfo.RunID)
	}
	if summary.ExportInfo.TrackCount != 2 || summary.ExportInfo.Year != 2026 {
		t.Errorf("Unexpected export info: %+v", summary.ExportInfo)
	}
	if len(summary.AlbumsByYear) != 2 || len(summary.TopAlbums) != 2 {
		t.Errorf("Unexpected aggregate sizes: %d years, %d albums",
			len(summary.AlbumsByYear), len(summary.TopAlbums))
	}
}
