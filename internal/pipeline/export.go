package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/parcon/apple-music-library-scripts/internal/model"
	"github.com/parcon/apple-music-library-scripts/pkg/utils"
)

// Export file names inside a run's output directory.
const (
	yearsCSVName     = "albums_by_year.csv"
	topAlbumsCSVName = "top_albums.csv"
	summaryJSONName  = "summary.json"
)

// ExportAggregates writes both aggregates as CSV plus a combined JSON
// summary into a per-run directory under baseDir, and returns the paths
// written.
func ExportAggregates(runID string, snap *model.Snapshot, baseDir string) ([]string, error) {
	om := utils.NewOutputManager(baseDir)

	yearsPath, err := om.OutputFilePath(runID, yearsCSVName)
	if err != nil {
		return nil, err
	}
	if err := exportYearCountsCSV(yearsPath, snap.YearCounts); err != nil {
		return nil, err
	}

	topPath, err := om.OutputFilePath(runID, topAlbumsCSVName)
	if err != nil {
		return nil, err
	}
	if err := exportTopAlbumsCSV(topPath, snap.TopAlbums); err != nil {
		return nil, err
	}

	summaryPath, err := om.OutputFilePath(runID, summaryJSONName)
	if err != nil {
		return nil, err
	}
	if err := exportSummaryJSON(summaryPath, runID, snap); err != nil {
		return nil, err
	}

	return []string{yearsPath, topPath, summaryPath}, nil
}

func exportYearCountsCSV(path string, counts []model.YearCount) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"year", "album_count"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range counts {
		row := []string{strconv.Itoa(c.Year), strconv.Itoa(c.AlbumCount)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func exportTopAlbumsCSV(path string, rows []model.TopAlbumRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"month", "rank", "artist", "album", "total_plays"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		row := []string{r.Month, strconv.Itoa(r.Rank), r.Artist, r.Album, strconv.Itoa(r.TotalPlays)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func exportSummaryJSON(path, runID string, snap *model.Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	summary := map[string]interface{}{
		"export_info": map[string]interface{}{
			"run_id":       runID,
			"exported_at":  time.Now().UTC(),
			"library_path": snap.LibraryPath,
			"track_count":  len(snap.Tracks),
			"year":         snap.Year,
		},
		"albums_by_year": snap.YearCounts,
		"top_albums":     snap.AlbumPlays,
	}

	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
