package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/parcon/apple-music-library-scripts/internal/library"
	"github.com/parcon/apple-music-library-scripts/internal/model"
	"github.com/parcon/apple-music-library-scripts/internal/stats"
	"github.com/parcon/apple-music-library-scripts/internal/store"
)

// TopAlbumLimit is how many albums the ranked table shows per month.
const TopAlbumLimit = 5

// Spec configures one run of the extract -> aggregate -> export pass.
type Spec struct {
	LibraryPath string
	ExportDir   string // empty disables the export stage
	Year        int    // reference year for the monthly table
}

// Run executes the whole pass for one invocation: parse the library
// export, build both aggregates, optionally export them, and record
// run/stage progress in the store. The stages run strictly in order:
// the input is one local file, so there is nothing to overlap.
func Run(ctx context.Context, runID string, spec Spec) (snap *model.Snapshot, err error) {
	start := time.Now()
	fmt.Printf("🚀 Starting run %s for library: %s\n", runID, spec.LibraryPath)

	if err := store.SaveRun(runID, spec.LibraryPath); err != nil {
		return nil, fmt.Errorf("failed to save run: %w", err)
	}
	defer func() {
		if err != nil {
			store.UpdateRunStatus(runID, "failed")
			store.SaveRunError(runID, err)
		}
	}()

	// --- EXTRACTION STAGE ---
	stageStart := time.Now()
	store.UpdateRunStatus(runID, "parsing")
	store.SaveStageProgress(runID, "extraction", "started", &stageStart, nil, 0)

	tracks, err := library.Parse(spec.LibraryPath)
	if err != nil {
		stageEnd := time.Now()
		store.SaveStageProgress(runID, "extraction", "failed", &stageStart, &stageEnd, 0)
		return nil, err
	}

	stageEnd := time.Now()
	store.SaveStageProgress(runID, "extraction", "completed", &stageStart, &stageEnd, len(tracks))
	fmt.Printf("📄 Extraction complete: %d track records from %s\n", len(tracks), spec.LibraryPath)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// --- AGGREGATION STAGE ---
	stageStart = time.Now()
	store.UpdateRunStatus(runID, "aggregating")
	store.SaveStageProgress(runID, "aggregation", "started", &stageStart, nil, 0)

	yearCounts := stats.AlbumsPerYear(tracks)
	ranked := stats.TopAlbums(tracks, TopAlbumLimit)
	topRows := stats.MonthlyTopAlbums(ranked)

	stageEnd = time.Now()
	store.SaveStageProgress(runID, "aggregation", "completed", &stageStart, &stageEnd, len(yearCounts)+len(ranked))
	fmt.Printf("📊 Aggregation Summary: %d release years, %d ranked albums\n", len(yearCounts), len(ranked))

	snap = &model.Snapshot{
		LibraryPath: spec.LibraryPath,
		ParsedAt:    start,
		Year:        spec.Year,
		Tracks:      tracks,
		YearCounts:  yearCounts,
		AlbumPlays:  ranked,
		TopAlbums:   topRows,
	}

	// --- EXPORT STAGE (optional) ---
	if spec.ExportDir != "" {
		stageStart = time.Now()
		store.UpdateRunStatus(runID, "exporting")
		store.SaveStageProgress(runID, "export", "started", &stageStart, nil, 0)

		paths, err := ExportAggregates(runID, snap, spec.ExportDir)
		stageEnd = time.Now()
		if err != nil {
			store.SaveStageProgress(runID, "export", "failed", &stageStart, &stageEnd, 0)
			return nil, fmt.Errorf("export failed: %w", err)
		}
		store.SaveStageProgress(runID, "export", "completed", &stageStart, &stageEnd, len(paths))
		for _, p := range paths {
			fmt.Printf("💾 Exported: %s\n", p)
		}
	}

	store.SetRunCounts(runID, len(tracks), len(ranked))
	store.UpdateRunStatus(runID, "completed")
	fmt.Printf("🏁 Run %s completed in %v\n", runID, time.Since(start))
	return snap, nil
}
