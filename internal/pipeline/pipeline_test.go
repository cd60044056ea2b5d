package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parcon/apple-music-library-scripts/internal/library"
	"github.com/parcon/apple-music-library-scripts/internal/store"
)

const testLibraryXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Tracks</key>
	<dict>
		<key>1</key>
		<dict>
			<key>Album</key><string>AlbumA</string>
			<key>Artist</key><string>ArtistX</string>
			<key>Year</key><integer>2010</integer>
			<key>Play Count</key><integer>5</integer>
		</dict>
		<key>2</key>
		<dict>
			<key>Album</key><string>AlbumA</string>
			<key>Artist</key><string>ArtistX</string>
			<key>Year</key><integer>2010</integer>
			<key>Play Count</key><integer>7</integer>
		</dict>
		<key>3</key>
		<dict>
			<key>Album</key><string>AlbumB</string>
			<key>Artist</key><string>ArtistY</string>
			<key>Year</key><integer>2012</integer>
			<key>Play Count</key><integer>3</integer>
		</dict>
	</dict>
</dict>
</plist>
`

func setupRunTest(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := store.InitDB(filepath.Join(dir, "runs.db")); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	libPath := filepath.Join(dir, "Library.xml")
	if err := os.WriteFile(libPath, []byte(testLibraryXML), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return libPath
}

func TestRunBuildsSnapshot(t *testing.T) {
	libPath := setupRunTest(t)

	snap, err := Run(context.Background(), "run-ok", Spec{LibraryPath: libPath, Year: 2026})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(snap.Tracks) != 3 {
		t.Errorf("Expected 3 tracks, got %d", len(snap.Tracks))
	}
	if len(snap.YearCounts) != 2 {
		t.Errorf("Expected 2 year buckets, got %d", len(snap.YearCounts))
	}
	if len(snap.AlbumPlays) != 2 {
		t.Fatalf("Expected 2 ranked albums, got %d", len(snap.AlbumPlays))
	}
	if snap.AlbumPlays[0].Album != "AlbumA" || snap.AlbumPlays[0].TotalPlays != 12 {
		t.Errorf("Expected AlbumA with 12 plays on top, got %+v", snap.AlbumPlays[0])
	}
	if len(snap.TopAlbums) != 24 {
		t.Errorf("Expected 12 months x 2 albums rows, got %d", len(snap.TopAlbums))
	}
	if snap.Year != 2026 {
		t.Errorf("Expected reference year 2026, got %d", snap.Year)
	}

	run, err := store.GetRun("run-ok")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if run["status"] != "completed" {
		t.Errorf("Expected completed run, got %v", run["status"])
	}
	if run["trackCount"] != 3 || run["albumCount"] != 2 {
		t.Errorf("Unexpected run counts: %v / %v", run["trackCount"], run["albumCount"])
	}
}

func TestRunExportsWhenConfigured(t *testing.T) {
	libPath := setupRunTest(t)
	exportDir := t.TempDir()

	_, err := Run(context.Background(), "run-export", Spec{
		LibraryPath: libPath,
		ExportDir:   exportDir,
		Year:        2026,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{yearsCSVName, topAlbumsCSVName, summaryJSONName} {
		path := filepath.Join(exportDir, "run-export", name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected export file %s: %v", path, err)
		}
	}
}

func TestRunFailsOnMissingLibrary(t *testing.T) {
	setupRunTest(t)

	_, err := Run(context.Background(), "run-missing", Spec{LibraryPath: "/nonexistent/Library.xml"})
	if !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	run, getErr := store.GetRun("run-missing")
	if getErr != nil {
		t.Fatalf("GetRun failed: %v", getErr)
	}
	if run["status"] != "failed" {
		t.Errorf("Expected failed run, got %v", run["status"])
	}

	errs, getErr := store.GetRunErrors("run-missing")
	if getErr != nil {
		t.Fatalf("GetRunErrors failed: %v", getErr)
	}
	if len(errs) != 1 {
		t.Errorf("Expected 1 recorded error, got %d", len(errs))
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	libPath := setupRunTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, "run-cancelled", Spec{LibraryPath: libPath})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}
