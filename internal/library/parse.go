package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/parcon/apple-music-library-scripts/internal/model"

	"howett.net/plist"
)

// The two fatal error classes of an extraction pass. Anything the
// operator sees wraps one of these.
var (
	ErrNotFound  = errors.New("library file not found")
	ErrMalformed = errors.New("malformed library file")
)

// unknownArtist is substituted when a track carries no artist field.
const unknownArtist = "Unknown Artist"

// libraryExport mirrors the top level of the plist export: a dict with
// a "Tracks" dict keyed by track ID. Everything else is ignored.
type libraryExport struct {
	Tracks map[string]rawTrack `plist:"Tracks"`
}

// rawTrack picks the four fields this tool cares about out of a track
// dict. Absent keys decode to zero values, which is exactly the
// tolerant behavior we want.
type rawTrack struct {
	Album       string    `plist:"Album"`
	Artist      string    `plist:"Artist"`
	Year        int       `plist:"Year"`
	PlayCount   int       `plist:"Play Count"`
	ReleaseDate time.Time `plist:"Release Date"`
}

// Parse reads the library export at path and returns one flat track
// record per track that names an album. Missing optional fields default
// (artist -> "Unknown Artist", play count -> 0, year -> 0) rather than
// failing the pass.
func Parse(path string) ([]model.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}

	var export libraryExport
	if _, err := plist.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// A plist without a Tracks dictionary is not a library export.
	if export.Tracks == nil {
		return nil, fmt.Errorf("%w: no Tracks dictionary", ErrMalformed)
	}

	tracks := make([]model.Track, 0, len(export.Tracks))
	skipped := 0
	for _, raw := range export.Tracks {
		// A track with no album title cannot land in either view.
		if raw.Album == "" {
			skipped++
			continue
		}
		tracks = append(tracks, model.Track{
			Album:     raw.Album,
			Artist:    artistOrDefault(raw.Artist),
			Year:      yearOf(raw),
			PlayCount: playCountOf(raw),
		})
	}

	if skipped > 0 {
		fmt.Printf("📄 Extraction: skipped %d tracks without an album title\n", skipped)
	}
	return tracks, nil
}

func artistOrDefault(artist string) string {
	if artist == "" {
		return unknownArtist
	}
	return artist
}

// yearOf prefers the export's integer Year key and falls back to the
// release date. Tracks with neither get 0 and stay out of the year chart.
func yearOf(raw rawTrack) int {
	if raw.Year != 0 {
		return raw.Year
	}
	if !raw.ReleaseDate.IsZero() {
		return raw.ReleaseDate.Year()
	}
	return 0
}

func playCountOf(raw rawTrack) int {
	if raw.PlayCount < 0 {
		return 0
	}
	return raw.PlayCount
}
