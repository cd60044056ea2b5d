package model

import "time"

// Track is a single flat record extracted from the library export.
// One entry per track; immutable after extraction.
type Track struct {
	Album     string `json:"album"`
	Artist    string `json:"artist"`
	Year      int    `json:"year"` // 0 when the export carries no release year
	PlayCount int    `json:"play_count"`
}

// YearCount is one bar of the albums-by-year chart: the number of
// distinct album titles released in Year.
type YearCount struct {
	Year       int `json:"year"`
	AlbumCount int `json:"album_count"`
}

// AlbumPlays is the summed play count of every track sharing an
// album+artist pair.
type AlbumPlays struct {
	Album      string `json:"album"`
	Artist     string `json:"artist"`
	TotalPlays int    `json:"total_plays"`
}

// TopAlbumRow is one row of the monthly top-albums table.
type TopAlbumRow struct {
	Month      string `json:"month"`
	Rank       int    `json:"rank"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	TotalPlays int    `json:"total_plays"`
}

// Snapshot holds everything derived from one parse of the library file.
// It is computed once at startup and read-only while serving.
type Snapshot struct {
	LibraryPath string
	ParsedAt    time.Time
	Year        int // reference year for the monthly table
	Tracks      []Track
	YearCounts  []YearCount
	AlbumPlays  []AlbumPlays
	TopAlbums   []TopAlbumRow
}

// LibrarySummary is the JSON shape of GET /api/v1/library.
type LibrarySummary struct {
	LibraryPath string    `json:"library_path"`
	ParsedAt    time.Time `json:"parsed_at"`
	Year        int       `json:"year"`
	TrackCount  int       `json:"track_count"`
	YearBuckets int       `json:"year_buckets"`
	AlbumsShown int       `json:"albums_shown"`
}
