package stats

import (
	"sort"
	"time"

	"github.com/parcon/apple-music-library-scripts/internal/model"
)

// AlbumsPerYear counts distinct album titles per release year. An album
// is counted once per year no matter how many of its tracks appear, and
// titles match exactly (no normalization). Tracks without a year are
// left out. Results come back sorted by ascending year.
func AlbumsPerYear(tracks []model.Track) []model.YearCount {
	albumsByYear := make(map[int]map[string]struct{})
	for _, t := range tracks {
		if t.Year == 0 {
			continue
		}
		albums, ok := albumsByYear[t.Year]
		if !ok {
			albums = make(map[string]struct{})
			albumsByYear[t.Year] = albums
		}
		albums[t.Album] = struct{}{}
	}

	counts := make([]model.YearCount, 0, len(albumsByYear))
	for year, albums := range albumsByYear {
		counts = append(counts, model.YearCount{Year: year, AlbumCount: len(albums)})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Year < counts[j].Year
	})
	return counts
}

type albumKey struct {
	album  string
	artist string
}

// TopAlbums sums play counts per album+artist pair over every track
// (with or without a year) and returns up to limit albums ranked by
// descending total plays. Ties order by album title, then artist, so equal play
// counts always come out the same way.
func TopAlbums(tracks []model.Track, limit int) []model.AlbumPlays {
	totals := make(map[albumKey]int)
	for _, t := range tracks {
		totals[albumKey{t.Album, t.Artist}] += t.PlayCount
	}

	ranked := make([]model.AlbumPlays, 0, len(totals))
	for key, plays := range totals {
		ranked = append(ranked, model.AlbumPlays{
			Album:      key.album,
			Artist:     key.artist,
			TotalPlays: plays,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalPlays != ranked[j].TotalPlays {
			return ranked[i].TotalPlays > ranked[j].TotalPlays
		}
		if ranked[i].Album != ranked[j].Album {
			return ranked[i].Album < ranked[j].Album
		}
		return ranked[i].Artist < ranked[j].Artist
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// MonthlyTopAlbums lays the ranked albums out as the twelve-month table.
// The export has no per-play timestamps, so every month shows the same
// global ranking; the month column is a display dimension, not a real
// breakdown.
func MonthlyTopAlbums(albums []model.AlbumPlays) []model.TopAlbumRow {
	rows := make([]model.TopAlbumRow, 0, 12*len(albums))
	for month := time.January; month <= time.December; month++ {
		for i, a := range albums {
			rows = append(rows, model.TopAlbumRow{
				Month:      month.String(),
				Rank:       i + 1,
				Artist:     a.Artist,
				Album:      a.Album,
				TotalPlays: a.TotalPlays,
			})
		}
	}
	return rows
}
