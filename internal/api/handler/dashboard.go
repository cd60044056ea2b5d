package handler

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/parcon/apple-music-library-scripts/internal/model"
)

// Dashboard renders the single served page: the albums-by-year bar
// chart on top, the monthly top-albums table below. No interaction
// beyond the chart's default hover tooltips.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	snippet := buildYearChart().RenderSnippet()

	data := dashboardData{
		Year:         snap.Year,
		Rows:         snap.TopAlbums,
		ChartElement: template.HTML(snippet.Element),
		ChartScript:  template.HTML(snippet.Script),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
	}
}

// buildYearChart turns the year aggregate into the bar chart
// (x = release year, y = distinct album count).
func buildYearChart() *charts.Bar {
	years := make([]string, 0, len(snap.YearCounts))
	bars := make([]opts.BarData, 0, len(snap.YearCounts))
	for _, c := range snap.YearCounts {
		years = append(years, strconv.Itoa(c.Year))
		bars = append(bars, opts.BarData{Value: c.AlbumCount})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeChalk,
			Width: "100%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Album Releases by Year",
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Release Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Unique Albums"}),
	)
	bar.SetXAxis(years).AddSeries("Albums", bars)
	return bar
}

type dashboardData struct {
	Year         int
	Rows         []model.TopAlbumRow
	ChartElement template.HTML
	ChartScript  template.HTML
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Music Library Analysis</title>
  <script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"></script>
  <style>
    body { background-color: #1a1a1a; color: #e0e0e0; font-family: sans-serif; padding: 20px; }
    h1, h2 { text-align: center; }
    h1 { margin-bottom: 30px; }
    .table-container { margin-top: 50px; }
    table { border-collapse: collapse; width: 100%; border-radius: 8px; overflow: hidden; }
    th { background-color: #444; font-weight: bold; border: 1px solid #555; padding: 10px; text-align: left; }
    td { background-color: #333; border: 1px solid #444; padding: 10px; text-align: left; }
    tr.month-start td { border-top: 2px solid #777; }
    .empty-note { text-align: center; color: #888; margin-top: 20px; }
  </style>
</head>
<body>
  <h1>My Music Library Dashboard</h1>

  <div class="graph-container">
    <h2>Total Album Releases by Year</h2>
    {{.ChartElement}}
  </div>

  <div class="table-container">
    <h2>Top 5 Albums of {{.Year}} (by Total Plays)</h2>
    {{if .Rows}}
    <table>
      <tr><th>Month</th><th>Rank</th><th>Artist</th><th>Album</th><th>Total Plays</th></tr>
      {{range .Rows}}
      <tr{{if eq .Rank 1}} class="month-start"{{end}}>
        <td>{{.Month}}</td><td>{{.Rank}}</td><td>{{.Artist}}</td><td>{{.Album}}</td><td>{{.TotalPlays}}</td>
      </tr>
      {{end}}
    </table>
    {{else}}
    <p class="empty-note">No play data in the library export.</p>
    {{end}}
  </div>

  {{.ChartScript}}
</body>
</html>
`
