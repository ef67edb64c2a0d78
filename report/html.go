package report

import (
	"html/template"
	"io"

	"github.com/dustin/go-humanize"
)

// Meta is the document header of a rendered report page.
type Meta struct {
	Title  string
	Author string
	Date   string
}

type htmlBin struct {
	Lower     float64
	Count     string
	Percent   float64
	Reference bool
}

type htmlPage struct {
	Meta      Meta
	Trials    string
	Mean      float64
	CILower   float64
	CIUpper   float64
	StdDev    float64
	Q05       float64
	Median    float64
	Q95       float64
	Reference float64
	Bins      []htmlBin
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Meta.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
table { border-collapse: collapse; }
td, th { padding: 0.25rem 0.75rem; border: 1px solid #ccc; text-align: right; }
.bar { background: #4a90d9; height: 1em; display: inline-block; }
.ref { background: #d94a4a; }
</style>
</head>
<body>
<h1>{{.Meta.Title}}</h1>
<p>{{.Meta.Author}} &mdash; {{.Meta.Date}}</p>
<h2>Summary</h2>
<table>
<tr><th>trials</th><th>mean</th><th>95% CI</th><th>sd</th><th>q05</th><th>median</th><th>q95</th></tr>
<tr>
<td>{{.Trials}}</td>
<td>{{printf "%.4f" .Mean}}</td>
<td>[{{printf "%.4f" .CILower}}, {{printf "%.4f" .CIUpper}}]</td>
<td>{{printf "%.4f" .StdDev}}</td>
<td>{{printf "%.4f" .Q05}}</td>
<td>{{printf "%.4f" .Median}}</td>
<td>{{printf "%.4f" .Q95}}</td>
</tr>
</table>
<h2>Sampling distribution</h2>
<p>Reference value: {{printf "%.4f" .Reference}} (highlighted bin)</p>
<table>
{{range .Bins}}<tr>
<td>{{printf "%.2f" .Lower}}</td>
<td style="text-align:left;width:24rem"><span class="bar{{if .Reference}} ref{{end}}" style="width:{{printf "%.1f" .Percent}}%"></span></td>
<td>{{.Count}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

// WriteHTML renders the summary as a standalone HTML page.
func (s *Summary) WriteHTML(w io.Writer, meta Meta) error {
	d := s.Description

	peak := 0
	for _, c := range s.Histogram.Counts {
		if c > peak {
			peak = c
		}
	}
	referenceBin := s.Histogram.Bin(s.Reference)

	page := htmlPage{
		Meta:      meta,
		Trials:    humanize.Comma(int64(d.Count)),
		Mean:      d.Mean,
		CILower:   s.Interval.Lower,
		CIUpper:   s.Interval.Upper,
		StdDev:    d.StdDev,
		Q05:       d.Q05,
		Median:    d.Median,
		Q95:       d.Q95,
		Reference: s.Reference,
		Bins:      make([]htmlBin, 0, len(s.Histogram.Counts)),
	}
	for i, count := range s.Histogram.Counts {
		percent := 0.0
		if peak > 0 {
			percent = 100 * float64(count) / float64(peak)
		}
		page.Bins = append(page.Bins, htmlBin{
			Lower:     s.Histogram.BinLower(i),
			Count:     humanize.Comma(int64(count)),
			Percent:   percent,
			Reference: i == referenceBin,
		})
	}

	return pageTemplate.Execute(w, page)
}
