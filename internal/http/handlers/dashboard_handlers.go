package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/cratestats/cratestats/internal/charts"
	"github.com/cratestats/cratestats/internal/view"
)

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>cratestats.io</title>
<script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"></script>
</head>
<body>
<h1>cratestats.io</h1>
<div>
  <h2>Crates by category</h2>
  <label for="num-categories-slider">Categories shown: <span id="num-categories-value">{{.Total}}</span></label>
  <input type="range" id="num-categories-slider" min="1" max="{{.Total}}" value="{{.Total}}"{{if eq .Total 0}} disabled{{end}}>
  {{.BarElement}}
  {{.BarScript}}
  {{.PieElement}}
  {{.PieScript}}
</div>
<script>
(function () {
  var slider = document.getElementById("num-categories-slider");
  var label = document.getElementById("num-categories-value");
  slider.addEventListener("input", function () {
    label.textContent = slider.value;
    fetch("/api/v1/categories/top?n=" + slider.value)
      .then(function (res) { return res.ok ? res.json() : null; })
      .then(function (body) {
        if (!body) { return; }
        var bar = echarts.getInstanceByDom(document.getElementById("crate-categories"));
        bar.setOption({ xAxis: [{ data: body.bar.x }], series: [{ data: body.bar.y }] });
        var pie = echarts.getInstanceByDom(document.getElementById("crate-categories-pie"));
        pie.setOption({ series: [{ data: body.pie.labels.map(function (l, i) {
          return { name: l, value: body.pie.values[i] };
        }) }] });
      });
  });
})();
</script>
</body>
</html>
`

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

type dashboardData struct {
	Total      int
	BarElement template.HTML
	BarScript  template.HTML
	PieElement template.HTML
	PieScript  template.HTML
}

// DashboardHandler godoc
// @Summary Dashboard page
// @Description Slider plus bar and pie charts over the category table. The
// initial render shows every category; the slider re-fetches the top-N specs.
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	v := view.New(table)
	bar, pie := v.SetSelectedCount(table.Len())
	barSnippet, pieSnippet := charts.Snippets(bar, pie)

	data := dashboardData{
		Total:      table.Len(),
		BarElement: template.HTML(barSnippet.Element),
		BarScript:  template.HTML(barSnippet.Script),
		PieElement: template.HTML(pieSnippet.Element),
		PieScript:  template.HTML(pieSnippet.Script),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		log.Printf("Failed to render dashboard: %v", err)
	}
}

// HealthHandler godoc
// @Summary Liveness check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
