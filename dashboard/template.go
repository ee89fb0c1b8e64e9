package dashboard

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

type mapPageData struct {
	Title   string
	GeoJSON string
	Focus   string
}

func renderMapPage(c *gin.Context, tmpl *template.Template, data mapPageData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := tmpl.Execute(c.Writer, struct {
		Title   string
		GeoJSON template.JS
		Focus   string
	}{
		Title:   data.Title,
		GeoJSON: template.JS(data.GeoJSON),
		Focus:   data.Focus,
	}); err != nil {
		c.Error(err)
	}
}

var locationTemplate = template.Must(template.New("location").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>{{.Title}}</title>
  <meta charset="utf-8"/>
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.6.0/dist/leaflet.css"/>
  <script src="https://unpkg.com/leaflet@1.6.0/dist/leaflet.js"></script>
  <style>html, body, #map { width: 100%; height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
  var data = {{.GeoJSON}};
  var focus = "{{.Focus}}";

  var map = L.map('map').setView([0, 0], 2);
  L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
  }).addTo(map);

  L.geoJSON(data, {
    onEachFeature: function (feature, layer) {
      layer.bindPopup(feature.properties.location);
      if (focus && feature.properties.id === focus) {
        map.setView([feature.geometry.coordinates[1], feature.geometry.coordinates[0]], 12);
      }
    }
  }).addTo(map);
</script>
</body>
</html>
`))

var populationTemplate = template.Must(template.New("population").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>{{.Title}}</title>
  <meta charset="utf-8"/>
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.6.0/dist/leaflet.css"/>
  <script src="https://unpkg.com/leaflet@1.6.0/dist/leaflet.js"></script>
  <style>html, body, #map { width: 100%; height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
  var data = {{.GeoJSON}};
  var focus = "{{.Focus}}";

  var maxDensity = 0;
  data.features.forEach(function (f) {
    if (f.properties.density > maxDensity) { maxDensity = f.properties.density; }
  });

  function shade(density) {
    var ratio = maxDensity > 0 ? density / maxDensity : 0;
    return { color: '#b35806', weight: 1, fillColor: '#e08214', fillOpacity: 0.2 + 0.6 * ratio };
  }

  var map = L.map('map').setView([0, 0], 2);
  L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
  }).addTo(map);

  var layer = L.geoJSON(data, {
    style: function (feature) { return shade(feature.properties.density); },
    onEachFeature: function (feature, l) {
      l.bindPopup(feature.properties.location + ': ' + feature.properties.density);
      if (focus && feature.properties.id === focus) {
        map.fitBounds(l.getBounds());
      }
    }
  }).addTo(map);

  if (!focus && layer.getLayers().length > 0) {
    map.fitBounds(layer.getBounds());
  }
</script>
</body>
</html>
`))
