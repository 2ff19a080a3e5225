package report

import (
	"bytes"
	"fmt"
	"html"
	"html/template"

	"github.com/pivolan/listing_analyzer/domain/models"
)

// NYC city hall, used when there is nothing to center on.
const (
	defaultLatitude  = 40.7128
	defaultLongitude = -74.0060
	defaultZoom      = 11
)

const (
	topPerformerColor = "#2ca02c"
	otherColor        = "#d62728"
)

type mapMarker struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Popup string  `json:"popup"`
}

type mapPage struct {
	Label        string
	CenterLat    float64
	CenterLng    float64
	Zoom         int
	TopColor     string
	OtherColor   string
	TopCount     int
	OtherCount   int
	TopMarkers   []mapMarker
	OtherMarkers []mapMarker
}

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Top performers: {{.Label}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
html, body, #map { height: 100%; margin: 0; }
.legend { position: fixed; bottom: 40px; left: 40px; z-index: 1000; background: white;
  border: 2px solid grey; border-radius: 4px; padding: 8px 12px; font: 14px sans-serif; }
.legend i { display: inline-block; width: 12px; height: 12px; border-radius: 6px; margin-right: 6px; }
</style>
</head>
<body>
<div id="map"></div>
<div class="legend">
<b>{{.Label}}</b><br>
<i style="background: {{.TopColor}}"></i>Top performers ({{.TopCount}})<br>
<i style="background: {{.OtherColor}}"></i>Other listings ({{.OtherCount}})
</div>
<script>
var map = L.map("map").setView([{{.CenterLat}}, {{.CenterLng}}], {{.Zoom}});
L.tileLayer("https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png", {
  attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);

function markerLayer(markers, color) {
  var layer = L.layerGroup();
  markers.forEach(function (m) {
    L.circleMarker([m.lat, m.lng], {radius: 5, color: color, fillColor: color, fillOpacity: 0.7})
      .bindPopup(m.popup)
      .addTo(layer);
  });
  return layer;
}

var otherLayer = markerLayer({{.OtherMarkers}}, {{.OtherColor}}).addTo(map);
var topLayer = markerLayer({{.TopMarkers}}, {{.TopColor}}).addTo(map);
L.control.layers(null, {"Top performers": topLayer, "Other listings": otherLayer}, {collapsed: false}).addTo(map);
</script>
</body>
</html>
`))

// RenderMap builds the Leaflet page for a group. Top performers and the
// remaining listings go to separate toggleable layers.
func RenderMap(label string, top, others []models.Listing) ([]byte, error) {
	page := mapPage{
		Label:        label,
		Zoom:         defaultZoom,
		TopColor:     topPerformerColor,
		OtherColor:   otherColor,
		TopCount:     len(top),
		OtherCount:   len(others),
		TopMarkers:   toMarkers(top),
		OtherMarkers: toMarkers(others),
	}
	page.CenterLat, page.CenterLng = center(top, others)

	buffer := bytes.NewBuffer([]byte{})
	if err := mapTemplate.Execute(buffer, page); err != nil {
		return nil, fmt.Errorf("error rendering map: %v", err)
	}
	return buffer.Bytes(), nil
}

// WriteMap renders the map and writes it to MapPath(outputDir, label).
func WriteMap(outputDir, label string, top, others []models.Listing) (string, error) {
	data, err := RenderMap(label, top, others)
	if err != nil {
		return "", err
	}
	path := MapPath(outputDir, label)
	return path, WriteArtifact(path, data)
}

func toMarkers(listings []models.Listing) []mapMarker {
	markers := make([]mapMarker, 0, len(listings))
	for _, l := range listings {
		markers = append(markers, mapMarker{
			Lat:   l.Latitude,
			Lng:   l.Longitude,
			Popup: popup(l),
		})
	}
	return markers
}

func popup(l models.Listing) string {
	return fmt.Sprintf(
		"<b>%s</b><br>Group: %s<br>Reviews: %d<br>Reviews per month: %.2f<br>Price: $%.0f<br>Room type: %s",
		html.EscapeString(l.Listing),
		html.EscapeString(string(l.Group)),
		l.NumberOfReviews,
		l.ReviewsPerMonth,
		l.Price,
		html.EscapeString(l.RoomType),
	)
}

func center(groups ...[]models.Listing) (float64, float64) {
	var lat, lng float64
	n := 0
	for _, listings := range groups {
		for _, l := range listings {
			lat += l.Latitude
			lng += l.Longitude
			n++
		}
	}
	if n == 0 {
		return defaultLatitude, defaultLongitude
	}
	return lat / float64(n), lng / float64(n)
}
