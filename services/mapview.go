package services

import (
	"fmt"
	"html/template"
	"io"

	"tripplanner/metrics"
)

// DefaultMapZoom matches a city-level view.
const DefaultMapZoom = 13

// Marker is one activity pin.
type Marker struct {
	Day      int     `json:"day"`
	Date     string  `json:"date"`
	TimeSlot string  `json:"time_slot"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// MapView is what a map widget needs: a center, a zoom and the pins.
type MapView struct {
	Title   string      `json:"title"`
	Center  Coordinates `json:"center"`
	Zoom    int         `json:"zoom"`
	Markers []Marker    `json:"markers"`
}

// BuildMapView emits one marker per activity per day.
func BuildMapView(it *Itinerary) MapView {
	view := MapView{
		Title:   "Trip Itinerary - " + it.Location,
		Center:  it.Coordinates,
		Zoom:    DefaultMapZoom,
		Markers: make([]Marker, 0, len(it.Plans)*activitiesPerDay),
	}
	for i, day := range it.Plans {
		for _, act := range day.Activities {
			view.Markers = append(view.Markers, Marker{
				Day:      i + 1,
				Date:     day.Date.String(),
				TimeSlot: act.TimeSlot,
				Name:     act.Name,
				Lat:      act.Lat,
				Lon:      act.Lon,
			})
		}
	}
	return view
}

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>#map { width: 100%; height: 100vh; margin: 0; }</style>
</head>
<body style="margin:0">
<div id="map"></div>
<script>
var map = L.map('map').setView([{{.Center.Lat}}, {{.Center.Lon}}], {{.Zoom}});
L.tileLayer('https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
{{range .Markers}}L.marker([{{.Lat}}, {{.Lon}}]).addTo(map).bindPopup({{printf "Day %d %s: %s" .Day .TimeSlot .Name}});
{{end}}</script>
</body>
</html>
`))

// RenderMapHTML writes a standalone Leaflet page for the view.
func RenderMapHTML(w io.Writer, view MapView) error {
	if err := mapTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("rendering map: %w", err)
	}
	metrics.ExportsRendered.WithLabelValues("map").Inc()
	return nil
}
