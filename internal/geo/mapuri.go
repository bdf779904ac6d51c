package geo

import "fmt"

// MapZoom is the zoom level every generated map link opens at.
const MapZoom = 15

const mapURITemplate = "https://www.openstreetmap.org/?mlat=%s&mlon=%s&zoom=%d"

// MapURI links to the fix on OpenStreetMap with a marker.
func MapURI(fix Fix) string {
	return fmt.Sprintf(mapURITemplate, formatDegrees(fix.Latitude), formatDegrees(fix.Longitude), MapZoom)
}
