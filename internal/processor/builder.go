package processor

import (
	"tripmap/internal/dates"
	"tripmap/internal/geo"
)

// Build converts the ingested records into the output document. Features
// keep the input order and carry a 1-based number; the feature count always
// equals the record count. Per-record date failures degrade to null fields
// and never abort the build.
func Build(records []Record) geo.FeatureCollection {
	fc := geo.FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]geo.Feature, 0, len(records)),
	}

	for i, r := range records {
		fc.Features = append(fc.Features, geo.Feature{
			Type: "Feature",
			Geometry: geo.Geometry{
				Type: "Point",
				// GeoJSON wants [lon, lat] while input is (lat, lon)
				Coordinates: []float64{r.Lon, r.Lat},
			},
			Properties: geo.Properties{
				Number:       i + 1,
				Name:         r.Name,
				Latitude:     r.Lat,
				Longitude:    r.Lon,
				StartDate:    dates.FormatISO(r.StartDate),
				EndDate:      dates.FormatISO(r.EndDate),
				DurationDays: dates.DurationDays(r.StartDate, r.EndDate),
			},
		})
	}

	return fc
}
