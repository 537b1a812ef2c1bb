// Package geo holds the GeoJSON document model and output writing.
package geo

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// FeatureCollection represents the top-level GeoJSON document.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a single point feature with its descriptive properties.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry represents the geometry of a feature.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat]
}

// Properties carries the per-point attributes. A typed struct rather than a
// map keeps the serialized key order stable across runs. Date and duration
// fields are pointers so unknown values render as JSON null.
type Properties struct {
	Number       int     `json:"number"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	DurationDays *int    `json:"duration_days"`
}

// NormalizeFilename forces the .geojson suffix on an output filename.
func NormalizeFilename(name string) string {
	if !strings.HasSuffix(name, ".geojson") {
		return name + ".geojson"
	}

	return name
}

// Save marshals the feature collection and writes it to path, overwriting
// any existing file. The path is normalized to carry the .geojson suffix;
// the final path is returned.
func Save(path string, fc FeatureCollection) (string, error) {
	path = NormalizeFilename(path)

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return path, err
	}

	f, err := os.Create(path)
	if err != nil {
		return path, err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	if _, err := f.Write(data); err != nil {
		return path, err
	}

	return path, nil
}
