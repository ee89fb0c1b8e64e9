package records

import (
	"fmt"
	"math"
	"strings"
)

// FieldError names one offending payload field and the constraint it
// violates.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every offending field of a payload, not just
// the first one found.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// PointDraft - a validated point payload prior to persistence
type PointDraft struct {
	Location  string
	Longitude float64
	Latitude  float64
}

// PolygonDraft - a validated polygon payload prior to persistence
type PolygonDraft struct {
	Location    string
	Coordinates [][]float64
	Density     float64
}

// ValidatePoint checks an untyped request payload against the point
// schema: a non-empty location name plus finite longitude and latitude.
// Geographic range is deliberately not enforced here; only the geocoding
// lookup endpoints bound coordinates.
func ValidatePoint(fields map[string]interface{}) (*PointDraft, *ValidationError) {
	verr := &ValidationError{}

	location := requireString(verr, fields, "location")
	longitude := requireNumber(verr, fields, "longitude")
	latitude := requireNumber(verr, fields, "latitude")

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	return &PointDraft{
		Location:  location,
		Longitude: longitude,
		Latitude:  latitude,
	}, nil
}

// ValidatePolygon checks an untyped request payload against the polygon
// schema: a non-empty location name, at least one coordinate pair and a
// numeric density.
func ValidatePolygon(fields map[string]interface{}) (*PolygonDraft, *ValidationError) {
	verr := &ValidationError{}

	location := requireString(verr, fields, "location")
	coordinates := requireCoordinates(verr, fields, "coordinates")
	density := requireNumber(verr, fields, "density")

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	return &PolygonDraft{
		Location:    location,
		Coordinates: coordinates,
		Density:     density,
	}, nil
}

func requireString(verr *ValidationError, fields map[string]interface{}, name string) string {
	value, ok := fields[name]
	if !ok {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: "field is required"})
		return ""
	}

	s, ok := value.(string)
	if !ok {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: "must be a string"})
		return ""
	}
	if s == "" {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: "must not be empty"})
		return ""
	}

	return s
}

func requireNumber(verr *ValidationError, fields map[string]interface{}, name string) float64 {
	value, ok := fields[name]
	if !ok {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: "field is required"})
		return 0
	}

	f, ok := asFloat(value)
	if !ok {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: "must be a number"})
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: "must be a finite number"})
		return 0
	}

	return f
}

// requireCoordinates accepts a sequence of at least one [x, y] numeric
// pair, the shape the reference stores for polygon geometries.
func requireCoordinates(verr *ValidationError, fields map[string]interface{}, name string) [][]float64 {
	value, ok := fields[name]
	if !ok {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: "field is required"})
		return nil
	}

	seq, ok := value.([]interface{})
	if !ok {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: "must be a sequence of coordinate pairs"})
		return nil
	}
	if len(seq) == 0 {
		verr.Fields = append(verr.Fields, FieldError{Field: name, Message: "must contain at least one coordinate pair"})
		return nil
	}

	coordinates := make([][]float64, 0, len(seq))
	for i, entry := range seq {
		pair, ok := entry.([]interface{})
		if !ok || len(pair) != 2 {
			verr.Fields = append(verr.Fields, FieldError{
				Field:   name,
				Message: fmt.Sprintf("entry %d is not a coordinate pair", i),
			})
			return nil
		}

		x, okX := asFloat(pair[0])
		y, okY := asFloat(pair[1])
		if !okX || !okY {
			verr.Fields = append(verr.Fields, FieldError{
				Field:   name,
				Message: fmt.Sprintf("entry %d has a non-numeric coordinate", i),
			})
			return nil
		}

		coordinates = append(coordinates, []float64{x, y})
	}

	return coordinates
}

// asFloat widens the numeric types a decoded JSON body or a direct caller
// may hand over.
func asFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
