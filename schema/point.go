package schema

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PointCollection = "points"
)

// Point - a named point geometry document. Details carries the raw
// geocoder payload when the record was created through a lookup.
type Point struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Location string             `bson:"location" json:"location"`
	Geometry GeoJSON            `bson:"geometry" json:"geometry"`
	Details  bson.M             `bson:"details,omitempty" json:"details,omitempty"`
}

// Longitude returns the first coordinate of the point geometry.
func (p Point) Longitude() float64 {
	if len(p.Geometry.Coordinates) < 2 {
		return 0
	}
	return p.Geometry.Coordinates[0]
}

// Latitude returns the second coordinate of the point geometry.
func (p Point) Latitude() float64 {
	if len(p.Geometry.Coordinates) < 2 {
		return 0
	}
	return p.Geometry.Coordinates[1]
}
