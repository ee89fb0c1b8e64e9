package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PolygonCollection = "polygons"
)

// Polygon - a named vertex-sequence geometry document with a density
// attribute (e.g. population density over the covered area).
type Polygon struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Location string             `bson:"location" json:"location"`
	Geometry PolygonGeoJSON     `bson:"geometry" json:"geometry"`
	Density  float64            `bson:"density" json:"density"`
}
