package schema

// GeoJSON - mongo geometry format for a single position
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// PolygonGeoJSON - mongo geometry format for a vertex sequence
type PolygonGeoJSON struct {
	Type        string      `bson:"type" json:"type"`
	Coordinates [][]float64 `bson:"coordinates" json:"coordinates"`
}
