package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spatialhub/geodata-api/schema"
)

type PolygonStore interface {
	AddPolygon(location string, coordinates [][]float64, density float64) (*schema.Polygon, error)
	GetPolygon(id primitive.ObjectID) (*schema.Polygon, error)
	GetPolygonByLocation(location string) (*schema.Polygon, error)
	UpdatePolygon(id primitive.ObjectID, location string, coordinates [][]float64, density float64) error
	ListPolygons() ([]schema.Polygon, error)
}

// AddPolygon inserts a new polygon document and returns it with its
// assigned id.
func (m *mongoDB) AddPolygon(location string, coordinates [][]float64, density float64) (*schema.Polygon, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PolygonCollection)

	polygon := schema.Polygon{
		ID:       primitive.NewObjectID(),
		Location: location,
		Geometry: schema.PolygonGeoJSON{
			Type:        "Polygon",
			Coordinates: coordinates,
		},
		Density: density,
	}

	if _, err := c.InsertOne(ctx, polygon); err != nil {
		if hasDuplicateKeyError(err) {
			return nil, ErrLocationTaken
		}
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("insert polygon")
		return nil, err
	}

	return &polygon, nil
}

// GetPolygon finds a polygon by its id
func (m *mongoDB) GetPolygon(id primitive.ObjectID) (*schema.Polygon, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PolygonCollection)

	var polygon schema.Polygon
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&polygon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPolygonNotFound
		}
		return nil, err
	}

	return &polygon, nil
}

// GetPolygonByLocation finds a polygon by its exact location name
func (m *mongoDB) GetPolygonByLocation(location string) (*schema.Polygon, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PolygonCollection)

	var polygon schema.Polygon
	if err := c.FindOne(ctx, bson.M{"location": location}).Decode(&polygon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &polygon, nil
}

// UpdatePolygon replaces the mutable fields of an existing polygon
func (m *mongoDB) UpdatePolygon(id primitive.ObjectID, location string, coordinates [][]float64, density float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PolygonCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"location": location,
			"geometry": schema.PolygonGeoJSON{
				Type:        "Polygon",
				Coordinates: coordinates,
			},
			"density": density,
		}},
	)
	if err != nil {
		if hasDuplicateKeyError(err) {
			return ErrLocationTaken
		}
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPolygonNotFound
	}

	return nil
}

// ListPolygons returns every stored polygon, ordered by location name.
func (m *mongoDB) ListPolygons() ([]schema.Polygon, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PolygonCollection)

	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"location": 1}))
	if err != nil {
		return nil, err
	}

	polygons := make([]schema.Polygon, 0)
	if err := cursor.All(ctx, &polygons); err != nil {
		return nil, err
	}

	return polygons, nil
}
