package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spatialhub/geodata-api/schema"
)

var (
	ErrPointNotFound   = fmt.Errorf("point not found")
	ErrPolygonNotFound = fmt.Errorf("polygon not found")
	ErrLocationTaken   = fmt.Errorf("location name already exists")
)

type PointStore interface {
	AddPoint(location string, lon, lat float64, details map[string]interface{}) (*schema.Point, error)
	GetPoint(id primitive.ObjectID) (*schema.Point, error)
	GetPointByLocation(location string) (*schema.Point, error)
	UpdatePoint(id primitive.ObjectID, location string, lon, lat float64) error
	ListPoints() ([]schema.Point, error)
}

// AddPoint inserts a new point document and returns it with its assigned id.
// A unique index violation on the location name is reported as
// ErrLocationTaken.
func (m *mongoDB) AddPoint(location string, lon, lat float64, details map[string]interface{}) (*schema.Point, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PointCollection)

	point := schema.Point{
		ID:       primitive.NewObjectID(),
		Location: location,
		Geometry: schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
	}
	if details != nil {
		point.Details = bson.M(details)
	}

	if _, err := c.InsertOne(ctx, point); err != nil {
		if hasDuplicateKeyError(err) {
			return nil, ErrLocationTaken
		}
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("insert point")
		return nil, err
	}

	return &point, nil
}

// GetPoint finds a point by its id
func (m *mongoDB) GetPoint(id primitive.ObjectID) (*schema.Point, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PointCollection)

	var point schema.Point
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&point); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPointNotFound
		}
		return nil, err
	}

	return &point, nil
}

// GetPointByLocation finds a point by its exact location name. A missing
// record is not an error here since callers use it as an existence check.
func (m *mongoDB) GetPointByLocation(location string) (*schema.Point, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PointCollection)

	var point schema.Point
	if err := c.FindOne(ctx, bson.M{"location": location}).Decode(&point); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &point, nil
}

// UpdatePoint replaces the mutable fields of an existing point. The id and
// the geometry type are left untouched.
func (m *mongoDB) UpdatePoint(id primitive.ObjectID, location string, lon, lat float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PointCollection)

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"location": location,
			"geometry": schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{lon, lat},
			},
		}},
	)
	if err != nil {
		if hasDuplicateKeyError(err) {
			return ErrLocationTaken
		}
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPointNotFound
	}

	return nil
}

// ListPoints returns every stored point, ordered by location name.
func (m *mongoDB) ListPoints() ([]schema.Point, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PointCollection)

	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"location": 1}))
	if err != nil {
		return nil, err
	}

	points := make([]schema.Point, 0)
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}

	return points, nil
}
