package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spatialhub/geodata-api/schema"
)

var fixturePointID = primitive.NewObjectID()

type PointTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewPointTestSuite(connURI, dbName string) *PointTestSuite {
	return &PointTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *PointTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *PointTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	_, err := s.testDatabase.Collection(schema.PointCollection).InsertOne(ctx, schema.Point{
		ID:       fixturePointID,
		Location: "fixture-point",
		Geometry: schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{120.123, 25.123},
		},
	})
	return err
}

// CleanMongoDB drop the whole test mongodb
func (s *PointTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestAddPoint tests adding a new point normally
func (s *PointTestSuite) TestAddPoint() {
	ctx := context.Background()
	store := NewMongoStore(s.mongoClient, s.testDBName)

	location := uuid.New().String()
	point, err := store.AddPoint(location, -73.99, 40.73, nil)
	s.NoError(err)
	s.Equal(location, point.Location)
	s.Equal("Point", point.Geometry.Type)
	s.Equal([]float64{-73.99, 40.73}, point.Geometry.Coordinates)
	s.False(point.ID.IsZero())

	count, err := s.testDatabase.Collection(schema.PointCollection).CountDocuments(ctx, bson.M{"_id": point.ID})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestAddPointWithDetails tests that a raw geocoder payload is persisted
// alongside the geometry
func (s *PointTestSuite) TestAddPointWithDetails() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	location := uuid.New().String()
	point, err := store.AddPoint(location, 120.1, 25.1, map[string]interface{}{
		"place_id": "test-place",
	})
	s.NoError(err)

	stored, err := store.GetPoint(point.ID)
	s.NoError(err)
	s.Equal("test-place", stored.Details["place_id"])
}

// TestAddPointDuplicateLocation tests that the unique index rejects a
// second point with the same location name
func (s *PointTestSuite) TestAddPointDuplicateLocation() {
	ctx := context.Background()
	store := NewMongoStore(s.mongoClient, s.testDBName)

	location := uuid.New().String()
	_, err := store.AddPoint(location, 1, 1, nil)
	s.NoError(err)

	point, err := store.AddPoint(location, 2, 2, nil)
	s.Equal(ErrLocationTaken, err)
	s.Nil(point)

	count, err := s.testDatabase.Collection(schema.PointCollection).CountDocuments(ctx, bson.M{"location": location})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestGetPoint tests reading a point by id
func (s *PointTestSuite) TestGetPoint() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	point, err := store.GetPoint(fixturePointID)
	s.NoError(err)
	s.Equal("fixture-point", point.Location)
	s.Equal([]float64{120.123, 25.123}, point.Geometry.Coordinates)
}

// TestGetPointNotFound tests reading a well-formed but absent id
func (s *PointTestSuite) TestGetPointNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	point, err := store.GetPoint(primitive.NewObjectID())
	s.Equal(ErrPointNotFound, err)
	s.Nil(point)
}

// TestGetPointByLocation tests the existence check used before inserts
func (s *PointTestSuite) TestGetPointByLocation() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	point, err := store.GetPointByLocation("fixture-point")
	s.NoError(err)
	s.NotNil(point)
	s.Equal(fixturePointID, point.ID)

	absent, err := store.GetPointByLocation("no-such-location")
	s.NoError(err)
	s.Nil(absent)
}

// TestUpdatePoint tests a full update round-trip
func (s *PointTestSuite) TestUpdatePoint() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	location := uuid.New().String()
	point, err := store.AddPoint(location, 10, 20, nil)
	s.NoError(err)

	renamed := uuid.New().String()
	s.NoError(store.UpdatePoint(point.ID, renamed, 30, 40))

	updated, err := store.GetPoint(point.ID)
	s.NoError(err)
	s.Equal(point.ID, updated.ID)
	s.Equal(renamed, updated.Location)
	s.Equal("Point", updated.Geometry.Type)
	s.Equal([]float64{30, 40}, updated.Geometry.Coordinates)
}

// TestUpdatePointNotFound tests that updating an absent id writes nothing
func (s *PointTestSuite) TestUpdatePointNotFound() {
	ctx := context.Background()
	store := NewMongoStore(s.mongoClient, s.testDBName)

	missingID := primitive.NewObjectID()
	err := store.UpdatePoint(missingID, "ghost", 0, 0)
	s.Equal(ErrPointNotFound, err)

	count, err := s.testDatabase.Collection(schema.PointCollection).CountDocuments(ctx, bson.M{"_id": missingID})
	s.NoError(err)
	s.Equal(int64(0), count)
}

// TestUpdatePointDuplicateLocation tests that renaming onto a taken name
// is rejected by the unique index
func (s *PointTestSuite) TestUpdatePointDuplicateLocation() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	point, err := store.AddPoint(uuid.New().String(), 5, 5, nil)
	s.NoError(err)

	err = store.UpdatePoint(point.ID, "fixture-point", 5, 5)
	s.Equal(ErrLocationTaken, err)
}

// TestListPoints tests the full-collection listing used by the dashboards
func (s *PointTestSuite) TestListPoints() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	points, err := store.ListPoints()
	s.NoError(err)
	s.NotEmpty(points)

	found := false
	for _, p := range points {
		if p.ID == fixturePointID {
			found = true
		}
	}
	s.True(found)
}

func TestPointTestSuite(t *testing.T) {
	connURI := os.Getenv("GEODATA_TEST_MONGO_CONN")
	if connURI == "" {
		t.Skip("skip mongo integration tests: GEODATA_TEST_MONGO_CONN not set")
	}

	suite.Run(t, NewPointTestSuite(connURI, "test-db-point"))
}
