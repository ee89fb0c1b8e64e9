package records

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spatialhub/geodata-api/schema"
	"github.com/spatialhub/geodata-api/store"
)

var (
	// ErrInvalidID - the identifier is not a well-formed object id
	ErrInvalidID = fmt.Errorf("invalid id format")
)

// Service sequences validation, uniqueness checks and store mutations for
// point and polygon records. It holds no state beyond the injected store;
// every call is an independent unit of work.
//
// The check-then-insert sequence on create is not atomic. Two concurrent
// creates with the same location can both pass the pre-check; the unique
// index on the collection then rejects the loser, which still surfaces as
// store.ErrLocationTaken.
type Service struct {
	store store.MongoStore
}

// NewService - a record service backed by the given store
func NewService(mongoStore store.MongoStore) *Service {
	return &Service{
		store: mongoStore,
	}
}

// CreatePoint validates the payload, rejects a taken location name and
// inserts the point. The assigned id is returned.
func (s *Service) CreatePoint(fields map[string]interface{}) (primitive.ObjectID, error) {
	draft, verr := ValidatePoint(fields)
	if verr != nil {
		return primitive.NilObjectID, verr
	}

	existing, err := s.store.GetPointByLocation(draft.Location)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing != nil {
		return primitive.NilObjectID, store.ErrLocationTaken
	}

	point, err := s.store.AddPoint(draft.Location, draft.Longitude, draft.Latitude, nil)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return point.ID, nil
}

// GetPoint reads a point by its id string. A malformed id short-circuits
// before any store access.
func (s *Service) GetPoint(id string) (*schema.Point, error) {
	pointID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	return s.store.GetPoint(pointID)
}

// UpdatePoint validates the payload and replaces the mutable fields of an
// existing point. The location name is not re-checked for uniqueness at
// this layer; a rename onto a taken name is caught by the unique index.
func (s *Service) UpdatePoint(id string, fields map[string]interface{}) error {
	pointID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	draft, verr := ValidatePoint(fields)
	if verr != nil {
		return verr
	}

	if _, err := s.store.GetPoint(pointID); err != nil {
		return err
	}

	return s.store.UpdatePoint(pointID, draft.Location, draft.Longitude, draft.Latitude)
}

// CreateResolvedPoint persists a point produced by the geocoding lookup
// path, keeping the resolved provider payload alongside the geometry.
func (s *Service) CreateResolvedPoint(address string, lon, lat float64, details map[string]interface{}) (*schema.Point, error) {
	existing, err := s.store.GetPointByLocation(address)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, store.ErrLocationTaken
	}

	return s.store.AddPoint(address, lon, lat, details)
}

// CreatePolygon validates the payload, rejects a taken location name and
// inserts the polygon. The assigned id is returned.
func (s *Service) CreatePolygon(fields map[string]interface{}) (primitive.ObjectID, error) {
	draft, verr := ValidatePolygon(fields)
	if verr != nil {
		return primitive.NilObjectID, verr
	}

	existing, err := s.store.GetPolygonByLocation(draft.Location)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing != nil {
		return primitive.NilObjectID, store.ErrLocationTaken
	}

	polygon, err := s.store.AddPolygon(draft.Location, draft.Coordinates, draft.Density)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return polygon.ID, nil
}

// GetPolygon reads a polygon by its id string
func (s *Service) GetPolygon(id string) (*schema.Polygon, error) {
	polygonID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	return s.store.GetPolygon(polygonID)
}

// UpdatePolygon validates the payload and replaces the mutable fields of
// an existing polygon.
func (s *Service) UpdatePolygon(id string, fields map[string]interface{}) error {
	polygonID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	draft, verr := ValidatePolygon(fields)
	if verr != nil {
		return verr
	}

	if _, err := s.store.GetPolygon(polygonID); err != nil {
		return err
	}

	return s.store.UpdatePolygon(polygonID, draft.Location, draft.Coordinates, draft.Density)
}
