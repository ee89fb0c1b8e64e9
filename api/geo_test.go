package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spatialhub/geodata-api/geo"
	"github.com/spatialhub/geodata-api/schema"
	"github.com/spatialhub/geodata-api/store/mocks"
)

type stubResolver struct {
	place *geo.Place
	err   error
}

func (r stubResolver) Reverse(lat, lng float64) (*geo.Place, error) {
	return r.place, r.err
}

func (r stubResolver) Lookup(name string) (*geo.Place, error) {
	return r.place, r.err
}

func newGeoTestServer(t *testing.T, resolver geo.PlaceResolver) (*Server, *mocks.MockMongoStore, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockMongoStore(ctrl)
	return NewServer(mockStore, resolver), mockStore, ctrl
}

func TestLocationDetails(t *testing.T) {
	place := &geo.Place{
		Address:   "Union Square, New York, NY, USA",
		Latitude:  40.7359,
		Longitude: -73.9911,
		Raw:       map[string]interface{}{"place_id": "abc"},
	}
	s, mockStore, ctrl := newGeoTestServer(t, stubResolver{place: place})
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	mockStore.EXPECT().GetPointByLocation(place.Address).Return(nil, nil)
	mockStore.EXPECT().AddPoint(place.Address, place.Longitude, place.Latitude, place.Raw).Return(&schema.Point{ID: id}, nil)

	w := performRequest(s, "GET", "/api/locationdetails?latitude=40.7359&longitude=-73.9911", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id.Hex(), resp["id"])
	assert.Equal(t, place.Address, resp["location"])
	assert.Equal(t, place.Latitude, resp["latitude"])
	assert.Equal(t, place.Longitude, resp["longitude"])
	assert.NotNil(t, resp["details"])
}

func TestLocationDetailsMissingParameters(t *testing.T) {
	s, _, ctrl := newGeoTestServer(t, stubResolver{})
	defer ctrl.Finish()

	w := performRequest(s, "GET", "/api/locationdetails?latitude=40.7", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationDetailsBadFloat(t *testing.T) {
	s, _, ctrl := newGeoTestServer(t, stubResolver{})
	defer ctrl.Finish()

	w := performRequest(s, "GET", "/api/locationdetails?latitude=abc&longitude=10", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationDetailsOutOfRange(t *testing.T) {
	s, _, ctrl := newGeoTestServer(t, stubResolver{})
	defer ctrl.Finish()

	w := performRequest(s, "GET", "/api/locationdetails?latitude=91&longitude=10", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(s, "GET", "/api/locationdetails?latitude=10&longitude=181", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationDetailsPlaceNotFound(t *testing.T) {
	s, _, ctrl := newGeoTestServer(t, stubResolver{err: geo.ErrPlaceNotFound})
	defer ctrl.Finish()

	w := performRequest(s, "GET", "/api/locationdetails?latitude=40.7&longitude=-73.9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1201), resp.Code)
}

func TestLocationDetailsProviderError(t *testing.T) {
	s, _, ctrl := newGeoTestServer(t, stubResolver{err: fmt.Errorf("OVER_QUERY_LIMIT")})
	defer ctrl.Finish()

	w := performRequest(s, "GET", "/api/locationdetails?latitude=40.7&longitude=-73.9", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1200), resp.Code)
}

func TestLocationDetailsConflict(t *testing.T) {
	place := &geo.Place{
		Address:   "Union Square, New York, NY, USA",
		Latitude:  40.7359,
		Longitude: -73.9911,
	}
	s, mockStore, ctrl := newGeoTestServer(t, stubResolver{place: place})
	defer ctrl.Finish()

	mockStore.EXPECT().GetPointByLocation(place.Address).Return(&schema.Point{
		ID: primitive.NewObjectID(),
	}, nil)

	w := performRequest(s, "GET", "/api/locationdetails?latitude=40.7359&longitude=-73.9911", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLocationDetailsByName(t *testing.T) {
	place := &geo.Place{
		Address:   "Kathmandu, Nepal",
		Latitude:  27.7172,
		Longitude: 85.324,
		Raw:       map[string]interface{}{"place_id": "ktm"},
	}
	s, mockStore, ctrl := newGeoTestServer(t, stubResolver{place: place})
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	mockStore.EXPECT().GetPointByLocation(place.Address).Return(nil, nil)
	mockStore.EXPECT().AddPoint(place.Address, place.Longitude, place.Latitude, place.Raw).Return(&schema.Point{ID: id}, nil)

	w := performRequest(s, "GET", "/api/getBasedOnlocation?location=Kathmandu", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id.Hex(), resp["id"])
	assert.Equal(t, place.Address, resp["location"])
}

func TestLocationDetailsByNameMissingParameter(t *testing.T) {
	s, _, ctrl := newGeoTestServer(t, stubResolver{})
	defer ctrl.Finish()

	w := performRequest(s, "GET", "/api/getBasedOnlocation", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
