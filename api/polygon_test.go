package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spatialhub/geodata-api/schema"
	"github.com/spatialhub/geodata-api/store"
)

func zoneAPayload() map[string]interface{} {
	return map[string]interface{}{
		"location": "Zone A",
		"coordinates": []interface{}{
			[]interface{}{0.0, 0.0},
			[]interface{}{1.0, 0.0},
			[]interface{}{1.0, 1.0},
		},
		"density": 42.5,
	}
}

func TestCreatePolygonEndpoint(t *testing.T) {
	s, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	mockStore.EXPECT().GetPolygonByLocation("Zone A").Return(nil, nil)
	mockStore.EXPECT().AddPolygon("Zone A", [][]float64{{0, 0}, {1, 0}, {1, 1}}, 42.5).Return(&schema.Polygon{ID: id}, nil)

	w := performRequest(s, "POST", "/api/adding_polygons_details", zoneAPayload())
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id.Hex(), resp["id"])
}

func TestCreatePolygonEndpointConflict(t *testing.T) {
	s, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	mockStore.EXPECT().GetPolygonByLocation("Zone A").Return(&schema.Polygon{
		ID: primitive.NewObjectID(),
	}, nil)

	w := performRequest(s, "POST", "/api/adding_polygons_details", zoneAPayload())
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreatePolygonEndpointValidation(t *testing.T) {
	s, _, ctrl := newTestServer(t)
	defer ctrl.Finish()

	w := performRequest(s, "POST", "/api/adding_polygons_details", map[string]interface{}{
		"location": "Zone A",
		"density":  "high",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1013), resp.Code)
	assert.Len(t, resp.ValidationErrors, 2)
}

func TestGetPolygonEndpoint(t *testing.T) {
	s, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	mockStore.EXPECT().GetPolygon(id).Return(&schema.Polygon{
		ID:       id,
		Location: "Zone A",
		Geometry: schema.PolygonGeoJSON{Type: "Polygon", Coordinates: [][]float64{{0, 0}, {1, 0}, {1, 1}}},
		Density:  42.5,
	}, nil)

	w := performRequest(s, "GET", "/api/adding_polygons_details/"+id.Hex(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp schema.Polygon
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "Zone A", resp.Location)
	assert.Equal(t, [][]float64{{0, 0}, {1, 0}, {1, 1}}, resp.Geometry.Coordinates)
	assert.Equal(t, 42.5, resp.Density)
}

func TestGetPolygonEndpointInvalidID(t *testing.T) {
	s, _, ctrl := newTestServer(t)
	defer ctrl.Finish()

	w := performRequest(s, "GET", "/api/adding_polygons_details/123", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPolygonEndpointNotFound(t *testing.T) {
	s, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	mockStore.EXPECT().GetPolygon(id).Return(nil, store.ErrPolygonNotFound)

	w := performRequest(s, "GET", "/api/adding_polygons_details/"+id.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePolygonEndpoint(t *testing.T) {
	s, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	mockStore.EXPECT().GetPolygon(id).Return(&schema.Polygon{ID: id}, nil)
	mockStore.EXPECT().UpdatePolygon(id, "Zone A", [][]float64{{0, 0}, {1, 0}, {1, 1}}, 42.5).Return(nil)

	w := performRequest(s, "PUT", "/api/adding_polygons_details/"+id.Hex(), zoneAPayload())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdatePolygonEndpointNotFound(t *testing.T) {
	s, mockStore, ctrl := newTestServer(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	mockStore.EXPECT().GetPolygon(id).Return(nil, store.ErrPolygonNotFound)

	w := performRequest(s, "PUT", "/api/adding_polygons_details/"+id.Hex(), zoneAPayload())
	assert.Equal(t, http.StatusNotFound, w.Code)
}
