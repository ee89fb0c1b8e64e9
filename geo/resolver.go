package geo

import (
	"encoding/json"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/spatialhub/geodata-api/external/geoinfo"
)

var (
	ErrPlaceNotFound          = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("place resolver is not initialized")
)

// Place - a resolved geocoding result: the display address, its
// coordinates and the raw provider payload.
type Place struct {
	Address   string
	Latitude  float64
	Longitude float64
	Raw       map[string]interface{}
}

// PlaceResolver - interface for resolving coordinates or names to places
type PlaceResolver interface {
	Reverse(lat, lng float64) (*Place, error)
	Lookup(name string) (*Place, error)
}

// GeocodingPlaceResolver resolves places through the maps client.
type GeocodingPlaceResolver struct {
	client geoinfo.GeoInfo
}

func NewGeocodingPlaceResolver(client geoinfo.GeoInfo) *GeocodingPlaceResolver {
	return &GeocodingPlaceResolver{
		client: client,
	}
}

// Reverse resolves a coordinate pair to a place. The queried coordinates
// are kept on the returned place since they identify the stored geometry.
func (g *GeocodingPlaceResolver) Reverse(lat, lng float64) (*Place, error) {
	geos, err := g.client.Reverse(lat, lng)
	if err != nil {
		return nil, err
	}
	if len(geos) == 0 {
		return nil, ErrPlaceNotFound
	}

	place, err := placeFromResult(geos[0])
	if err != nil {
		return nil, err
	}
	place.Latitude = lat
	place.Longitude = lng

	return place, nil
}

// Lookup resolves a free-text place name to a place, with the provider's
// coordinates for it.
func (g *GeocodingPlaceResolver) Lookup(name string) (*Place, error) {
	geos, err := g.client.Lookup(name)
	if err != nil {
		return nil, err
	}
	if len(geos) == 0 {
		return nil, ErrPlaceNotFound
	}

	place, err := placeFromResult(geos[0])
	if err != nil {
		return nil, err
	}
	place.Latitude = geos[0].Geometry.Location.Lat
	place.Longitude = geos[0].Geometry.Location.Lng

	return place, nil
}

// placeFromResult keeps the full provider result as an untyped payload so
// it can be stored alongside the record.
func placeFromResult(result maps.GeocodingResult) (*Place, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	var details map[string]interface{}
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}

	return &Place{
		Address: result.FormattedAddress,
		Raw:     details,
	}, nil
}
