package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spatialhub/geodata-api/geo"
	"github.com/spatialhub/geodata-api/utils"
)

// locationDetails reverse-geocodes a coordinate pair and persists the
// resolved place as a point record. Coordinate ranges are enforced here,
// unlike on the manual create endpoint.
func (s *Server) locationDetails(c *gin.Context) {
	latParam := c.Query("latitude")
	lngParam := c.Query("longitude")
	if latParam == "" || lngParam == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !utils.ValidLatitude(lat) || !utils.ValidLongitude(lng) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	place, err := s.resolver.Reverse(lat, lng)
	if err != nil {
		s.abortWithResolverError(c, err)
		return
	}

	s.respondWithResolvedPlace(c, place)
}

// locationDetailsByName forward-geocodes a free-text place name and
// persists the resolved place as a point record.
func (s *Server) locationDetailsByName(c *gin.Context) {
	name := c.Query("location")
	if name == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	place, err := s.resolver.Lookup(name)
	if err != nil {
		s.abortWithResolverError(c, err)
		return
	}

	s.respondWithResolvedPlace(c, place)
}

func (s *Server) abortWithResolverError(c *gin.Context, err error) {
	switch err {
	case geo.ErrPlaceNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorLocationNotResolved)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorGeoService, err)
	}
}

func (s *Server) respondWithResolvedPlace(c *gin.Context, place *geo.Place) {
	point, err := s.service.CreateResolvedPoint(place.Address, place.Longitude, place.Latitude, place.Raw)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        point.ID.Hex(),
		"location":  place.Address,
		"latitude":  place.Latitude,
		"longitude": place.Longitude,
		"details":   place.Raw,
	})
}
