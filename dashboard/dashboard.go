package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	log "github.com/sirupsen/logrus"

	"github.com/spatialhub/geodata-api/schema"
)

const logPrefix = "dashboard"

// RecordSource - the read-only slice of the store the dashboards consume
type RecordSource interface {
	ListPoints() ([]schema.Point, error)
	ListPolygons() ([]schema.Polygon, error)
}

// Dashboard renders human-facing map views over the persisted records. It
// never mutates the store.
type Dashboard struct {
	source RecordSource
}

// New - a dashboard reading from the given source
func New(source RecordSource) *Dashboard {
	return &Dashboard{
		source: source,
	}
}

// PointFeatureCollection converts every stored point into a GeoJSON
// feature carrying its id and location name.
func (d *Dashboard) PointFeatureCollection() (*geojson.FeatureCollection, error) {
	points, err := d.source.ListPoints()
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, p := range points {
		if len(p.Geometry.Coordinates) < 2 {
			continue
		}

		feature := geojson.NewFeature(orb.Point{p.Geometry.Coordinates[0], p.Geometry.Coordinates[1]})
		feature.Properties = geojson.Properties{
			"id":       p.ID.Hex(),
			"location": p.Location,
		}
		fc.Append(feature)
	}

	return fc, nil
}

// PolygonFeatureCollection converts every stored polygon into a GeoJSON
// feature with its density attached, for choropleth rendering.
func (d *Dashboard) PolygonFeatureCollection() (*geojson.FeatureCollection, error) {
	polygons, err := d.source.ListPolygons()
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, p := range polygons {
		ring := make(orb.Ring, 0, len(p.Geometry.Coordinates)+1)
		for _, pair := range p.Geometry.Coordinates {
			if len(pair) != 2 {
				continue
			}
			ring = append(ring, orb.Point{pair[0], pair[1]})
		}
		if len(ring) == 0 {
			continue
		}
		// stored vertex sequences are not required to be closed rings
		if ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}

		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties = geojson.Properties{
			"id":       p.ID.Hex(),
			"location": p.Location,
			"density":  p.Density,
		}
		fc.Append(feature)
	}

	return fc, nil
}

// LocationGeoJSON serves the stored points as a feature collection
func (d *Dashboard) LocationGeoJSON(c *gin.Context) {
	fc, err := d.PointFeatureCollection()
	if err != nil {
		abortDashboard(c, err)
		return
	}

	c.JSON(http.StatusOK, fc)
}

// PopulationGeoJSON serves the stored polygons as a feature collection
func (d *Dashboard) PopulationGeoJSON(c *gin.Context) {
	fc, err := d.PolygonFeatureCollection()
	if err != nil {
		abortDashboard(c, err)
		return
	}

	c.JSON(http.StatusOK, fc)
}

// LocationPage renders a marker map of every stored point. An optional
// `focus` query parameter recenters the view on that record.
func (d *Dashboard) LocationPage(c *gin.Context) {
	fc, err := d.PointFeatureCollection()
	if err != nil {
		abortDashboard(c, err)
		return
	}

	data, err := json.Marshal(fc)
	if err != nil {
		abortDashboard(c, err)
		return
	}

	renderMapPage(c, locationTemplate, mapPageData{
		Title:   "Location Dashboard",
		GeoJSON: string(data),
		Focus:   c.Query("focus"),
	})
}

// PopulationPage renders the stored polygons shaded by density
func (d *Dashboard) PopulationPage(c *gin.Context) {
	fc, err := d.PolygonFeatureCollection()
	if err != nil {
		abortDashboard(c, err)
		return
	}

	data, err := json.Marshal(fc)
	if err != nil {
		abortDashboard(c, err)
		return
	}

	renderMapPage(c, populationTemplate, mapPageData{
		Title:   "Population Density Dashboard",
		GeoJSON: string(data),
		Focus:   c.Query("focus"),
	})
}

func abortDashboard(c *gin.Context, err error) {
	log.WithField("prefix", logPrefix).WithError(err).Error("render dashboard")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": "failed to load records",
	})
}
