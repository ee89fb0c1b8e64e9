package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/spatialhub/geodata-api/dashboard"
	"github.com/spatialhub/geodata-api/geo"
	"github.com/spatialhub/geodata-api/logmodule"
	"github.com/spatialhub/geodata-api/records"
	"github.com/spatialhub/geodata-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// Core record operations
	service *records.Service

	// External services
	resolver geo.PlaceResolver

	// Read-only map views
	dashboard *dashboard.Dashboard
}

// NewServer new instance of server
func NewServer(mongoStore store.MongoStore, resolver geo.PlaceResolver) *Server {
	return &Server{
		mongoStore: mongoStore,
		service:    records.NewService(mongoStore),
		resolver:   resolver,
		dashboard:  dashboard.New(mongoStore),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.GET("/locationdetails", s.locationDetails)
		apiRoute.GET("/getBasedOnlocation", s.locationDetailsByName)

		apiRoute.POST("/adding_details", s.createPoint)
		apiRoute.GET("/adding_details/:id", s.getPoint)
		apiRoute.PUT("/adding_details/:id", s.updatePoint)

		apiRoute.POST("/adding_polygons_details", s.createPolygon)
		apiRoute.GET("/adding_polygons_details/:id", s.getPolygon)
		apiRoute.PUT("/adding_polygons_details/:id", s.updatePolygon)
	}

	dashboardCORS := cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	})

	locationRoute := r.Group("/location")
	locationRoute.Use(logmodule.Ginrus("Dashboard"))
	locationRoute.Use(dashboardCORS)
	{
		locationRoute.GET("/", s.dashboard.LocationPage)
		locationRoute.GET("/geojson", s.dashboard.LocationGeoJSON)
	}

	populationRoute := r.Group("/population")
	populationRoute.Use(logmodule.Ginrus("Dashboard"))
	populationRoute.Use(dashboardCORS)
	{
		populationRoute.GET("/", s.dashboard.PopulationPage)
		populationRoute.GET("/geojson", s.dashboard.PopulationGeoJSON)
	}

	r.GET("/healthz", s.healthz)
	r.GET("/information", s.information)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Geodata 0.1",
		},
	})
}

// abortWithServiceError translates a record service outcome into its
// status code. No business interpretation happens here.
func (s *Server) abortWithServiceError(c *gin.Context, err error) {
	if verr, ok := err.(*records.ValidationError); ok {
		abortWithEncoding(c, http.StatusBadRequest, validationErrorJSON(verr))
		return
	}

	switch err {
	case records.ErrInvalidID:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID)
	case store.ErrLocationTaken:
		abortWithEncoding(c, http.StatusConflict, errorLocationTaken)
	case store.ErrPointNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorPointNotFound)
	case store.ErrPolygonNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorPolygonNotFound)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
