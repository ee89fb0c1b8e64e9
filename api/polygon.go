package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) createPolygon(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if len(fields) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	id, err := s.service.CreatePolygon(fields)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

func (s *Server) getPolygon(c *gin.Context) {
	polygon, err := s.service.GetPolygon(c.Param("id"))
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, polygon)
}

func (s *Server) updatePolygon(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if len(fields) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.service.UpdatePolygon(c.Param("id"), fields); err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "polygon updated"})
}
