package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) createPoint(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if len(fields) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	id, err := s.service.CreatePoint(fields)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.Hex()})
}

func (s *Server) getPoint(c *gin.Context) {
	point, err := s.service.GetPoint(c.Param("id"))
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, point)
}

func (s *Server) updatePoint(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if len(fields) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.service.UpdatePoint(c.Param("id"), fields); err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "point updated"})
}
