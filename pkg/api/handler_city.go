package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// listCitiesHandler handles GET /api/cities.
func (s *Server) listCitiesHandler(c *gin.Context) {
	cities, err := s.svcs.City.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities, "count": len(cities)})
}

// getCityHandler handles GET /api/cities/:banana.
func (s *Server) getCityHandler(c *gin.Context) {
	city, err := s.svcs.City.Get(c.Request.Context(), c.Param("banana"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// listMembersHandler handles GET /api/cities/:banana/members.
func (s *Server) listMembersHandler(c *gin.Context) {
	members, err := s.svcs.Council.ListByCity(c.Request.Context(), c.Param("banana"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members, "count": len(members)})
}

// listCommitteesHandler handles GET /api/cities/:banana/committees.
func (s *Server) listCommitteesHandler(c *gin.Context) {
	committees, err := s.svcs.Committee.ListByCity(c.Request.Context(), c.Param("banana"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"committees": committees, "count": len(committees)})
}

// limitParam parses the optional ?limit= query value.
func limitParam(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
