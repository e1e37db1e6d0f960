package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// searchHandler handles GET /api/search?q=...&banana=...&type=meetings|matters.
// The default searches matters, the richer corpus.
func (s *Server) searchHandler(c *gin.Context) {
	ctx := c.Request.Context()
	query := c.Query("q")
	banana := c.Query("banana")
	limit := limitParam(c)

	switch c.DefaultQuery("type", "matters") {
	case "meetings":
		hits, err := s.svcs.Search.SearchMeetings(ctx, banana, query, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"meetings": hits, "count": len(hits)})
	case "matters":
		hits, err := s.svcs.Search.SearchMatters(ctx, banana, query, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"matters": hits, "count": len(hits)})
	default:
		c.JSON(http.StatusBadRequest, errorResponse{Error: "type must be 'meetings' or 'matters'"})
	}
}
