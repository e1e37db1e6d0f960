package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Engagic/engagic-sub004/ent"
)

// listMattersHandler handles GET /api/cities/:banana/matters.
func (s *Server) listMattersHandler(c *gin.Context) {
	matters, err := s.svcs.Matter.ListByCity(c.Request.Context(), c.Param("banana"), limitParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matters": matters, "count": len(matters)})
}

// matterDetailResponse is a matter with its appearance history and recorded
// votes.
type matterDetailResponse struct {
	Matter      *ent.Matter             `json:"matter"`
	Appearances []*ent.MatterAppearance `json:"appearances"`
	Votes       []*ent.Vote             `json:"votes"`
}

// getMatterHandler handles GET /api/matters/:id.
func (s *Server) getMatterHandler(c *gin.Context) {
	ctx := c.Request.Context()

	matter, err := s.svcs.Matter.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	appearances, err := s.svcs.Appearance.ListForMatter(ctx, matter.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	votes, err := s.svcs.Vote.ListForMatter(ctx, matter.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &matterDetailResponse{
		Matter:      matter,
		Appearances: appearances,
		Votes:       votes,
	})
}
