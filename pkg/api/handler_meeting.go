package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Engagic/engagic-sub004/ent"
)

// listMeetingsHandler handles GET /api/cities/:banana/meetings.
func (s *Server) listMeetingsHandler(c *gin.Context) {
	meetings, err := s.svcs.Meeting.ListByCity(c.Request.Context(), c.Param("banana"), limitParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meetings": meetings, "count": len(meetings)})
}

// meetingDetailResponse is the full meeting view with its agenda and the
// display summary.
type meetingDetailResponse struct {
	Meeting *ent.Meeting      `json:"meeting"`
	Items   []*ent.AgendaItem `json:"items"`
	Summary string            `json:"summary,omitempty"`
}

// getMeetingHandler handles GET /api/meetings/:id.
func (s *Server) getMeetingHandler(c *gin.Context) {
	meeting, err := s.svcs.Meeting.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &meetingDetailResponse{
		Meeting: meeting,
		Items:   meeting.Edges.Items,
		Summary: displaySummary(meeting),
	})
}

// displaySummary returns the meeting-level summary when one exists (the
// monolithic path) and otherwise composes one from the item summaries in
// agenda order.
func displaySummary(m *ent.Meeting) string {
	if m.Summary != nil {
		return *m.Summary
	}

	var b strings.Builder
	for _, item := range m.Edges.Items {
		if item.Summary == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## ")
		b.WriteString(item.Title)
		b.WriteString("\n\n")
		b.WriteString(*item.Summary)
	}
	return b.String()
}
