package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// PrimeGov fetches meetings from the PrimeGov public portal API.
type PrimeGov struct {
	session *Session
	baseURL string // test override; empty means per-city portal host
}

// NewPrimeGov builds the primegov adapter.
func NewPrimeGov(cfg *config.Config) *PrimeGov {
	return &PrimeGov{session: NewSession("primegov", cfg.Vendors.Get("primegov"))}
}

// Vendor returns the vendor tag.
func (p *PrimeGov) Vendor() string { return "primegov" }

func (p *PrimeGov) portal(city config.CityConfig) string {
	if p.baseURL != "" {
		return p.baseURL
	}
	return fmt.Sprintf("https://%s.primegov.com", city.VendorSlug)
}

// primegovMeeting is the portal's meeting shape.
type primegovMeeting struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	DateTime     string `json:"dateTime"` // "2025-11-10T18:00:00"
	DocumentList []struct {
		TemplateName       string `json:"templateName"`
		TemplateID         int    `json:"templateId"`
		CompileOutputType  int    `json:"compileOutputType"`
		CompiledFileID     int    `json:"compiledFileId"`
		CompiledMeetingDoc int    `json:"compiledMeetingDocumentId"`
	} `json:"documentList"`
	VideoURL string `json:"videoUrl"`
}

// FetchMeetings lists upcoming and archived meetings inside the window.
func (p *PrimeGov) FetchMeetings(ctx context.Context, city config.CityConfig, daysBack, daysForward int) (*models.FetchResult, error) {
	base := p.portal(city)
	win := newWindow(daysBack, daysForward)

	var upcoming, archived []primegovMeeting
	if err := p.session.GetJSON(ctx, base+"/api/v2/PublicPortal/ListUpcomingMeetings", nil, &upcoming); err != nil {
		return &models.FetchResult{Success: false, Error: err.Error(), ErrorType: "vendor"}, err
	}
	// Archived list is best-effort: some portals disable it.
	archivedURL := fmt.Sprintf("%s/api/v2/PublicPortal/ListArchivedMeetings?year=%d", base, time.Now().Year())
	_ = p.session.GetJSON(ctx, archivedURL, nil, &archived)

	var meetings []models.MeetingRecord
	for _, m := range append(upcoming, archived...) {
		start, err := time.Parse("2006-01-02T15:04:05", m.DateTime)
		if err != nil || !win.contains(start) {
			continue
		}

		rec := models.MeetingRecord{
			VendorID: fmt.Sprintf("%d", m.ID),
			Title:    m.Title,
			Start:    m.DateTime,
		}
		for _, doc := range m.DocumentList {
			url := fmt.Sprintf("%s/Public/CompiledDocument?meetingTemplateId=%d&compileOutputType=%d",
				base, doc.TemplateID, doc.CompileOutputType)
			switch {
			case strings.EqualFold(doc.TemplateName, "Agenda"):
				rec.AgendaURL = url
			case strings.Contains(strings.ToLower(doc.TemplateName), "packet"):
				rec.PacketURL = url
			}
		}
		if m.VideoURL != "" {
			rec.Participation = &models.Participation{VirtualURL: m.VideoURL, IsHybrid: true}
		}
		meetings = append(meetings, rec)
	}

	return &models.FetchResult{Success: true, Meetings: meetings}, nil
}
