package adapters

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// CivicClerk fetches meetings from the CivicClerk OData API. CivicClerk
// portals rarely publish structured items, so most meetings take the
// monolithic processing path on the packet PDF.
type CivicClerk struct {
	session *Session
	baseURL string // test override; empty means per-city api host
}

// NewCivicClerk builds the civicclerk adapter.
func NewCivicClerk(cfg *config.Config) *CivicClerk {
	return &CivicClerk{session: NewSession("civicclerk", cfg.Vendors.Get("civicclerk"))}
}

// Vendor returns the vendor tag.
func (c *CivicClerk) Vendor() string { return "civicclerk" }

func (c *CivicClerk) api(city config.CityConfig) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.api.civicclerk.com", city.VendorSlug)
}

type civicclerkEvents struct {
	Value []struct {
		ID             int    `json:"id"`
		EventName      string `json:"eventName"`
		StartDateTime  string `json:"startDateTime"` // "2025-11-10T18:00:00Z"
		EventLocation  string `json:"eventLocation"`
		PublishedFiles []struct {
			FileID int    `json:"fileId"`
			Type   string `json:"type"`
			Name   string `json:"name"`
		} `json:"publishedFiles"`
	} `json:"value"`
}

// FetchMeetings lists events in the window via an OData date filter.
func (c *CivicClerk) FetchMeetings(ctx context.Context, city config.CityConfig, daysBack, daysForward int) (*models.FetchResult, error) {
	base := c.api(city)
	win := newWindow(daysBack, daysForward)

	filter := url.QueryEscape(fmt.Sprintf(
		"startDateTime ge %s and startDateTime le %s",
		win.from.Format("2006-01-02T15:04:05Z"), win.to.Format("2006-01-02T15:04:05Z")))
	var events civicclerkEvents
	if err := c.session.GetJSON(ctx, base+"/v1/Events?$filter="+filter+"&$orderby=startDateTime", nil, &events); err != nil {
		return &models.FetchResult{Success: false, Error: err.Error(), ErrorType: "vendor"}, err
	}

	var meetings []models.MeetingRecord
	for _, ev := range events.Value {
		start, err := time.Parse(time.RFC3339, ev.StartDateTime)
		if err != nil {
			continue
		}

		rec := models.MeetingRecord{
			VendorID: fmt.Sprintf("%d", ev.ID),
			Title:    ev.EventName,
			Start:    start.UTC().Format("2006-01-02T15:04:05"),
		}
		for _, f := range ev.PublishedFiles {
			fileURL := fmt.Sprintf("%s/v1/Meetings/GetMeetingFileStream(fileId=%d,plainText=false)", base, f.FileID)
			switch {
			case strings.EqualFold(f.Type, "Agenda"):
				rec.AgendaURL = fileURL
			case strings.Contains(strings.ToLower(f.Type), "packet"):
				rec.PacketURL = fileURL
			}
		}
		meetings = append(meetings, rec)
	}

	return &models.FetchResult{Success: true, Meetings: meetings}, nil
}
