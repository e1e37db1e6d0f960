package adapters

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"time"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// CivicPlus fetches meetings from the AgendaCenter RSS feed. CivicPlus
// throttles aggressively, hence the 8s+jitter politeness delay in the vendor
// settings table.
type CivicPlus struct {
	session *Session
	baseURL string // test override; empty means per-city civicplus host
}

// NewCivicPlus builds the civicplus adapter.
func NewCivicPlus(cfg *config.Config) *CivicPlus {
	return &CivicPlus{session: NewSession("civicplus", cfg.Vendors.Get("civicplus"))}
}

// Vendor returns the vendor tag.
func (c *CivicPlus) Vendor() string { return "civicplus" }

func (c *CivicPlus) host(city config.CityConfig) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.civicplus.com", city.VendorSlug)
}

type agendaCenterRSS struct {
	Channel struct {
		Items []struct {
			Title   string `xml:"title"`
			Link    string `xml:"link"`
			PubDate string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

// FetchMeetings parses the AgendaCenter RSS feed for agenda postings.
func (c *CivicPlus) FetchMeetings(ctx context.Context, city config.CityConfig, daysBack, daysForward int) (*models.FetchResult, error) {
	base := c.host(city)
	win := newWindow(daysBack, daysForward)

	body, err := c.session.Get(ctx, base+"/AgendaCenter/RSS.aspx?CatIDs=all", nil)
	if err != nil {
		return &models.FetchResult{Success: false, Error: err.Error(), ErrorType: "vendor"}, err
	}

	var feed agendaCenterRSS
	if err := xml.Unmarshal(body, &feed); err != nil {
		err = fmt.Errorf("%w: malformed RSS: %v", ErrVendorRequest, err)
		return &models.FetchResult{Success: false, Error: err.Error(), ErrorType: "vendor"}, err
	}

	var meetings []models.MeetingRecord
	for _, item := range feed.Channel.Items {
		start, err := time.Parse(time.RFC1123Z, item.PubDate)
		if err != nil {
			if start, err = time.Parse(time.RFC1123, item.PubDate); err != nil {
				continue
			}
		}
		if !win.contains(start) {
			continue
		}

		link := item.Link
		if u, err := url.Parse(link); err == nil && u.Host == "" {
			link = base + u.Path
		}

		startISO := start.Format("2006-01-02T15:04:05")
		urlPath := link
		if u, err := url.Parse(link); err == nil {
			urlPath = u.Path
		}
		meetings = append(meetings, models.MeetingRecord{
			// AgendaCenter exposes no native meeting id.
			VendorID:  models.VendorFallbackID(item.Title, startISO, urlPath),
			Title:     item.Title,
			Start:     startISO,
			AgendaURL: link,
		})
	}

	return &models.FetchResult{Success: true, Meetings: meetings}, nil
}
