package adapters

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Engagic/engagic-sub004/pkg/config"
	"github.com/Engagic/engagic-sub004/pkg/models"
)

// Legistar fetches meetings from the Legistar web API. Items, matters,
// sponsors, and roll-call votes are all first-class here, which makes it the
// richest item-level vendor.
type Legistar struct {
	session *Session
	setting config.VendorSetting
	baseURL string // test override; empty means webapi.legistar.com
}

// NewLegistar builds the legistar adapter.
func NewLegistar(cfg *config.Config) *Legistar {
	setting := cfg.Vendors.Get("legistar")
	return &Legistar{session: NewSession("legistar", setting), setting: setting}
}

// Vendor returns the vendor tag.
func (l *Legistar) Vendor() string { return "legistar" }

func (l *Legistar) api(city config.CityConfig, path string) string {
	base := l.baseURL
	if base == "" {
		base = "https://webapi.legistar.com"
	}
	u := fmt.Sprintf("%s/v1/%s%s", base, city.VendorSlug, path)
	if l.setting.APITokenEnv != "" {
		if token := os.Getenv(l.setting.APITokenEnv); token != "" {
			sep := "?"
			if strings.Contains(u, "?") {
				sep = "&"
			}
			u += sep + "token=" + url.QueryEscape(token)
		}
	}
	return u
}

type legistarEvent struct {
	EventID       int    `json:"EventId"`
	EventBodyID   int    `json:"EventBodyId"`
	EventBodyName string `json:"EventBodyName"`
	EventDate     string `json:"EventDate"` // "2025-11-10T00:00:00"
	EventTime     string `json:"EventTime"` // "6:00 PM"
	EventAgendaFile string `json:"EventAgendaFile"`
	EventMinutesFile string `json:"EventMinutesFile"`
	EventInSiteURL string `json:"EventInSiteURL"`
}

type legistarEventItem struct {
	EventItemID            int    `json:"EventItemId"`
	EventItemTitle         string `json:"EventItemTitle"`
	EventItemAgendaSequence int   `json:"EventItemAgendaSequence"`
	EventItemAgendaNumber  string `json:"EventItemAgendaNumber"`
	EventItemMatterID      int    `json:"EventItemMatterId"`
	EventItemMatterFile    string `json:"EventItemMatterFile"`
	EventItemMatterType    string `json:"EventItemMatterType"`
	EventItemMatterStatus  string `json:"EventItemMatterStatus"`
	EventItemActionText    string `json:"EventItemActionText"`
	EventItemPassedFlagName string `json:"EventItemPassedFlagName"`
	EventItemMover         string `json:"EventItemMover"`
	EventItemSeconder      string `json:"EventItemSeconder"`
}

type legistarAttachment struct {
	MatterAttachmentName      string `json:"MatterAttachmentName"`
	MatterAttachmentHyperlink string `json:"MatterAttachmentHyperlink"`
}

type legistarVote struct {
	VotePersonName string `json:"VotePersonName"`
	VoteValueName  string `json:"VoteValueName"`
	VoteSort       int    `json:"VoteSort"`
}

// FetchMeetings lists events in the window, then loads each event's items,
// matter attachments, and votes.
func (l *Legistar) FetchMeetings(ctx context.Context, city config.CityConfig, daysBack, daysForward int) (*models.FetchResult, error) {
	win := newWindow(daysBack, daysForward)

	filter := url.QueryEscape(fmt.Sprintf(
		"EventDate ge datetime'%s' and EventDate le datetime'%s'",
		win.from.Format("2006-01-02"), win.to.Format("2006-01-02")))
	var events []legistarEvent
	if err := l.session.GetJSON(ctx, l.api(city, "/events?$filter="+filter+"&$orderby=EventDate"), nil, &events); err != nil {
		return &models.FetchResult{Success: false, Error: err.Error(), ErrorType: "vendor"}, err
	}

	var meetings []models.MeetingRecord
	for _, ev := range events {
		rec, err := l.normalizeEvent(ctx, city, ev)
		if err != nil {
			// One broken event should not sink the city's whole window.
			continue
		}
		meetings = append(meetings, *rec)
	}
	return &models.FetchResult{Success: true, Meetings: meetings}, nil
}

// normalizeEvent maps one event plus its items into a MeetingRecord.
func (l *Legistar) normalizeEvent(ctx context.Context, city config.CityConfig, ev legistarEvent) (*models.MeetingRecord, error) {
	rec := &models.MeetingRecord{
		VendorID:     fmt.Sprintf("%d", ev.EventID),
		Title:        ev.EventBodyName,
		Start:        combineLegistarDate(ev.EventDate, ev.EventTime),
		AgendaURL:    ev.EventAgendaFile,
		VendorBodyID: fmt.Sprintf("%d", ev.EventBodyID),
		VendorBody:   ev.EventBodyName,
	}

	var items []legistarEventItem
	if err := l.session.GetJSON(ctx, l.api(city, fmt.Sprintf("/events/%d/eventitems?AgendaNote=1&MinutesNote=1", ev.EventID)), nil, &items); err != nil {
		return nil, err
	}

	for _, it := range items {
		if it.EventItemTitle == "" {
			continue
		}
		item := models.ItemRecord{
			VendorItemID: fmt.Sprintf("%d", it.EventItemID),
			Title:        it.EventItemTitle,
			Sequence:     it.EventItemAgendaSequence,
			AgendaNumber: it.EventItemAgendaNumber,
			MatterFile:   it.EventItemMatterFile,
			MatterType:   it.EventItemMatterType,
			Action:       it.EventItemActionText,
			VoteOutcome:  normalizeOutcome(it.EventItemPassedFlagName),
		}
		if it.EventItemMatterID != 0 {
			item.MatterID = fmt.Sprintf("%d", it.EventItemMatterID)
			item.Attachments = l.matterAttachments(ctx, city, it.EventItemMatterID)
		}
		if it.EventItemMover != "" {
			item.Sponsors = append(item.Sponsors, it.EventItemMover)
		}
		if it.EventItemSeconder != "" && it.EventItemSeconder != it.EventItemMover {
			item.Sponsors = append(item.Sponsors, it.EventItemSeconder)
		}
		item.Votes = l.eventItemVotes(ctx, city, it.EventItemID)
		rec.Items = append(rec.Items, item)
	}
	return rec, nil
}

// matterAttachments loads a matter's attachments, deduped by version.
func (l *Legistar) matterAttachments(ctx context.Context, city config.CityConfig, matterID int) []models.Attachment {
	var raw []legistarAttachment
	if err := l.session.GetJSON(ctx, l.api(city, fmt.Sprintf("/matters/%d/attachments", matterID)), nil, &raw); err != nil {
		return nil
	}
	atts := make([]models.Attachment, 0, len(raw))
	for _, a := range raw {
		atts = append(atts, models.Attachment{
			Name: a.MatterAttachmentName,
			URL:  a.MatterAttachmentHyperlink,
			Type: classifyAttachment(a.MatterAttachmentHyperlink),
		})
	}
	return DedupeAttachmentVersions(atts, nil)
}

// eventItemVotes loads roll-call votes for an event item; empty on error.
func (l *Legistar) eventItemVotes(ctx context.Context, city config.CityConfig, eventItemID int) []models.VoteRecord {
	var raw []legistarVote
	if err := l.session.GetJSON(ctx, l.api(city, fmt.Sprintf("/eventitems/%d/votes", eventItemID)), nil, &raw); err != nil {
		return nil
	}
	votes := make([]models.VoteRecord, 0, len(raw))
	for _, v := range raw {
		votes = append(votes, models.VoteRecord{
			MemberName: v.VotePersonName,
			Value:      normalizeVoteValue(v.VoteValueName),
			Sequence:   v.VoteSort,
		})
	}
	return votes
}

// combineLegistarDate merges the API's separate date and time fields into an
// ISO timestamp. Missing or unparseable time yields the bare date.
func combineLegistarDate(date, timeOfDay string) string {
	d, err := time.Parse("2006-01-02T15:04:05", date)
	if err != nil {
		return ""
	}
	t, err := time.Parse("3:04 PM", strings.TrimSpace(timeOfDay))
	if err != nil {
		return d.Format("2006-01-02")
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC).
		Format("2006-01-02T15:04:05")
}

// normalizeOutcome maps Legistar's passed-flag names to vote outcomes.
func normalizeOutcome(flag string) string {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "pass", "passed", "adopted", "approved":
		return "passed"
	case "fail", "failed", "rejected":
		return "failed"
	case "tabled":
		return "tabled"
	case "withdrawn":
		return "withdrawn"
	case "referred":
		return "referred"
	default:
		return ""
	}
}

// normalizeVoteValue maps vendor vote labels onto the canonical vote values.
func normalizeVoteValue(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yea", "aye", "yes", "in favor":
		return "yes"
	case "nay", "no", "against":
		return "no"
	case "abstain", "abstained":
		return "abstain"
	case "absent", "excused":
		return "absent"
	case "present":
		return "present"
	case "recused", "conflict":
		return "recused"
	default:
		return "not_voting"
	}
}

// classifyAttachment guesses the attachment type from its URL.
func classifyAttachment(url string) models.AttachmentType {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, ".pdf"):
		return models.AttachmentPDF
	case strings.Contains(lower, ".doc"):
		return models.AttachmentDoc
	case strings.Contains(lower, ".xls"), strings.Contains(lower, ".csv"):
		return models.AttachmentSpreadsheet
	default:
		return models.AttachmentUnknown
	}
}
