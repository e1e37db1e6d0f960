package models

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Canonical ids always mix the city banana into the hash preimage: vendor ids
// are only unique within a vendor, so two cities on the same platform can
// reuse the same vendor-local identifier.

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9 ]+`)
var spaceRe = regexp.MustCompile(`\s+`)

// NormalizeTitle lowercases, strips punctuation, and collapses whitespace.
// Used as the last-resort matter key and for council member / committee ids.
func NormalizeTitle(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	t = nonAlnumRe.ReplaceAllString(t, "")
	return spaceRe.ReplaceAllString(t, " ")
}

// ShortHash returns the first 8 hex chars of sha256(s).
func ShortHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:8]
}

// MeetingID derives the canonical meeting id: banana + '_' + md5(vendor_id)[0:8].
func MeetingID(banana, vendorID string) string {
	sum := md5.Sum([]byte(vendorID))
	return banana + "_" + hex.EncodeToString(sum[:])[:8]
}

// ItemID derives the canonical agenda item id from its meeting, sequence, and title.
func ItemID(meetingID string, sequence int, title string) string {
	return meetingID + "_" + ShortHash(fmt.Sprintf("%d%s", sequence, title))
}

// MatterKey returns the preferred dedupe key for an item, falling back
// matter_file → vendor matter_id → normalized title. The second return value
// names which source won ("matter_file", "matter_id", "title").
func MatterKey(item ItemRecord) (string, string) {
	if f := strings.TrimSpace(item.MatterFile); f != "" {
		return f, "matter_file"
	}
	if id := strings.TrimSpace(item.MatterID); id != "" {
		return id, "matter_id"
	}
	return NormalizeTitle(item.Title), "title"
}

// MatterID derives the canonical matter id from the banana and preferred key.
func MatterID(banana, key string) string {
	return banana + "_matter_" + ShortHash(banana+key)
}

// CouncilMemberID derives the canonical council member id.
func CouncilMemberID(banana, name string) string {
	return banana + "_member_" + ShortHash(banana+NormalizeTitle(name))
}

// CommitteeID derives the canonical committee id.
func CommitteeID(banana, name string) string {
	return banana + "_comm_" + ShortHash(NormalizeTitle(name))
}

// AttachmentHash fingerprints an item's attachment URL set. The URLs are
// sorted first, so the hash is stable under input reordering and changes iff
// the URL set changes.
func AttachmentHash(attachments []Attachment) string {
	if len(attachments) == 0 {
		return ""
	}
	urls := make([]string, 0, len(attachments))
	for _, a := range attachments {
		urls = append(urls, a.URL)
	}
	sort.Strings(urls)
	sum := sha256.Sum256([]byte(strings.Join(urls, "\n")))
	return hex.EncodeToString(sum[:])
}

// MeetingFingerprint combines every item's attachment hash into one
// change-detection fingerprint for the whole meeting.
func MeetingFingerprint(items []ItemRecord) string {
	if len(items) == 0 {
		return ""
	}
	hashes := make([]string, 0, len(items))
	for _, it := range items {
		hashes = append(hashes, AttachmentHash(it.Attachments))
	}
	sort.Strings(hashes)
	sum := sha256.Sum256([]byte(strings.Join(hashes, "\n")))
	return hex.EncodeToString(sum[:])
}

// VendorFallbackID builds a stable pseudo vendor id for platforms that expose
// no native meeting identifier: a 12-hex truncation of
// sha256(normalized title + date + URL path).
func VendorFallbackID(title, date, urlPath string) string {
	sum := sha256.Sum256([]byte(NormalizeTitle(title) + date + urlPath))
	return hex.EncodeToString(sum[:])[:12]
}
