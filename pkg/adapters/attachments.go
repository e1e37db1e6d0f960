package adapters

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Engagic/engagic-sub004/pkg/models"
)

// DefaultVersionPatterns match attachment names carrying a legislative
// version marker. The first capture group must be the numeric version.
var DefaultVersionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[\s\-_(]*leg\.?\s*ver\.?\s*(\d+)[\s)]*`),
	regexp.MustCompile(`(?i)[\s\-_(]*version\s*(\d+)[\s)]*`),
}

// DedupeAttachmentVersions collapses versioned duplicates of the same
// attachment, keeping the highest version per base name. Attachments without
// a version marker pass through untouched. Order is preserved by first
// occurrence of each base name.
func DedupeAttachmentVersions(attachments []models.Attachment, patterns []*regexp.Regexp) []models.Attachment {
	if len(patterns) == 0 {
		patterns = DefaultVersionPatterns
	}

	type candidate struct {
		att     models.Attachment
		version int
		order   int
	}
	best := make(map[string]candidate)
	var keys []string

	for i, att := range attachments {
		base, version := splitVersion(att.Name, patterns)
		key := strings.ToLower(base)

		existing, seen := best[key]
		if !seen {
			best[key] = candidate{att: att, version: version, order: i}
			keys = append(keys, key)
			continue
		}
		if version > existing.version {
			best[key] = candidate{att: att, version: version, order: existing.order}
		}
	}

	out := make([]models.Attachment, 0, len(keys))
	for _, key := range keys {
		out = append(out, best[key].att)
	}
	return out
}

// splitVersion strips the first matching version marker from name and
// returns the base name plus the parsed version (0 when unversioned).
func splitVersion(name string, patterns []*regexp.Regexp) (string, int) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		version, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		base := strings.TrimSpace(re.ReplaceAllString(name, " "))
		return base, version
	}
	return strings.TrimSpace(name), 0
}
