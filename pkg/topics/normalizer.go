package topics

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
)

// Normalizer resolves freeform topic strings to canonical tags. Synonym
// regexes are compiled once at construction; unknown topics are appended to a
// log file for later taxonomy expansion.
type Normalizer struct {
	direct   map[string]string        // lowercase synonym/tag -> canonical
	partials map[string]*regexp.Regexp // canonical -> word-boundary alternation

	mu          sync.Mutex
	unknownPath string
}

// NewNormalizer builds a normalizer. unknownPath may be empty to disable the
// unknown-topics log.
func NewNormalizer(unknownPath string) *Normalizer {
	n := &Normalizer{
		direct:      make(map[string]string),
		partials:    make(map[string]*regexp.Regexp),
		unknownPath: unknownPath,
	}

	for _, tag := range Canonical {
		n.direct[tag] = tag
	}
	for tag, syns := range synonyms {
		escaped := make([]string, 0, len(syns))
		for _, s := range syns {
			n.direct[s] = tag
			escaped = append(escaped, regexp.QuoteMeta(s))
		}
		// \b keeps "park" from matching inside "parking".
		re, err := regexp.Compile(`\b(?:` + strings.Join(escaped, "|") + `)\b`)
		if err != nil {
			slog.Error("Failed to compile topic synonym pattern, skipping", "tag", tag, "error", err)
			continue
		}
		n.partials[tag] = re
	}
	return n
}

// Normalize maps raw topics to a sorted, deduplicated canonical list.
// Unmatched inputs are logged and dropped; they contribute no tag.
func (n *Normalizer) Normalize(raw []string) []string {
	seen := make(map[string]bool)
	for _, r := range raw {
		input := strings.ToLower(strings.TrimSpace(r))
		if input == "" {
			continue
		}

		// Stage 1: direct hit on a canonical tag or listed synonym.
		if tag, ok := n.direct[input]; ok {
			seen[tag] = true
			continue
		}

		// Stage 2: word-boundary partial match. Canonical order keeps the
		// winner deterministic when several tags' synonyms appear.
		matched := false
		for _, tag := range Canonical {
			re, ok := n.partials[tag]
			if !ok {
				continue
			}
			if re.MatchString(input) {
				seen[tag] = true
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		// Stage 3: miss. Record for taxonomy review, emit nothing.
		n.logUnknown(r)
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// logUnknown appends the raw topic to the unknown-topics log.
func (n *Normalizer) logUnknown(raw string) {
	slog.Debug("Unknown topic", "topic", raw)
	if n.unknownPath == "" {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	f, err := os.OpenFile(n.unknownPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("Could not open unknown topics log", "path", n.unknownPath, "error", err)
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "%s\t%s\n", time.Now().Format(time.RFC3339), raw)
}
