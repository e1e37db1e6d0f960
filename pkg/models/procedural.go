package models

import "regexp"

// proceduralPatterns match agenda boilerplate that carries no legislative
// content. Matching runs on the normalized title.
var proceduralPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^call to order`),
	regexp.MustCompile(`^roll call`),
	regexp.MustCompile(`^pledge of allegiance`),
	regexp.MustCompile(`^invocation`),
	regexp.MustCompile(`approval of (the )?minutes`),
	regexp.MustCompile(`^minutes( of .*)?$`),
	regexp.MustCompile(`^public comment`),
	regexp.MustCompile(`^general public comment`),
	regexp.MustCompile(`^adjournment?$`),
	regexp.MustCompile(`^adjourn`),
	regexp.MustCompile(`^recess`),
	regexp.MustCompile(`^closed session`),
	regexp.MustCompile(`^announcements?$`),
}

// IsProcedural reports whether an item title is ceremonial boilerplate.
// Procedural items are persisted for the public agenda view but never become
// matters and never reach the LLM.
func IsProcedural(title string) bool {
	normalized := NormalizeTitle(title)
	if normalized == "" {
		return true
	}
	for _, p := range proceduralPatterns {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}
