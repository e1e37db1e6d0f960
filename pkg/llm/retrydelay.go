package llm

import "regexp"

// The provider's 429 body spells retryDelay several ways depending on which
// layer produced the error. Both patterns tolerate single or double quotes
// and a bare key=value form.
var (
	retryDelayStringRe  = regexp.MustCompile(`(?i)['"]?retry[_-]?delay['"]?\s*[:=]\s*['"]?\s*([0-9]+(?:\.[0-9]+)?)\s*(ms|s)?['"]?`)
	retryDelaySecondsRe = regexp.MustCompile(`(?i)['"]?retry[_-]?delay['"]?\s*[:=]\s*\{[^}]*['"]?seconds['"]?\s*:\s*([0-9]+)`)
)
