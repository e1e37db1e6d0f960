package llm

import (
	"fmt"
	"strings"
)

// itemResponseSchema constrains item summaries to the structured shape the
// processor persists.
var itemResponseSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"summary_markdown": map[string]interface{}{
			"type":        "string",
			"description": "Plain-language summary of the agenda item in markdown",
		},
		"citizen_impact_markdown": map[string]interface{}{
			"type":        "string",
			"description": "How this item affects residents, in markdown",
		},
		"topics": map[string]interface{}{
			"type":     "array",
			"items":    map[string]interface{}{"type": "string"},
			"minItems": 1,
			"maxItems": 3,
		},
		"confidence": map[string]interface{}{
			"type": "string",
			"enum": []string{"high", "medium", "low"},
		},
	},
	"required": []string{"summary_markdown", "topics", "confidence"},
}

const itemPromptHeader = `You are summarizing a single item from a city council agenda for residents.

Write plainly. Do not use legalese. If the item commits money, name the amount.
Choose 1-3 topics from exactly this list: housing, zoning, transportation,
budget, public_safety, environment, parks, utilities, economic_development,
education, health, planning, permits, contracts, appointments, other.

Respond with JSON: {"summary_markdown", "citizen_impact_markdown", "topics", "confidence"}.
Confidence reflects how well the source text supports your summary.`

// buildItemPrompt renders the unified item prompt.
func buildItemPrompt(title, text string) string {
	var sb strings.Builder
	sb.WriteString(itemPromptHeader)
	sb.WriteString("\n\nAGENDA ITEM TITLE:\n")
	sb.WriteString(title)
	if text != "" {
		sb.WriteString("\n\nATTACHED DOCUMENT TEXT:\n")
		sb.WriteString(text)
	}
	return sb.String()
}

const shortMeetingPrompt = `Summarize this city council meeting agenda for residents in markdown.
Cover each substantive item in one or two sentences; skip procedural items
(roll call, minutes approval, adjournment). Lead with the decisions that
commit money or change land use.

AGENDA TEXT:
%s`

const comprehensiveMeetingPrompt = `Summarize this long city council agenda packet for residents in markdown.

Structure the summary as:
1. A three-sentence overview of the meeting.
2. "Major items" - each substantive decision with its dollar amount or
   land-use change, two or three sentences apiece.
3. "Also on the agenda" - one line per remaining substantive item.

Skip procedural items entirely (roll call, minutes approval, adjournment).

AGENDA PACKET TEXT:
%s`

// monolithicPageThreshold selects between the two meeting prompts.
const monolithicPageThreshold = 30

// buildMeetingPrompt picks the meeting prompt by packet length.
func buildMeetingPrompt(text string, pageCount int) string {
	if pageCount <= monolithicPageThreshold {
		return fmt.Sprintf(shortMeetingPrompt, text)
	}
	return fmt.Sprintf(comprehensiveMeetingPrompt, text)
}
