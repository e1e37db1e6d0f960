package llm

import "strings"

// TruncationNotice is appended to any summary recovered from a truncated
// response.
const TruncationNotice = "\n\n*[Summary truncated due to length limits.]*"

// salvageSummary recovers the summary_markdown value from a response cut off
// mid-JSON. It scans for the field prefix and reads the string value until
// an unescaped closing quote or the end of the fragment.
func salvageSummary(text string) (string, bool) {
	idx := strings.Index(text, `"summary_markdown"`)
	if idx < 0 {
		return "", false
	}
	rest := text[idx+len(`"summary_markdown"`):]

	// Skip to the opening quote of the value.
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return "", false
	}
	rest = strings.TrimLeft(rest[colon+1:], " \t\r\n")
	if len(rest) == 0 || rest[0] != '"' {
		return "", false
	}
	rest = rest[1:]

	var sb strings.Builder
	escaped := false
	for i := 0; i < len(rest); i++ {
		ch := rest[i]
		if escaped {
			switch ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '"', '\\', '/':
				sb.WriteByte(ch)
			default:
				// Unrecognized escape (or a truncated \uXXXX); keep it raw.
				sb.WriteByte('\\')
				sb.WriteByte(ch)
			}
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '"':
			// Value closed cleanly before the cut.
			i = len(rest)
		default:
			sb.WriteByte(ch)
		}
	}

	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return "", false
	}
	return summary, true
}
