package prompt

import (
	"strings"

	"codelens/internal/domain/analysis"
)

const explanationMarker = "Explanation:"

// Parse extracts the suggested code and explanation from a model reply. The
// reply must contain a fenced code block (a fence tagged with the request
// language is preferred over a bare one) followed by an "Explanation:"
// section.
func Parse(reply, language string) (suggested, explanation string, err error) {
	markers := []string{"```" + language, "```"}

	for _, start := range markers {
		codeStart := strings.Index(reply, start)
		if codeStart == -1 {
			continue
		}
		codeStart += len(start)
		codeEnd := strings.Index(reply[codeStart:], "```")
		if codeEnd == -1 {
			continue
		}
		codeEnd += codeStart

		suggested = strings.TrimSpace(reply[codeStart:codeEnd])
		if expStart := strings.Index(reply[codeEnd:], explanationMarker); expStart != -1 {
			explanation = strings.TrimSpace(reply[codeEnd+expStart+len(explanationMarker):])
		}
		break
	}

	if suggested == "" || explanation == "" {
		return "", "", analysis.ErrUnparsableReply
	}
	return suggested, explanation, nil
}
