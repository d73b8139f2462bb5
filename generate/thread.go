package generate

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	MinThreadLength = 2
	MaxThreadLength = 10
)

var enumerationPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ClampThreadLength bounds a requested thread length to [MinThreadLength, MaxThreadLength].
func ClampThreadLength(length int) int {
	return min(max(length, MinThreadLength), MaxThreadLength)
}

// ParseThread turns a raw completion into thread items. A JSON array of
// strings is preferred; anything else is split on newlines. Either way each
// item loses a leading "N." prefix and surrounding whitespace, and blank
// items are dropped. The result is never nil.
func ParseThread(raw string) []string {
	candidates, ok := jsonItems(raw)
	if !ok {
		candidates = strings.Split(raw, "\n")
	}

	items := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		item := cleanItem(candidate)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func cleanItem(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = enumerationPrefix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// jsonItems extracts the strings of a top-level JSON array, tolerating a
// surrounding markdown code fence.
func jsonItems(raw string) ([]string, bool) {
	body := stripCodeFence(strings.TrimSpace(raw))
	if !strings.HasPrefix(body, "[") || !gjson.Valid(body) {
		return nil, false
	}

	result := gjson.Parse(body)
	if !result.IsArray() {
		return nil, false
	}

	var items []string
	for _, element := range result.Array() {
		if element.Type != gjson.String {
			return nil, false
		}
		items = append(items, element.String())
	}
	return items, true
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	// drop an info string such as "json"
	if newline := strings.IndexByte(s, '\n'); newline >= 0 && !strings.HasPrefix(strings.TrimSpace(s[:newline]), "[") {
		s = s[newline+1:]
	}
	return strings.TrimSpace(s)
}
