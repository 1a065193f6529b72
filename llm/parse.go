package llm

import (
	"encoding/json"
	"strings"
)

// ParseOrWrap tries to decode a JSON object out of raw model text into dst.
// Model output is not guaranteed well-formed, so a parse failure is a soft
// condition: wrap is called with the raw text and the operation continues
// with whatever wrap filled in. This function never fails.
func ParseOrWrap(raw string, dst any, wrap func(raw string)) {
	jsonStr, found := ExtractJSON(raw)
	if !found {
		wrap(strings.TrimSpace(raw))
		return
	}
	if err := json.Unmarshal([]byte(jsonStr), dst); err != nil {
		wrap(strings.TrimSpace(raw))
	}
}

// ExtractJSON pulls the first JSON object out of model text, tolerating
// markdown code fences and surrounding prose.
func ExtractJSON(text string) (string, bool) {
	cleaned := strings.TrimSpace(stripCodeFences(text))

	if json.Valid([]byte(cleaned)) && strings.HasPrefix(cleaned, "{") {
		return cleaned, true
	}

	return extractBalancedObject(cleaned)
}

// stripCodeFences removes ```json ... ``` style fences, keeping the body.
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}

	var out []string
	inFence := false
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// extractBalancedObject scans for the first balanced { ... } block that is
// valid JSON, tracking string literals and escapes.
func extractBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := s[start : i+1]
				if json.Valid([]byte(candidate)) {
					return candidate, true
				}
				return "", false
			}
		}
	}

	return "", false
}
