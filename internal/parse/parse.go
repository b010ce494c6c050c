// Package parse turns free-form model output into structured records.
// Every caller gets a usable answer: layered JSON extraction first, and a
// keyword classifier as the terminal fallback that never fails.
package parse

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFenceRe  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// Object extracts the first well-formed JSON object from model output.
// Strategies in order, first success wins:
//  1. content of a ```json fenced block
//  2. content of any fenced block
//  3. balanced-brace scan from the first '{'
//  4. the whole trimmed text
//
// Each strategy fails silently and cedes to the next; the returned bytes
// are guaranteed to unmarshal as a JSON object.
func Object(text string) ([]byte, bool) {
	if m := jsonFenceRe.FindStringSubmatch(text); len(m) > 1 {
		if obj, ok := validObject(m[1]); ok {
			return obj, true
		}
	}

	if m := anyFenceRe.FindStringSubmatch(text); len(m) > 1 {
		if obj, ok := validObject(m[1]); ok {
			return obj, true
		}
	}

	if candidate, ok := balancedObject(text); ok {
		if obj, ok := validObject(candidate); ok {
			return obj, true
		}
	}

	return validObject(text)
}

// validObject checks that s parses as a JSON object and returns it trimmed
func validObject(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") {
		return nil, false
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &probe); err != nil {
		return nil, false
	}
	return []byte(s), true
}

// balancedObject scans for a brace-balanced object starting at the first
// '{'. Depth tracking is required so nested braces inside explanation text
// do not truncate the object early.
func balancedObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
