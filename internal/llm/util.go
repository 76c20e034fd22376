// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock isolates the JSON document in a model reply. LLMs often wrap
// JSON in ```json ... ``` blocks or add conversational text around it even
// when instructed not to; both are stripped. Text without a complete JSON
// object or array is returned unchanged.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Strip preamble and trailing chatter around the first JSON document.
	objIdx := strings.IndexByte(text, '{')
	arrIdx := strings.IndexByte(text, '[')
	if objIdx >= 0 && (arrIdx < 0 || objIdx < arrIdx) {
		if doc := extractJSONObject(text); doc != "" {
			return doc
		}
	} else if arrIdx >= 0 {
		if doc := extractJSONArray(text); doc != "" {
			return doc
		}
	}

	return text
}

// extractJSONObject returns the first balanced JSON object in text, or ""
// when the text holds no complete object.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the first balanced JSON array in text, or "" when
// the text holds no complete array.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

// extractBalanced scans from the first open delimiter to its balanced close.
// Delimiters inside JSON strings do not count, and escaped quotes do not end
// a string.
func extractBalanced(text string, open, close byte) string {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			if inString {
				escaped = true
			}
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
