package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// SmartRender renders agent text for the terminal using glamour. Raw
// JSON payloads are wrapped in a fenced code block so they get syntax
// highlighting instead of being mangled as markdown.
func SmartRender(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
		if isJSON(trimmed) {
			input = fmt.Sprintf("```json\n%s\n```", trimmed)
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return input
	}

	out, err := renderer.Render(input)
	if err != nil {
		return input
	}
	return out
}

func isJSON(s string) bool {
	var js json.RawMessage
	return json.Unmarshal([]byte(s), &js) == nil
}
