package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)

	indentStyle = lipgloss.NewStyle().
			PaddingLeft(3)

	reasonTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	rawErrorTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Bold(true)

	rawErrorTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))
)

// RenderErrorBox renders a fatal error with dynamic wrapping to the
// terminal width.
func RenderErrorBox(title, reason, originalError string) string {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	contentWidth := width - 5

	header := indentStyle.Render(errorHeaderStyle.Render(fmt.Sprintf("✕ %s", title)))

	var bodyBlocks []string
	if reason != "" {
		bodyBlocks = append(bodyBlocks, reasonTextStyle.Width(contentWidth).Render(reason))
	}
	if originalError != "" {
		if len(bodyBlocks) > 0 {
			bodyBlocks = append(bodyBlocks, "")
		}
		bodyBlocks = append(bodyBlocks,
			rawErrorTitleStyle.Render("Raw Error:"),
			rawErrorTextStyle.Width(contentWidth).Render(strings.TrimSpace(originalError)),
		)
	}

	body := indentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, bodyBlocks...))
	return fmt.Sprintf("\n%s\n%s\n", header, body)
}
