package concierge

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Version information
const (
	Version = "1.0.0"
	Name    = "Gardeo Concierge"
	GitHub  = "https://github.com/gardeo/concierge"
)

var asciiLogo = `
   ______                 _
  / ____/___  ____  _____(_)__  _________ ____
 / /   / __ \/ __ \/ ___/ / _ \/ ___/ __ '/ _ \
/ /___/ /_/ / / / / /__/ /  __/ /  / /_/ /  __/
\____/\____/_/ /_/\___/_/\___/_/   \__, /\___/
                                  /____/
`

func printVersion() {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	linkStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Underline(true)

	fmt.Println(logoStyle.Render(asciiLogo))
	fmt.Println(labelStyle.Render(Name))
	fmt.Printf("%s %s\n", labelStyle.Render("Version:"), valueStyle.Render(Version))
	fmt.Printf("%s %s\n", labelStyle.Render("GitHub:"), linkStyle.Render(GitHub))
	fmt.Println()
}
