package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Style identifies one of the fixed visual themes. The selection is carried
// through to the emitter but does not alter the generated files - a
// documented limitation of the current design.
type Style int

// The closed set of visual themes, in menu order.
const (
	StyleModernMinimalist Style = iota + 1
	StyleProfessionalCorporate
	StyleCreativePortfolio
	StyleDarkMode
	StyleTechMinimal
)

// Styles lists every theme in menu order.
//
//nolint:gochecknoglobals // Fixed menu ordering
var Styles = []Style{
	StyleModernMinimalist,
	StyleProfessionalCorporate,
	StyleCreativePortfolio,
	StyleDarkMode,
	StyleTechMinimal,
}

// Name returns the theme's display name.
func (s Style) Name() (name string) {
	switch s {
	case StyleModernMinimalist:
		name = "Modern Minimalist"
	case StyleProfessionalCorporate:
		name = "Professional Corporate"
	case StyleCreativePortfolio:
		name = "Creative Portfolio"
	case StyleDarkMode:
		name = "Dark Mode"
	case StyleTechMinimal:
		name = "Tech Minimal"
	}
	return name
}

// Description returns the theme's menu description.
func (s Style) Description() (description string) {
	switch s {
	case StyleModernMinimalist:
		description = "Clean, spacious design with subtle animations and modern typography"
	case StyleProfessionalCorporate:
		description = "Traditional layout with sophisticated color scheme and structured sections"
	case StyleCreativePortfolio:
		description = "Dynamic layout with bold colors and interactive elements"
	case StyleDarkMode:
		description = "Eye-friendly dark theme with contrasting elements"
	case StyleTechMinimal:
		description = "Code-inspired design with terminal-like elements"
	}
	return description
}

// ColorScheme returns the theme's color-scheme label.
func (s Style) ColorScheme() (scheme string) {
	switch s {
	case StyleModernMinimalist:
		scheme = "Monochromatic with accent colors"
	case StyleProfessionalCorporate:
		scheme = "Blue and gray professional palette"
	case StyleCreativePortfolio:
		scheme = "Vibrant complementary colors"
	case StyleDarkMode:
		scheme = "Dark background with light text"
	case StyleTechMinimal:
		scheme = "Dark with neon accents"
	}
	return scheme
}

// Identifier returns the normalized style identifier: the display name
// lowercased with spaces replaced by underscores.
func (s Style) Identifier() (id string) {
	id = strings.ReplaceAll(strings.ToLower(s.Name()), " ", "_")
	return id
}

// StyleFromChoice maps a menu selection to its theme. Only "1" through "5"
// are accepted.
func StyleFromChoice(choice string) (style Style, ok bool) {
	switch choice {
	case "1":
		style, ok = StyleModernMinimalist, true
	case "2":
		style, ok = StyleProfessionalCorporate, true
	case "3":
		style, ok = StyleCreativePortfolio, true
	case "4":
		style, ok = StyleDarkMode, true
	case "5":
		style, ok = StyleTechMinimal, true
	}
	return style, ok
}

// SelectStyle displays the style menu and loops until the user supplies a
// valid selection, then returns the chosen theme. It errors only when the
// input stream ends before a valid selection arrives.
func (u *UI) SelectStyle() (style Style, err error) {
	u.Header("Portfolio Style Selection")

	headers := []string{"Style #", "Name", "Description", "Color Scheme"}
	rows := make([][]string, 0, len(Styles))
	for i, s := range Styles {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Name(),
			s.Description(),
			s.ColorScheme(),
		})
	}
	u.Println(RenderTable(headers, rows))

	for {
		fmt.Fprint(u.out, stylePrompt.Render("\nSelect a style number (1-5): "))
		if !u.scanner.Scan() {
			err = errors.New("input ended before a style was selected")
			return style, err
		}
		choice := strings.TrimSpace(u.scanner.Text())
		var ok bool
		style, ok = StyleFromChoice(choice)
		if ok {
			return style, err
		}
		u.Errorf("Invalid choice. Please select a number between 1-5.")
	}
}
