// Package ui implements the interactive terminal surface: prompts, menus,
// tables and progress indication. All input and output flows through an
// explicitly passed UI value so the pipeline can be driven without a real
// terminal.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// UI bundles the terminal input and output handles.
type UI struct {
	in      io.Reader
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a UI reading from in and writing to out.
func New(in io.Reader, out io.Writer) (u *UI) {
	u = &UI{
		in:      in,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	return u
}

// Printf writes formatted text to the output handle.
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.out, format, args...)
}

// Println writes a line to the output handle.
func (u *UI) Println(args ...interface{}) {
	fmt.Fprintln(u.out, args...)
}

// Banner displays the welcome panel.
func (u *UI) Banner() {
	title := styleTitle.Render("Portfolio Forge")
	subtitle := styleSubtitle.Render("Transform your professional presence into a portfolio site")
	panel := styleBanner.Render(title + "\n" + subtitle)
	fmt.Fprintln(u.out, panel)
}

// ReadLine prompts for and returns one trimmed line of input.
func (u *UI) ReadLine(prompt string) (input string) {
	fmt.Fprint(u.out, stylePrompt.Render(prompt))
	if u.scanner.Scan() {
		input = strings.TrimSpace(u.scanner.Text())
	}
	return input
}

// ReadMultiline prompts for free text and reads lines until end-of-input.
func (u *UI) ReadMultiline(prompt string) (text string) {
	fmt.Fprintln(u.out, stylePrompt.Render(prompt))
	fmt.Fprintln(u.out, styleDim.Render("(Press Ctrl+D on Unix/Linux or Ctrl+Z on Windows when done)"))

	var lines []string
	for u.scanner.Scan() {
		lines = append(lines, u.scanner.Text())
	}

	// A terminal delivers end-of-input as a one-shot signal, but a
	// bufio.Scanner stays done once it has seen it. Re-arm with a fresh
	// scanner so the prompts after the paste keep reading.
	u.scanner = bufio.NewScanner(u.in)

	text = strings.Join(lines, "\n")
	return text
}

// Successf writes a checkmarked status line.
func (u *UI) Successf(format string, args ...interface{}) {
	fmt.Fprintf(u.out, "%s %s\n", styleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

// Errorf writes a highlighted error line.
func (u *UI) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(u.out, styleError.Render(fmt.Sprintf(format, args...)))
}

// Header writes a section header line.
func (u *UI) Header(text string) {
	fmt.Fprintf(u.out, "\n%s\n", styleHeader.Render("=== "+text+" ==="))
}

// Styles used across the terminal surface.
//
//nolint:gochecknoglobals // Shared lipgloss styles
var (
	styleBanner = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 2)
	styleTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleSubtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
	stylePrompt   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleSuccess  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleHeader   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)
