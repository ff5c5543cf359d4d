// Package render formats showcase state as plain text for line-based views.
package render

import (
	"fmt"
	"strings"

	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/theme"
	"github.com/ijuttt/showcase/internal/ui/widgets"
)

// Scroll area content.
const (
	ScrollTop    = "Scroll me!"
	ScrollBottom = "You did it!"
	ScrollFiller = 40
)

// Theme formats the theme selector line.
func Theme(id theme.ID) string {
	return fmt.Sprintf("%s‹ %s ›%s %s%d/%d%s",
		Bold, id, Reset, Dim, int(id)+1, len(theme.All), Reset)
}

// Slider formats the slider track with its knob and value.
func Slider(value float64, width int) string {
	label := fmt.Sprintf(" %5.1f", value)
	track := width - len(label)
	if track < 3 {
		return strings.TrimSpace(label)
	}

	bar := widgets.NewProgressBar(value, track-1).WithRange(app.SliderMin, app.SliderMax)
	knob := bar.FilledCells()
	return strings.Repeat("─", knob) + Cyan + "●" + Reset +
		strings.Repeat("─", track-1-knob) + label
}

// Progress formats the progress bar bound to the slider value.
func Progress(value float64, width int) string {
	bar := widgets.NewProgressBar(value, width).
		WithRange(app.SliderMin, app.SliderMax).
		WithColors("", "")
	return Blue + bar.Render() + Reset
}

// Checkbox formats the "Check me!" box.
func Checkbox(checked bool) string {
	if checked {
		return Green + "[x]" + Reset + " Check me!"
	}
	return "[ ] Check me!"
}

// Toggler formats the "Toggle me!" switch.
func Toggler(on bool) string {
	if on {
		return "Toggle me! " + Green + "(   ●)" + Reset
	}
	return "Toggle me! " + Dim + "(●   )" + Reset
}

// Button formats a push button.
func Button(label string, enabled bool) string {
	if !enabled {
		return Dim + "[ " + label + " ]" + Reset
	}
	return Bold + "[ " + label + " ]" + Reset
}

// ScrollLines returns the scroll area content, one entry per line.
func ScrollLines() []string {
	lines := make([]string, 0, ScrollFiller+2)
	lines = append(lines, ScrollTop)
	for i := 0; i < ScrollFiller; i++ {
		lines = append(lines, "")
	}
	return append(lines, ScrollBottom)
}

// Status formats the footer status line.
func Status(s app.State, v app.Variant) string {
	return fmt.Sprintf("%s%s%s · %s", Bold, s.Theme, Reset, v)
}

// Help returns the help text for the footer.
func Help() string {
	return "tab/ctrl+p: Next/Prev  ←/→: Adjust  pgup/pgdn: ±10  space/enter: Toggle  ↑/↓: Scroll  ctrl+c: Quit\n"
}
