package render

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/theme"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestTheme(t *testing.T) {
	assert.Equal(t, "‹ Light › 1/21", plain(Theme(theme.Light)))
	assert.Equal(t, "‹ Oxocarbon › 21/21", plain(Theme(theme.Oxocarbon)))
}

func TestSliderKnob(t *testing.T) {
	tests := []struct {
		value float64
		knob  int
	}{
		{0, 0},
		{50, 17},
		{100, 33},
	}
	for _, tt := range tests {
		out := plain(Slider(tt.value, 40))
		assert.Equal(t, 40, utf8.RuneCountInString(out), "value %v", tt.value)
		assert.Equal(t, tt.knob, strings.Index(out, "●")/len("─"), "value %v", tt.value)
	}
	assert.Equal(t, "42.0", Slider(42, 4), "too narrow for a track")
}

func TestProgress(t *testing.T) {
	out := plain(Progress(25, 20))
	assert.Equal(t, 5, strings.Count(out, "█"))
	assert.Equal(t, 15, strings.Count(out, "░"))
}

func TestToggles(t *testing.T) {
	assert.Equal(t, "[ ] Check me!", plain(Checkbox(false)))
	assert.Equal(t, "[x] Check me!", plain(Checkbox(true)))
	assert.Equal(t, "Toggle me! (●   )", plain(Toggler(false)))
	assert.Equal(t, "Toggle me! (   ●)", plain(Toggler(true)))
	assert.Equal(t, "[ Submit ]", plain(Button("Submit", false)))
}

func TestScrollLines(t *testing.T) {
	lines := ScrollLines()
	assert.Len(t, lines, ScrollFiller+2)
	assert.Equal(t, ScrollTop, lines[0])
	assert.Equal(t, ScrollBottom, lines[len(lines)-1])
}

func TestStatus(t *testing.T) {
	s := app.State{Theme: theme.Nord}
	assert.Equal(t, "Nord · basic", plain(Status(s, app.VariantBasic)))
}
