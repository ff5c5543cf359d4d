package gocui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutStacksRows(t *testing.T) {
	l := NewLayout(100, 40, true)

	theme := l.ThemeBounds()
	assert.Equal(t, Bounds{0, 0, MaxFormWidth, 2}, theme)

	text, submit := l.TextBounds(), l.SubmitBounds()
	assert.Equal(t, text.Y0, submit.Y0)
	assert.Less(t, text.X1, submit.X0, "input and button must not overlap")
	assert.Equal(t, MaxFormWidth, submit.X1)

	assert.Equal(t, theme.Y1+1, text.Y0)
	assert.Equal(t, text.Y1+1, l.SliderBounds().Y0)
	assert.Equal(t, l.SliderBounds().Y1+1, l.ProgressBounds().Y0)
	assert.Equal(t, 1, l.SliderBounds().Height())

	scroll := l.ScrollBounds()
	assert.Equal(t, ScrollHeight-2, scroll.Height())
	assert.Less(t, scroll.X1, l.CheckboxBounds().X0)
	assert.Equal(t, scroll.Y0, l.CheckboxBounds().Y0)
	assert.Equal(t, scroll.Y1, l.TogglerBounds().Y1)

	user, ok := l.UsernameBounds()
	assert.True(t, ok)
	assert.Equal(t, scroll.Y1+1, user.Y0)
	assert.False(t, l.IsTerminalTooSmall())
}

func TestLayoutWithoutUsername(t *testing.T) {
	l := NewLayout(50, 30, false)
	_, ok := l.UsernameBounds()
	assert.False(t, ok)
	assert.Equal(t, 49, l.ThemeBounds().X1, "narrow terminals use the full width")
}

func TestLayoutFooterAtBottom(t *testing.T) {
	l := NewLayout(80, 30, true)
	f := l.FooterBounds()
	assert.Equal(t, 29, f.Y1)
	assert.Equal(t, 79, f.X1)
}

func TestLayoutTooSmall(t *testing.T) {
	assert.True(t, NewLayout(30, 40, false).IsTerminalTooSmall())
	assert.True(t, NewLayout(80, 20, true).IsTerminalTooSmall())
	assert.False(t, NewLayout(80, 24, false).IsTerminalTooSmall())
}

func TestLayoutBoundsValidAtMinWidth(t *testing.T) {
	for _, height := range []int{25, 40} {
		l := NewLayout(MinFormWidth, height, true)
		assert.False(t, l.IsTerminalTooSmall())

		user, _ := l.UsernameBounds()
		for name, b := range map[string]Bounds{
			"theme":    l.ThemeBounds(),
			"text":     l.TextBounds(),
			"submit":   l.SubmitBounds(),
			"slider":   l.SliderBounds(),
			"progress": l.ProgressBounds(),
			"scroll":   l.ScrollBounds(),
			"checkbox": l.CheckboxBounds(),
			"toggler":  l.TogglerBounds(),
			"username": user,
			"footer":   l.FooterBounds(),
		} {
			assert.True(t, b.Valid(), "%s %+v", name, b)
		}
		assert.Less(t, l.TextBounds().X1, l.SubmitBounds().X0)
	}
}

func TestLayoutBoundsNeverInverted(t *testing.T) {
	for _, width := range []int{1, 10, 14, 15, 20} {
		l := NewLayout(width, 3, true)
		assert.True(t, l.IsTerminalTooSmall())
		for _, b := range []Bounds{
			l.TextBounds(),
			l.SubmitBounds(),
			l.ScrollBounds(),
			l.CheckboxBounds(),
			l.FooterBounds(),
			l.NoticeBounds(),
		} {
			assert.True(t, b.Valid(), "width %d: %+v", width, b)
		}
	}
}
