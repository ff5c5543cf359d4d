package gocui

import (
	"testing"

	lib "github.com/jroimartin/gocui"
	"github.com/stretchr/testify/assert"
)

func TestFormViewsSkippedWhenTooSmall(t *testing.T) {
	for _, width := range []int{10, 14, MinFormWidth - 1} {
		assert.Empty(t, formViews(NewLayout(width, 40, true)), "width %d", width)
	}
	assert.Empty(t, formViews(NewLayout(80, 10, false)))
}

func TestFormViewsFitMinWidth(t *testing.T) {
	views := formViews(NewLayout(MinFormWidth, 40, true))
	assert.Len(t, views, 9)
	for _, v := range views {
		assert.True(t, v.bounds.Valid(), "%s %+v", v.name, v.bounds)
		assert.Contains(t, allViews, v.name)
	}

	basic := formViews(NewLayout(MinFormWidth, 40, false))
	assert.Len(t, basic, 8)
}

func TestInputsStaySingleLine(t *testing.T) {
	for _, k := range []lib.Key{lib.KeyEnter, lib.KeyArrowUp, lib.KeyArrowDown} {
		assert.True(t, ignoredInputKey(k))
	}
	for _, k := range []lib.Key{lib.KeyArrowLeft, lib.KeyBackspace2, lib.KeySpace} {
		assert.False(t, ignoredInputKey(k))
	}

	assert.Equal(t, "hello", firstLine("hello\n"))
	assert.Equal(t, "hello", firstLine("hello\nworld\n"))
	assert.Equal(t, "", firstLine(""))
}
