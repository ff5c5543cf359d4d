/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package gocui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijuttt/showcase/internal/app"
	"github.com/ijuttt/showcase/internal/theme"
)

func newForm(v app.Variant) (*Form, *app.Controller) {
	ctrl := app.NewController(v, nil)
	return NewForm(ctrl, nil), ctrl
}

func TestFormOrder(t *testing.T) {
	f, _ := newForm(app.VariantStyling)
	assert.Equal(t, ViewUsername, f.Order()[len(f.Order())-1])

	basic, _ := newForm(app.VariantBasic)
	assert.NotContains(t, basic.Order(), ViewUsername)
	assert.Len(t, basic.Order(), len(f.Order())-1)
}

func TestFormFocusWraps(t *testing.T) {
	f, _ := newForm(app.VariantBasic)
	require.Equal(t, ViewTheme, f.Focused())

	assert.Equal(t, ViewToggler, f.Prev())
	assert.Equal(t, ViewTheme, f.Next())
	assert.Equal(t, ViewText, f.Next())
}

func TestFormAdjust(t *testing.T) {
	f, ctrl := newForm(app.VariantStyling)

	assert.True(t, f.Adjust(ViewTheme, 1))
	assert.Equal(t, theme.Dark, ctrl.State().Theme)
	assert.True(t, f.Adjust(ViewTheme, -1))
	assert.True(t, f.Adjust(ViewTheme, -1))
	assert.Equal(t, theme.Oxocarbon, ctrl.State().Theme)

	assert.True(t, f.Adjust(ViewSlider, SliderBigStep))
	assert.True(t, f.Adjust(ViewSlider, SliderStep))
	assert.Equal(t, 11.0, ctrl.State().SliderValue)

	assert.True(t, f.Adjust(ViewSlider, -50))
	assert.Equal(t, 0.0, ctrl.State().SliderValue)
	assert.False(t, f.Adjust(ViewSlider, -1), "already at the minimum")

	assert.False(t, f.Adjust(ViewCheckbox, 1))
}

func TestFormActivate(t *testing.T) {
	f, ctrl := newForm(app.VariantStyling)

	assert.True(t, f.Activate(ViewCheckbox))
	assert.True(t, f.Activate(ViewToggler))
	assert.True(t, f.Activate(ViewToggler))
	s := ctrl.State()
	assert.True(t, s.CheckboxValue)
	assert.False(t, s.TogglerValue)

	assert.True(t, f.Activate(ViewSubmit))
	assert.Equal(t, s, ctrl.State(), "submit does not change state")

	assert.False(t, f.Activate(ViewScroll))
}

func TestFormBasicSubmitDisabled(t *testing.T) {
	f, ctrl := newForm(app.VariantBasic)
	assert.False(t, f.Activate(ViewSubmit))
	assert.False(t, f.Edit(ViewUsername, "ada"))
	assert.Empty(t, ctrl.State().Username)
}

func TestFormEdit(t *testing.T) {
	f, ctrl := newForm(app.VariantStyling)

	assert.True(t, f.Edit(ViewText, "hello"))
	assert.False(t, f.Edit(ViewText, "hello"), "unchanged text")
	assert.True(t, f.Edit(ViewUsername, "ada"))

	s := ctrl.State()
	assert.Equal(t, "hello", s.TextValue)
	assert.Equal(t, "ada", s.Username)
}

func TestIsEditable(t *testing.T) {
	assert.True(t, IsEditable(ViewText))
	assert.True(t, IsEditable(ViewUsername))
	assert.False(t, IsEditable(ViewSlider))
}

func TestClampOrigin(t *testing.T) {
	assert.Equal(t, 0, clampOrigin(-3, 42, 5))
	assert.Equal(t, 10, clampOrigin(10, 42, 5))
	assert.Equal(t, 37, clampOrigin(99, 42, 5))
	assert.Equal(t, 0, clampOrigin(2, 3, 5), "content shorter than the view")
}
