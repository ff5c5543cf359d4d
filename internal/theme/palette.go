/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package theme

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the base colours of a theme as "#rrggbb" strings.
type Palette struct {
	Background string
	Text       string
	Primary    string
	Success    string
	Danger     string
}

var palettes = [count]Palette{
	Light:               {"#ffffff", "#000000", "#5e7ce2", "#12664f", "#c3423f"},
	Dark:                {"#202225", "#e6e6e6", "#5e7ce2", "#12664f", "#c3423f"},
	Dracula:             {"#282a36", "#f8f8f2", "#bd93f9", "#50fa7b", "#ff5555"},
	Nord:                {"#2e3440", "#eceff4", "#8fbcbb", "#a3be8c", "#bf616a"},
	SolarizedLight:      {"#fdf6e3", "#657b83", "#2aa198", "#859900", "#dc322f"},
	SolarizedDark:       {"#002b36", "#839496", "#2aa198", "#859900", "#dc322f"},
	GruvboxLight:        {"#fbf1c7", "#282828", "#458588", "#98971a", "#cc241d"},
	GruvboxDark:         {"#282828", "#fbf1c7", "#458588", "#98971a", "#cc241d"},
	CatppuccinLatte:     {"#eff1f5", "#4c4f69", "#1e66f5", "#40a02b", "#d20f39"},
	CatppuccinFrappe:    {"#303446", "#c6d0f5", "#8caaee", "#a6d189", "#e78284"},
	CatppuccinMacchiato: {"#24273a", "#cad3f5", "#8aadf4", "#a6da95", "#ed8796"},
	CatppuccinMocha:     {"#1e1e2e", "#cdd6f4", "#89b4fa", "#a6e3a1", "#f38ba8"},
	TokyoNight:          {"#1a1b26", "#9aa5ce", "#2ac3de", "#9ece6a", "#f7768e"},
	TokyoNightStorm:     {"#24283b", "#9aa5ce", "#2ac3de", "#9ece6a", "#f7768e"},
	TokyoNightLight:     {"#d5d6db", "#565a6e", "#166775", "#485e30", "#8c4351"},
	KanagawaWave:        {"#363646", "#dcd7ba", "#7fb4ca", "#76946a", "#c34043"},
	KanagawaDragon:      {"#181616", "#c5c9c5", "#7fb4ca", "#8a9a7b", "#c4746e"},
	KanagawaLotus:       {"#f2ecbc", "#545464", "#4d699b", "#6f894e", "#c84053"},
	Moonfly:             {"#080808", "#bdbdbd", "#80a0ff", "#8cc85f", "#ff5454"},
	Nightfly:            {"#011627", "#bdc1c6", "#82aaff", "#a1cd5e", "#fc514e"},
	Oxocarbon:           {"#232323", "#d0d0d0", "#00b4ff", "#00c15a", "#f62d0f"},
}

// Palette returns the palette for id, or the default palette if id is invalid.
func (id ID) Palette() Palette {
	if !id.Valid() {
		return palettes[Default]
	}
	return palettes[id]
}

// IsDark reports whether the background is dark enough to need light text
// on neutral surfaces.
func (p Palette) IsDark() bool {
	l, _, _ := mustHex(p.Background).Lab()
	return l < 0.6
}

// Dim returns a muted text colour halfway between text and background.
func (p Palette) Dim() string {
	return Mix(p.Text, p.Background, 0.5)
}

// Surface returns a colour slightly lifted off the background, used for
// tracks, rules and unfocused borders.
func (p Palette) Surface() string {
	return Mix(p.Background, p.Text, 0.15)
}

// OnPrimary returns a readable foreground for text drawn over Primary.
func (p Palette) OnPrimary() string {
	l, _, _ := mustHex(p.Primary).Lab()
	if l < 0.6 {
		return "#ffffff"
	}
	return "#000000"
}

// Mix blends two hex colours in Lab space; t=0 yields a, t=1 yields b.
func Mix(a, b string, t float64) string {
	return mustHex(a).BlendLab(mustHex(b), t).Clamped().Hex()
}

// NRGBA converts a hex colour to an opaque color.NRGBA.
func NRGBA(hex string) color.NRGBA {
	r, g, b := mustHex(hex).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// mustHex parses a palette colour. Palette strings are compile-time
// constants, so a parse failure falls back to black rather than panicking.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
