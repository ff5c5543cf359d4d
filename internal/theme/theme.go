/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package theme defines the closed set of visual themes and their palettes.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ID identifies one of the built-in themes. The zero value is Light.
type ID int

const (
	Light ID = iota
	Dark
	Dracula
	Nord
	SolarizedLight
	SolarizedDark
	GruvboxLight
	GruvboxDark
	CatppuccinLatte
	CatppuccinFrappe
	CatppuccinMacchiato
	CatppuccinMocha
	TokyoNight
	TokyoNightStorm
	TokyoNightLight
	KanagawaWave
	KanagawaDragon
	KanagawaLotus
	Moonfly
	Nightfly
	Oxocarbon

	count
)

// Default is the theme a fresh application starts with.
const Default = Light

// ErrUnknownTheme is returned by Parse for names outside the enumeration.
var ErrUnknownTheme = errors.New("unknown theme")

// All lists every theme in display order.
var All = func() []ID {
	ids := make([]ID, count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}()

var names = [count]string{
	Light:               "Light",
	Dark:                "Dark",
	Dracula:             "Dracula",
	Nord:                "Nord",
	SolarizedLight:      "Solarized Light",
	SolarizedDark:       "Solarized Dark",
	GruvboxLight:        "Gruvbox Light",
	GruvboxDark:         "Gruvbox Dark",
	CatppuccinLatte:     "Catppuccin Latte",
	CatppuccinFrappe:    "Catppuccin Frappé",
	CatppuccinMacchiato: "Catppuccin Macchiato",
	CatppuccinMocha:     "Catppuccin Mocha",
	TokyoNight:          "Tokyo Night",
	TokyoNightStorm:     "Tokyo Night Storm",
	TokyoNightLight:     "Tokyo Night Light",
	KanagawaWave:        "Kanagawa Wave",
	KanagawaDragon:      "Kanagawa Dragon",
	KanagawaLotus:       "Kanagawa Lotus",
	Moonfly:             "Moonfly",
	Nightfly:            "Nightfly",
	Oxocarbon:           "Oxocarbon",
}

// Valid reports whether id is a member of the enumeration.
func (id ID) Valid() bool {
	return id >= 0 && id < count
}

// String returns the display name.
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return names[id]
}

// Slug returns the kebab-case form of the name, e.g. "tokyo-night-storm".
func (id ID) Slug() string {
	return slugify(id.String())
}

// Next returns the theme after id, wrapping around.
func (id ID) Next() ID {
	return (id + 1) % count
}

// Prev returns the theme before id, wrapping around.
func (id ID) Prev() ID {
	return (id + count - 1) % count
}

// Parse resolves a display name or slug, case-insensitively.
func Parse(name string) (ID, error) {
	want := slugify(strings.TrimSpace(name))
	for _, id := range All {
		if id.Slug() == want {
			return id, nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Names returns the display names of all themes in display order.
func Names() []string {
	out := make([]string, len(All))
	for i, id := range All {
		out[i] = id.String()
	}
	return out
}

func slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "é", "e")
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "-")
}
