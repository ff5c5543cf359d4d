/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

package app

import (
	"errors"
	"fmt"
	"strings"
)

// Variant selects which widgets and events an application instance has.
type Variant int

const (
	// VariantStyling has the username input and an active Submit button.
	VariantStyling Variant = iota
	// VariantBasic has neither; Submit is shown disabled.
	VariantBasic
)

// ErrUnknownVariant is returned by ParseVariant.
var ErrUnknownVariant = errors.New("unknown variant")

// String returns the config name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantStyling:
		return "styling"
	case VariantBasic:
		return "basic"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant resolves a config name.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "styling", "":
		return VariantStyling, nil
	case "basic":
		return VariantBasic, nil
	}
	return VariantStyling, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// HasUsername reports whether the username input is part of the variant.
func (v Variant) HasUsername() bool {
	return v == VariantStyling
}

// SubmitEnabled reports whether the Submit button emits ButtonPressed.
func (v Variant) SubmitEnabled() bool {
	return v == VariantStyling
}

// Supports reports whether ev belongs to the variant's event set.
func (v Variant) Supports(ev Event) bool {
	switch ev.(type) {
	case UsernameChanged:
		return v.HasUsername()
	case ButtonPressed:
		return v.SubmitEnabled()
	}
	return ev != nil
}
