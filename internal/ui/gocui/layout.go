package gocui

// -----------------------------------------------------------------------------
// Layout Constants
// -----------------------------------------------------------------------------

const (
	// FieldHeight is the height of a framed single-line view.
	FieldHeight = 3

	// ScrollHeight is the height of the scroll view (including borders).
	ScrollHeight = 7

	// FooterHeight is the height of the footer view.
	FooterHeight = 2

	// SubmitWidth is the width of the submit button view.
	SubmitWidth = 12

	// MaxFormWidth caps the form width on wide terminals.
	MaxFormWidth = 64

	// MinFormWidth is the narrowest usable form.
	MinFormWidth = 40
)

// Bounds is a view rectangle in gocui coordinates (inclusive corners).
type Bounds struct {
	X0, Y0, X1, Y1 int
}

// Height returns the number of rows inside the frame.
func (b Bounds) Height() int {
	return b.Y1 - b.Y0 - 1
}

// Width returns the number of columns inside the frame.
func (b Bounds) Width() int {
	return b.X1 - b.X0 - 1
}

// clamp keeps b non-empty; gocui rejects views with x0 >= x1 or y0 >= y1.
func (b Bounds) clamp() Bounds {
	if b.X1 <= b.X0 {
		b.X1 = b.X0 + 1
	}
	if b.Y1 <= b.Y0 {
		b.Y1 = b.Y0 + 1
	}
	return b
}

// Valid reports whether gocui accepts b.
func (b Bounds) Valid() bool {
	return b.X0 < b.X1 && b.Y0 < b.Y1
}

// Layout manages view positioning and sizing calculations.
type Layout struct {
	maxX, maxY  int
	hasUsername bool
}

// NewLayout creates a new layout calculator with the given terminal size.
func NewLayout(maxX, maxY int, hasUsername bool) *Layout {
	return &Layout{maxX: maxX, maxY: maxY, hasUsername: hasUsername}
}

// formWidth returns the usable form width.
func (l *Layout) formWidth() int {
	w := l.maxX - 1
	if w > MaxFormWidth {
		w = MaxFormWidth
	}
	return w
}

// row returns full-width bounds for the framed view starting at y.
func (l *Layout) row(y, height int) Bounds {
	return Bounds{0, y, l.formWidth(), y + height - 1}.clamp()
}

// ThemeBounds returns the bounds for the theme selector.
func (l *Layout) ThemeBounds() Bounds {
	return l.row(0, FieldHeight)
}

// TextBounds returns the bounds for the free text input.
func (l *Layout) TextBounds() Bounds {
	b := l.row(FieldHeight, FieldHeight)
	b.X1 -= SubmitWidth + 1
	return b.clamp()
}

// SubmitBounds returns the bounds for the submit button, right of the input.
func (l *Layout) SubmitBounds() Bounds {
	b := l.row(FieldHeight, FieldHeight)
	b.X0 = max(b.X1-SubmitWidth, 0)
	return b.clamp()
}

// SliderBounds returns the bounds for the slider.
func (l *Layout) SliderBounds() Bounds {
	return l.row(2*FieldHeight, FieldHeight)
}

// ProgressBounds returns the bounds for the progress bar.
func (l *Layout) ProgressBounds() Bounds {
	return l.row(3*FieldHeight, FieldHeight)
}

// ScrollBounds returns the bounds for the scroll area (left half).
func (l *Layout) ScrollBounds() Bounds {
	b := l.row(4*FieldHeight, ScrollHeight)
	b.X1 = l.midX() - 1
	return b.clamp()
}

// CheckboxBounds returns the bounds for the checkbox (right half, top).
func (l *Layout) CheckboxBounds() Bounds {
	b := l.row(4*FieldHeight, FieldHeight)
	b.X0 = l.midX() + 1
	return b.clamp()
}

// TogglerBounds returns the bounds for the toggler (right half, bottom).
func (l *Layout) TogglerBounds() Bounds {
	b := l.row(4*FieldHeight+ScrollHeight-FieldHeight, FieldHeight)
	b.X0 = l.midX() + 1
	return b.clamp()
}

// UsernameBounds returns the bounds for the username input. ok is false in
// layouts without one.
func (l *Layout) UsernameBounds() (b Bounds, ok bool) {
	if !l.hasUsername {
		return Bounds{}, false
	}
	return l.row(4*FieldHeight+ScrollHeight, FieldHeight), true
}

// FooterBounds returns the bounds for the footer/help view.
func (l *Layout) FooterBounds() Bounds {
	return Bounds{0, l.maxY - FooterHeight - 1, l.maxX - 1, l.maxY - 1}.clamp()
}

// NoticeBounds returns the bounds for the notice shown instead of the form.
func (l *Layout) NoticeBounds() Bounds {
	return Bounds{0, 0, l.maxX - 1, min(l.maxY-1, FieldHeight-1)}.clamp()
}

// formHeight returns the rows used by the form above the footer.
func (l *Layout) formHeight() int {
	h := 4*FieldHeight + ScrollHeight
	if l.hasUsername {
		h += FieldHeight
	}
	return h
}

// midX returns the horizontal midpoint for the scroll/toggles split.
func (l *Layout) midX() int {
	return l.formWidth() / 2
}

// IsTerminalTooSmall checks if the terminal is too small for the form.
func (l *Layout) IsTerminalTooSmall() bool {
	return l.maxX < MinFormWidth || l.maxY < l.formHeight()+FooterHeight+1
}
