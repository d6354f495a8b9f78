package tui

// Layout constants: a 2-cell frame margin, a one-row help strip, and the rest
// of the frame for the list under its own margin. The popup overlay covers
// 60% x 10% of the whole screen.
const (
	frameMargin = 2
	listMargin  = 2

	popupWidthPercent  = 60
	popupHeightPercent = 10
)

// Rect is a screen region in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// inset shrinks the rect by n cells on every side, clamping at zero size.
func (r Rect) inset(n int) Rect {
	r.X += n
	r.Y += n
	r.W -= 2 * n
	r.H -= 2 * n
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

type screenLayout struct {
	Help Rect
	List Rect
}

// computeLayout splits the terminal into the help strip and the list region.
func computeLayout(width, height int) screenLayout {
	outer := Rect{0, 0, width, height}.inset(frameMargin)
	help := Rect{X: outer.X, Y: outer.Y, W: outer.W, H: min(1, outer.H)}
	body := Rect{X: outer.X, Y: outer.Y + help.H, W: outer.W, H: outer.H - help.H}
	return screenLayout{
		Help: help,
		List: body.inset(listMargin),
	}
}

// centeredRect returns a rect covering the given percentages of bounds,
// centered on both axes. Margins use floor division, so any odd leftover cell
// lands in the trailing margin.
func centeredRect(percentW, percentH int, bounds Rect) Rect {
	w := bounds.W * percentW / 100
	h := bounds.H * percentH / 100
	return Rect{
		X: bounds.X + (bounds.W-w)/2,
		Y: bounds.Y + (bounds.H-h)/2,
		W: w,
		H: h,
	}
}

// popupCursor returns the terminal cell for the text cursor inside the popup:
// one cell right of the border plus the current display width, one row below
// the top border. Assumes single-line input and one column per character.
func popupCursor(area Rect, displayWidth int) (col, row int) {
	return area.X + displayWidth + 1, area.Y + 1
}
