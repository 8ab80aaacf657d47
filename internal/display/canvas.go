package display

// Color is a named palette entry. Backends map it to whatever the output
// device supports.
type Color uint8

const (
	ColorBlack Color = iota
	ColorWhite
	ColorGray
	ColorGreen
	ColorYellow
	ColorOrange
	ColorRed
	ColorCyan
)

// Canvas is the drawing capability the renderer targets. All primitives are
// synchronous and assumed to succeed; no error returns are modeled.
type Canvas interface {
	// Size reports the drawable area in cells.
	Size() (w, h int)
	// Clear fills the whole canvas with the given color.
	Clear(c Color)
	// FillRect fills the rectangle at (x,y) of size w×h.
	FillRect(x, y, w, h int, c Color)
	// DrawRect draws the rectangle outline at (x,y) of size w×h.
	DrawRect(x, y, w, h int, c Color)
	// DrawLine draws a straight line between two points.
	DrawLine(x0, y0, x1, y1 int, c Color)
	// FillCircle draws a filled circle centered at (x,y).
	FillCircle(x, y, r int, c Color)
	// SetTextColor sets the color used by subsequent Print calls.
	SetTextColor(c Color)
	// SetCursor positions the text cursor.
	SetCursor(x, y int)
	// Print writes text at the cursor and advances it.
	Print(s string)
	// Flush makes all drawing since the last Flush visible.
	Flush()
}
