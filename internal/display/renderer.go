package display

import (
	"fmt"
	"sync/atomic"
	"time"

	"hwpanel/internal/models"
)

const (
	marginX    = 2
	headerRows = 2
	blockRows  = 3
)

type metricKind int

const (
	kindTemp metricKind = iota
	kindUsage
)

type metricDef struct {
	label string
	kind  metricKind
	value func(models.Snapshot) int
}

var metrics = []metricDef{
	{"CPU TEMP", kindTemp, func(s models.Snapshot) int { return s.CPUTemp }},
	{"GPU TEMP", kindTemp, func(s models.Snapshot) int { return s.GPUTemp }},
	{"CPU USE", kindUsage, func(s models.Snapshot) int { return s.CPUUsage }},
	{"RAM USE", kindUsage, func(s models.Snapshot) int { return s.RAMUsage }},
	{"GPU USE", kindUsage, func(s models.Snapshot) int { return s.GPUUsage }},
}

// Renderer draws the metrics panel onto a Canvas. It is stateless with
// respect to the data: every frame is a function of the snapshot handed in.
// The canvas cursor is mutated by every drawing call, so all drawing runs
// on the scheduler's goroutine; other goroutines only set the redraw flag.
type Renderer struct {
	canvas      Canvas
	start       time.Time
	title       string
	headerStale atomic.Bool
}

// NewRenderer creates a renderer for the given canvas. start anchors the
// uptime counter.
func NewRenderer(c Canvas, start time.Time) *Renderer {
	return &Renderer{canvas: c, start: start, title: "PC HARDWARE MONITOR"}
}

// DrawHeader paints the fixed header: title, status indicator, separator.
// Called once at startup before the scheduler goroutine runs; afterwards
// header redraws go through RequestHeaderRedraw.
func (r *Renderer) DrawHeader() {
	r.drawHeader()
	r.canvas.Flush()
}

// RequestHeaderRedraw asks for the header to be repainted on the next
// render pass. Safe to call from any goroutine (resize events arrive on
// the screen's event goroutine, not the scheduler's).
func (r *Renderer) RequestHeaderRedraw() {
	r.headerStale.Store(true)
}

func (r *Renderer) drawHeader() {
	w, _ := r.canvas.Size()

	r.canvas.Clear(ColorBlack)
	r.canvas.SetTextColor(ColorCyan)
	r.canvas.SetCursor(marginX, 0)
	r.canvas.Print(r.title)
	r.canvas.FillCircle(w-marginX-1, 0, 0, ColorGreen)
	r.canvas.DrawLine(0, 1, w-1, 1, ColorGray)
}

// Render clears the metrics region and redraws every block from the
// snapshot, then the FPS block and the uptime line.
func (r *Renderer) Render(snap models.Snapshot, now time.Time) {
	if r.headerStale.CompareAndSwap(true, false) {
		r.drawHeader()
	}

	w, h := r.canvas.Size()

	// Everything below the header is redrawn each tick.
	r.canvas.FillRect(0, headerRows, w, h-headerRows, ColorBlack)

	y := headerRows + 1
	for _, m := range metrics {
		r.drawMetric(m, snap, y, w)
		y += blockRows
	}

	r.drawFPS(snap.FPS, y, w)
	y += 2

	r.canvas.SetTextColor(ColorGray)
	r.canvas.SetCursor(marginX, y)
	r.canvas.Print("UP " + FormatUptime(now.Sub(r.start)))

	r.canvas.Flush()
}

func (r *Renderer) drawMetric(m metricDef, snap models.Snapshot, y, w int) {
	v := m.value(snap)

	var color Color
	var text string
	var fill int
	if m.kind == kindTemp {
		color = TempColor(v)
		text = fmt.Sprintf("%dC", v)
		fill = TempBarFill(v)
	} else {
		color = UsageColor(v)
		text = fmt.Sprintf("%d%%", v)
		fill = v
	}

	r.canvas.SetTextColor(ColorWhite)
	r.canvas.SetCursor(marginX, y)
	r.canvas.Print(m.label)

	r.canvas.SetTextColor(color)
	r.canvas.SetCursor(w-marginX-len(text), y)
	r.canvas.Print(text)

	r.drawBar(marginX, y+1, w-2*marginX, fill, color)
}

// drawBar draws a bordered progress bar: proportional fill in the value's
// color, with the remainder explicitly blanked so a shrinking value never
// leaves stale fill behind.
func (r *Renderer) drawBar(x, y, barW, fillPct int, c Color) {
	fillPct = models.Clamp(fillPct, 0, 100)

	r.canvas.DrawRect(x, y, barW, 1, ColorGray)

	innerW := barW - 2
	fw := innerW * fillPct / 100
	if fw > 0 {
		r.canvas.FillRect(x+1, y, fw, 1, c)
	}
	if fw < innerW {
		r.canvas.FillRect(x+1+fw, y, innerW-fw, 1, ColorBlack)
	}
}

func (r *Renderer) drawFPS(fps, y, w int) {
	r.canvas.SetTextColor(ColorWhite)
	r.canvas.SetCursor(marginX, y)
	r.canvas.Print("FPS")

	value := fmt.Sprintf("%d", fps)
	r.canvas.SetTextColor(FPSColor(fps))
	r.canvas.SetCursor(marginX+5, y)
	r.canvas.Print(value)

	label := FPSLabel(fps)
	r.canvas.SetCursor(w-marginX-len(label), y)
	r.canvas.Print(label)
}
