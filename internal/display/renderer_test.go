package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwpanel/internal/models"
)

// fakeCanvas records every primitive call for inspection.
type fakeCanvas struct {
	w, h    int
	fills   []rectOp
	rects   []rectOp
	lines   int
	texts   []textOp
	color   Color
	curX    int
	curY    int
	flushes int
}

type rectOp struct {
	x, y, w, h int
	color      Color
}

type textOp struct {
	x, y  int
	s     string
	color Color
}

func newFakeCanvas(w, h int) *fakeCanvas { return &fakeCanvas{w: w, h: h} }

func (f *fakeCanvas) Size() (int, int) { return f.w, f.h }
func (f *fakeCanvas) Clear(c Color)    { f.fills = append(f.fills, rectOp{0, 0, f.w, f.h, c}) }
func (f *fakeCanvas) FillRect(x, y, w, h int, c Color) {
	f.fills = append(f.fills, rectOp{x, y, w, h, c})
}
func (f *fakeCanvas) DrawRect(x, y, w, h int, c Color) {
	f.rects = append(f.rects, rectOp{x, y, w, h, c})
}
func (f *fakeCanvas) DrawLine(x0, y0, x1, y1 int, c Color) { f.lines++ }
func (f *fakeCanvas) FillCircle(x, y, r int, c Color)      {}
func (f *fakeCanvas) SetTextColor(c Color)                 { f.color = c }
func (f *fakeCanvas) SetCursor(x, y int)                   { f.curX, f.curY = x, y }
func (f *fakeCanvas) Print(s string) {
	f.texts = append(f.texts, textOp{f.curX, f.curY, s, f.color})
	f.curX += len(s)
}
func (f *fakeCanvas) Flush() { f.flushes++ }

func (f *fakeCanvas) findText(s string) *textOp {
	for i := range f.texts {
		if f.texts[i].s == s {
			return &f.texts[i]
		}
	}
	return nil
}

func TestRendererDrawsFiveBarsAndBlanksRemainder(t *testing.T) {
	c := newFakeCanvas(40, 24)
	r := NewRenderer(c, time.Now())

	snap := models.Snapshot{CPUTemp: 45, GPUTemp: 55, CPUUsage: 60, RAMUsage: 50, GPUUsage: 35, FPS: 120}
	r.Render(snap, time.Now())

	require.Len(t, c.rects, 5, "one bordered bar per metric")

	// barW = 40 - 2*margin = 36, inner = 34.
	for _, bar := range c.rects {
		assert.Equal(t, 36, bar.w)
		assert.Equal(t, 1, bar.h)
		assert.Equal(t, ColorGray, bar.color)
	}

	// CPU usage 60% → fill 34*60/100 = 20 cells, 14 blanked.
	barY := c.rects[2].y
	var fill, blank *rectOp
	for i := range c.fills {
		op := &c.fills[i]
		if op.y != barY || op.h != 1 {
			continue
		}
		if op.color == ColorYellow {
			fill = op
		}
		if op.color == ColorBlack {
			blank = op
		}
	}
	require.NotNil(t, fill, "expected a yellow fill for 60%% usage")
	require.NotNil(t, blank, "expected the bar remainder to be blanked")
	assert.Equal(t, 20, fill.w)
	assert.Equal(t, 3, fill.x)
	assert.Equal(t, 14, blank.w)
	assert.Equal(t, 23, blank.x)
}

func TestRendererTempBarUsesSubRangeFill(t *testing.T) {
	c := newFakeCanvas(40, 24)
	r := NewRenderer(c, time.Now())

	snap := models.Snapshot{CPUTemp: 60, GPUTemp: 45, CPUUsage: 0, RAMUsage: 40, GPUUsage: 0, FPS: 60}
	r.Render(snap, time.Now())

	// 60°C maps to 50% fill: 34*50/100 = 17 cells in yellow.
	barY := c.rects[0].y
	var found bool
	for _, op := range c.fills {
		if op.y == barY && op.color == ColorYellow && op.w == 17 {
			found = true
		}
	}
	assert.True(t, found, "60C should fill half the temperature bar")
}

func TestRendererMetricValuesAndColors(t *testing.T) {
	c := newFakeCanvas(40, 24)
	r := NewRenderer(c, time.Now())

	snap := models.Snapshot{CPUTemp: 82, GPUTemp: 55, CPUUsage: 91, RAMUsage: 40, GPUUsage: 35, FPS: 25}
	r.Render(snap, time.Now())

	cpuTemp := c.findText("82C")
	require.NotNil(t, cpuTemp)
	assert.Equal(t, ColorRed, cpuTemp.color)

	cpuUse := c.findText("91%")
	require.NotNil(t, cpuUse)
	assert.Equal(t, ColorRed, cpuUse.color)

	fps := c.findText("25")
	require.NotNil(t, fps)
	assert.Equal(t, ColorRed, fps.color)
	assert.NotNil(t, c.findText("LOW"))
}

func TestRendererUptimeLine(t *testing.T) {
	c := newFakeCanvas(40, 24)
	start := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	r := NewRenderer(c, start)

	r.Render(models.DefaultSnapshot(), start.Add(4*time.Minute+20*time.Second))

	assert.NotNil(t, c.findText("UP 0h 4m 20s"))
	assert.Equal(t, 1, c.flushes)
}

func TestRendererRedrawsHeaderOnRequest(t *testing.T) {
	c := newFakeCanvas(40, 24)
	r := NewRenderer(c, time.Now())

	r.DrawHeader()

	// A resize-style request is honored on the next render pass, once.
	c.texts = nil
	r.RequestHeaderRedraw()
	r.Render(models.DefaultSnapshot(), time.Now())
	require.NotNil(t, c.findText("PC HARDWARE MONITOR"))

	c.texts = nil
	r.Render(models.DefaultSnapshot(), time.Now())
	assert.Nil(t, c.findText("PC HARDWARE MONITOR"), "flag is consumed after one redraw")
}

func TestRendererHeaderRequestSafeFromOtherGoroutines(t *testing.T) {
	// Resize events arrive on the screen's event goroutine while the
	// scheduler is mid-render; only the flag crosses goroutines, never
	// canvas drawing.
	c := newFakeCanvas(40, 24)
	r := NewRenderer(c, time.Now())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			r.RequestHeaderRedraw()
		}
	}()

	for i := 0; i < 100; i++ {
		r.Render(models.DefaultSnapshot(), time.Now())
	}
	<-done

	r.RequestHeaderRedraw()
	r.Render(models.DefaultSnapshot(), time.Now())
	assert.NotNil(t, c.findText("PC HARDWARE MONITOR"))
}

func TestRendererHeaderDrawnSeparately(t *testing.T) {
	c := newFakeCanvas(40, 24)
	r := NewRenderer(c, time.Now())

	r.DrawHeader()
	require.NotNil(t, c.findText("PC HARDWARE MONITOR"))

	// The per-tick redraw clears only below the header.
	c.texts = nil
	r.Render(models.DefaultSnapshot(), time.Now())
	assert.Nil(t, c.findText("PC HARDWARE MONITOR"))
	clr := c.fills[1] // index 0 is the header Clear
	assert.Equal(t, 2, clr.y, "metric region clear starts below the header")
	assert.Equal(t, 24-2, clr.h)
}
