// Package termcanvas renders display primitives onto a terminal cell grid
// via tcell. It stands in for the SPI TFT driver the panel hardware uses.
package termcanvas

import (
	"github.com/gdamore/tcell/v2"

	"hwpanel/internal/display"
)

var palette = map[display.Color]tcell.Color{
	display.ColorBlack:  tcell.ColorBlack,
	display.ColorWhite:  tcell.ColorWhite,
	display.ColorGray:   tcell.ColorGray,
	display.ColorGreen:  tcell.ColorGreen,
	display.ColorYellow: tcell.ColorYellow,
	display.ColorOrange: tcell.ColorOrange,
	display.ColorRed:    tcell.ColorRed,
	display.ColorCyan:   tcell.ColorAqua,
}

// Canvas implements display.Canvas on a tcell screen.
type Canvas struct {
	screen tcell.Screen
	text   tcell.Color
	curX   int
	curY   int
}

// New wraps an initialized tcell screen.
func New(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen, text: tcell.ColorWhite}
}

func (c *Canvas) Size() (int, int) {
	return c.screen.Size()
}

func (c *Canvas) Clear(col display.Color) {
	w, h := c.screen.Size()
	c.FillRect(0, 0, w, h, col)
}

func (c *Canvas) FillRect(x, y, w, h int, col display.Color) {
	style := tcell.StyleDefault.Background(palette[col])
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

func (c *Canvas) DrawRect(x, y, w, h int, col display.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.DrawLine(x, y, x+w-1, y, col)
	c.DrawLine(x, y+h-1, x+w-1, y+h-1, col)
	c.DrawLine(x, y, x, y+h-1, col)
	c.DrawLine(x+w-1, y, x+w-1, y+h-1, col)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col display.Color) {
	style := tcell.StyleDefault.Background(palette[col])

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.screen.SetContent(x0, y0, ' ', nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) FillCircle(x, y, r int, col display.Color) {
	style := tcell.StyleDefault.Background(palette[col])
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.screen.SetContent(x+dx, y+dy, ' ', nil, style)
			}
		}
	}
}

func (c *Canvas) SetTextColor(col display.Color) {
	c.text = palette[col]
}

func (c *Canvas) SetCursor(x, y int) {
	c.curX, c.curY = x, y
}

func (c *Canvas) Print(s string) {
	style := tcell.StyleDefault.Foreground(c.text).Background(tcell.ColorBlack)
	for _, r := range s {
		c.screen.SetContent(c.curX, c.curY, r, nil, style)
		c.curX++
	}
}

func (c *Canvas) Flush() {
	c.screen.Show()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
