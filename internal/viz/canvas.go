package viz

import (
	"strings"

	"github.com/san-kum/boltjoint/internal/joint"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set sets a pixel in sub-pixel coordinates. The canvas is (Width*2) x
// (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// DiagramCanvas draws the bolt and member lines of a joint diagram scaled to
// fill a w x h character canvas.
func DiagramCanvas(d joint.Diagram, w, h int) *Canvas {
	c := NewCanvas(w, h)
	minX, maxX, minY, maxY := d.Bounds()
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	px, py := w*2-1, h*4-1
	project := func(p joint.Point) (int, int) {
		x := int((p.X - minX) / rangeX * float64(px))
		y := py - int((p.Y-minY)/rangeY*float64(py))
		return x, y
	}

	for _, line := range [][3]joint.Point{d.Bolt, d.Member} {
		for i := 1; i < len(line); i++ {
			x0, y0 := project(line[i-1])
			x1, y1 := project(line[i])
			c.DrawLine(x0, y0, x1, y1)
		}
	}
	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
