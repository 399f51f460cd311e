package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/boltjoint/internal/joint"
)

// DiagramToSVG draws the joint diagram: bolt line, member line and the
// preload level.
func DiagramToSVG(d joint.Diagram, width, height int) string {
	minX, maxX, minY, maxY := d.Bounds()

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	project := func(p joint.Point) (float64, float64) {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	_, py := project(joint.Point{X: 0, Y: d.Preload})
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#666688" stroke-dasharray="4 4"/>
`, py, width, py))

	writePath(&sb, d.Bolt, project, "#00ccff")
	writePath(&sb, d.Member, project, "#ff8800")

	sb.WriteString(`</svg>`)
	return sb.String()
}

func writePath(sb *strings.Builder, line [3]joint.Point, project func(joint.Point) (float64, float64), stroke string) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i, p := range line {
		x, y := project(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")
}
