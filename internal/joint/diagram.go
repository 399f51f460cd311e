package joint

import "github.com/san-kum/boltjoint/internal/fastener"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Diagram is the force/deflection joint diagram: the bolt line extends to the
// right and the member line compresses to the left, each with an origin, a
// preload point and an applied load point.
type Diagram struct {
	Bolt    [3]Point `json:"bolt"`
	Member  [3]Point `json:"member"`
	Preload float64  `json:"preload"`
	Load    float64  `json:"load"`
}

func NewDiagram(state fastener.JointState, preload, load float64) Diagram {
	bolt, member := fastener.SegregateLoad(state.C, load)

	return Diagram{
		Bolt: [3]Point{
			{0, 0},
			{preload / state.Kb, preload},
			{(bolt + preload) / state.Kb, preload + bolt},
		},
		Member: [3]Point{
			{0, 0},
			{-preload / state.Km, preload},
			{-(preload - member) / state.Km, preload - member},
		},
		Preload: preload,
		Load:    load,
	}
}

// Bounds returns the extent of both lines.
func (d Diagram) Bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = d.Bolt[0].X, d.Bolt[0].X
	minY, maxY = d.Bolt[0].Y, d.Bolt[0].Y
	for _, line := range [][3]Point{d.Bolt, d.Member} {
		for _, p := range line {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return minX, maxX, minY, maxY
}
