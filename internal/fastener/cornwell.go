package fastener

import "math"

// CornwellRow holds the polynomial coefficients of Cornwell's joint constant
// fit for one diameter-to-grip ratio j (Norton table 15-8, equation 15.19).
type CornwellRow struct {
	J  float64
	P0 float64
	P1 float64
	P2 float64
	P3 float64
}

const (
	cornwellMinJ = 0.1
	cornwellMaxJ = 2.0

	// bracketTolerance widens the row match window around j.
	bracketTolerance = 0.01

	// flatTailJ marks the tail of the table where no interpolation is done.
	flatTailJ = 1.75
)

// Sorted ascending by J. Never mutated.
var cornwellRows = [...]CornwellRow{
	{0.1, 0.4389, -0.9197, 0.8901, -0.3187},
	{0.2, 0.6118, -1.1715, 1.0875, -0.3806},
	{0.3, 0.6932, -1.2426, 1.1177, -0.3845},
	{0.4, 0.7351, -1.2612, 1.1111, -0.3779},
	{0.5, 0.758, -1.2632, 1.0979, -0.3708},
	{0.6, 0.7709, -1.2600, 1.0851, -0.3647},
	{0.7, 0.7773, -1.2543, 1.0735, -0.3595},
	{0.8, 0.78, -1.2503, 1.0672, -0.3571},
	{0.9, 0.7797, -1.2458, 1.062, -0.3552},
	{1.0, 0.7774, -1.2413, 1.0577, -0.3537},
	{1.25, 0.7667, -1.2333, 1.0548, -0.3535},
	{1.5, 0.7518, -1.2264, 1.0554, -0.3550},
	{1.75, 0.735, -1.2202, 1.0581, -0.3574},
	{2.00, 0.7175, -1.2133, 1.0604, -0.3596},
}

// CornwellTable returns a copy of the coefficient table.
func CornwellTable() []CornwellRow {
	rows := make([]CornwellRow, len(cornwellRows))
	copy(rows, cornwellRows[:])
	return rows
}

// Coefficients are the interpolated p0..p3 for one j.
type Coefficients struct {
	J  float64
	J1 float64
	J2 float64
	P0 float64
	P1 float64
	P2 float64
	P3 float64
}

// Eval returns p3·r³ + p2·r² + p1·r + p0.
func (c Coefficients) Eval(r float64) float64 {
	return c.P3*math.Pow(r, 3) + c.P2*math.Pow(r, 2) + c.P1*r + c.P0
}

// bracket selects the rows enclosing j. The upper row is the first with
// J >= j-0.01; the lower row is the last with J <= j+0.01, unless the upper
// row lies in the flat tail, in which case both are the upper row. Ratios
// beyond the table resolve to its end rows.
func bracket(j float64) (lo, hi int) {
	hi = len(cornwellRows) - 1
	for i, row := range cornwellRows {
		if row.J >= j-bracketTolerance {
			hi = i
			break
		}
	}
	if cornwellRows[hi].J > flatTailJ {
		return hi, hi
	}
	lo = 0
	for i, row := range cornwellRows {
		if row.J <= j+bracketTolerance {
			lo = i
		}
	}
	return lo, hi
}

// CornwellCoefficients interpolates the table coefficients at j = d/l.
func CornwellCoefficients(j float64) Coefficients {
	lo, hi := bracket(j)
	r1, r2 := cornwellRows[lo], cornwellRows[hi]
	j1 := clamp(r1.J, cornwellMinJ, cornwellMaxJ)
	j2 := clamp(r2.J, cornwellMinJ, cornwellMaxJ)

	return Coefficients{
		J:  j,
		J1: j1,
		J2: j2,
		P0: lerp(j1, j2, r1.P0, r2.P0, j),
		P1: lerp(j1, j2, r1.P1, r2.P1, j),
		P2: lerp(j1, j2, r1.P2, r2.P2, j),
		P3: lerp(j1, j2, r1.P3, r2.P3, j),
	}
}

// JointConstant returns the fraction of external load carried by the bolt for
// two clamped plates of one material (Cornwell method).
func JointConstant(db, l, em, eb float64) (float64, error) {
	if l <= 0 || db <= 0 {
		return 0, opError("joint constant", ErrInvalidGeometry)
	}
	if eb <= 0 || em <= 0 {
		return 0, opError("joint constant", ErrInvalidMaterial)
	}
	coeffs := CornwellCoefficients(db / l)
	return coeffs.Eval(em / eb), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp evaluates the line through (x1,y1) and (x2,y2) at x. Coincident knots
// return y1 unchanged.
func lerp(x1, x2, y1, y2, x float64) float64 {
	if x1 == x2 {
		return y1
	}
	m := (y2 - y1) / (x2 - x1)
	return (x-x1)*m + y1
}
