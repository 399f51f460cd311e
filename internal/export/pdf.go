package export

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/san-kum/boltjoint/internal/joint"
	"github.com/san-kum/boltjoint/internal/sweep"
)

type ReportInput struct {
	Title      string
	Author     string
	Evaluation *joint.Evaluation
	// Sweep is optional; when set the optimal preload is reported.
	Sweep *sweep.Result
}

// WriteReport renders a single page PDF with the joint properties, the safety
// factors at the case preload and the joint diagram.
func WriteReport(w io.Writer, input ReportInput) error {
	ev := input.Evaluation
	if ev == nil || ev.Joint == nil {
		return fmt.Errorf("report: evaluation is required")
	}
	c := ev.Joint.Case
	u := c.Units

	title := input.Title
	if title == "" {
		title = fmt.Sprintf("Bolted joint: %s", c.Name)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if input.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Joint")
	constant := "given"
	if ev.Joint.Estimated {
		constant = "Cornwell estimate"
	}
	rows := [][2]string{
		{"Units", u.String()},
		{"Tensile stress area", fmt.Sprintf("%.4g %s^2", ev.ATs, u.LengthUnit())},
		{"Shank area", fmt.Sprintf("%.4g %s^2", ev.ACs, u.LengthUnit())},
		{"Joint constant", fmt.Sprintf("%.4f (%s)", ev.C, constant)},
		{"Bolt stiffness", fmt.Sprintf("%.4g %s", ev.Kb, u.StiffnessUnit())},
		{"Member stiffness", fmt.Sprintf("%.4g %s", ev.Km, u.StiffnessUnit())},
		{"Bolt share of load", fmt.Sprintf("%.4g %s", ev.BoltLoad, u.ForceUnit())},
		{"Member share of load", fmt.Sprintf("%.4g %s", ev.MemberLoad, u.ForceUnit())},
	}
	table(pdf, rows)

	section(pdf, fmt.Sprintf("Safety factors at preload %.4g %s", c.Load.Preload, u.ForceUnit()))
	status := "PASS"
	if !ev.Passes() {
		status = "FAIL"
	}
	table(pdf, [][2]string{
		{"Yield", fmt.Sprintf("%.3f", ev.Yield)},
		{"Separation", fmt.Sprintf("%.3f", ev.Separation)},
		{"Fatigue", fmt.Sprintf("%.3f", ev.Fatigue)},
		{"Governing", string(ev.Governing)},
		{"Result", status},
	})

	if input.Sweep != nil {
		best, err := input.Sweep.Best()
		if err != nil {
			return err
		}
		section(pdf, "Optimal preload")
		table(pdf, [][2]string{
			{"Preload", fmt.Sprintf("%.4g %s", best.Preload, u.ForceUnit())},
			{"Minimum safety factor", fmt.Sprintf("%.3f", best.Min)},
			{"Samples", fmt.Sprintf("%d", input.Sweep.Len())},
		})
	}

	section(pdf, "Joint diagram")
	drawDiagram(pdf, joint.NewDiagram(ev.Joint.State, c.Load.Preload, c.Load.Max), 15, pdf.GetY()+2, 180, 70)

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, name string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, name)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func table(pdf *gofpdf.Fpdf, rows [][2]string) {
	for _, r := range rows {
		pdf.CellFormat(70, 6, r[0], "B", 0, "L", false, 0, "")
		pdf.CellFormat(90, 6, r[1], "B", 1, "R", false, 0, "")
	}
}

func drawDiagram(pdf *gofpdf.Fpdf, d joint.Diagram, x0, y0, width, height float64) {
	minX, maxX, minY, maxY := d.Bounds()
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	project := func(p joint.Point) (float64, float64) {
		return x0 + (p.X-minX)/rangeX*width, y0 + height - (p.Y-minY)/rangeY*height
	}

	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(160, 160, 160)
	pdf.Rect(x0, y0, width, height, "D")

	pdf.SetLineWidth(0.5)
	for _, l := range []struct {
		pts     [3]joint.Point
		r, g, b int
	}{
		{d.Bolt, 0, 110, 200},
		{d.Member, 220, 110, 0},
	} {
		pdf.SetDrawColor(l.r, l.g, l.b)
		for i := 1; i < len(l.pts); i++ {
			x1, y1 := project(l.pts[i-1])
			x2, y2 := project(l.pts[i])
			pdf.Line(x1, y1, x2, y2)
		}
	}
}
