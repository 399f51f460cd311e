package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/boltjoint/internal/joint"
)

// RenderEvaluation renders the joint properties and safety factors of one
// case as a bordered panel.
func RenderEvaluation(ev *joint.Evaluation) string {
	c := ev.Joint.Case
	u := c.Units

	var b strings.Builder
	b.WriteString(Title.Render(c.Name) + "\n\n")

	constant := "given"
	if ev.Joint.Estimated {
		constant = "cornwell"
	}
	rows := [][2]string{
		{"stress area", fmt.Sprintf("%.5g %s²", ev.ATs, u.LengthUnit())},
		{"joint constant", fmt.Sprintf("%.4f (%s)", ev.C, constant)},
		{"bolt stiffness", fmt.Sprintf("%.4g %s", ev.Kb, u.StiffnessUnit())},
		{"member stiffness", fmt.Sprintf("%.4g %s", ev.Km, u.StiffnessUnit())},
		{"preload", fmt.Sprintf("%.5g %s", c.Load.Preload, u.ForceUnit())},
		{"bolt / member load", fmt.Sprintf("%.4g / %.4g %s", ev.BoltLoad, ev.MemberLoad, u.ForceUnit())},
	}
	for _, r := range rows {
		b.WriteString(metricRow(r[0], MetricValue.Render(r[1])))
	}
	b.WriteString("\n")

	factors := []struct {
		name string
		v    float64
	}{
		{"yield", ev.Yield},
		{"separation", ev.Separation},
		{"fatigue", ev.Fatigue},
	}
	for _, f := range factors {
		b.WriteString(metricRow(f.name, FactorStyle(f.v).Render(fmt.Sprintf("%.3f", f.v))))
	}

	verdict := Pass.Render("PASS")
	if !ev.Passes() {
		verdict = Fail.Render("FAIL")
	}
	b.WriteString(fmt.Sprintf("\n%s  governed by %s", verdict, ev.Governing))

	return Panel.Render(b.String())
}

func metricRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		MetricLabel.Width(20).Render(label),
		value,
	) + "\n"
}
