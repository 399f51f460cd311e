package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/boltjoint/internal/fastener"
	"github.com/san-kum/boltjoint/internal/joint"
	"github.com/san-kum/boltjoint/internal/sweep"
)

// Explorer steps the preload of one joint and recomputes its safety factors
// on every key press.
type Explorer struct {
	joint      *joint.Joint
	sweep      *sweep.Result
	preload    float64
	maxPreload float64
	row        sweep.Row
	err        error
	width      int
}

// NewExplorer starts at the case preload. A zero maxPreload falls back to the
// range of res, then to twice the case preload.
func NewExplorer(j *joint.Joint, res *sweep.Result, maxPreload float64) Explorer {
	if maxPreload <= 0 && res != nil {
		maxPreload = res.MaxPreload
	}
	if maxPreload <= 0 {
		maxPreload = 2 * j.Case.Load.Preload
	}
	if maxPreload <= 0 {
		maxPreload = 1
	}
	m := Explorer{
		joint:      j,
		sweep:      res,
		maxPreload: maxPreload,
		width:      80,
	}
	m.setPreload(j.Case.Load.Preload)
	return m
}

func (m Explorer) Preload() float64 { return m.preload }

func (m Explorer) Row() sweep.Row { return m.row }

func (m Explorer) Err() error { return m.err }

func (m *Explorer) setPreload(p float64) {
	m.preload = min(max(p, 0), m.maxPreload)
	sf, err := m.joint.Factors(fastener.Scalar(m.preload))
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.row = sweep.Row{
		Preload:    m.preload,
		Yield:      sf.Yield[0],
		Separation: sf.Separation[0],
		Fatigue:    sf.Fatigue[0],
		Min:        sf.Min[0],
	}
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		step := m.maxPreload / 100
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l":
			m.setPreload(m.preload + step)
		case "left", "h":
			m.setPreload(m.preload - step)
		case "up", "k":
			m.setPreload(m.preload + 10*step)
		case "down", "j":
			m.setPreload(m.preload - 10*step)
		case "b":
			if m.sweep != nil {
				if best, err := m.sweep.Best(); err == nil {
					m.setPreload(best.Preload)
				}
			}
		case "r":
			m.setPreload(m.joint.Case.Load.Preload)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Explorer) View() string {
	c := m.joint.Case
	u := c.Units

	var b strings.Builder
	b.WriteString(Title.Render("preload explorer: "+c.Name) + "\n\n")

	pct := m.preload / m.maxPreload
	b.WriteString(metricRow("preload", MetricValue.Render(fmt.Sprintf("%.5g %s", m.preload, u.ForceUnit()))))
	if sp := c.Material.ProofStrength; sp > 0 {
		b.WriteString(metricRow("proof load", MetricValue.Render(fmt.Sprintf("%.1f%%", m.preload/(m.joint.ATs*sp)*100))))
	}
	b.WriteString(metricRow("", progressBar(pct, 40)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(Fail.Render(m.err.Error()) + "\n")
	} else {
		for _, f := range []struct {
			name string
			v    float64
		}{
			{"yield", m.row.Yield},
			{"separation", m.row.Separation},
			{"fatigue", m.row.Fatigue},
		} {
			b.WriteString(metricRow(f.name, FactorStyle(f.v).Render(fmt.Sprintf("%.3f", f.v))))
		}
		mode := joint.Governing(m.row.Yield, m.row.Separation, m.row.Fatigue)
		b.WriteString(metricRow("governing", string(mode)))
	}

	if m.sweep != nil && m.sweep.Len() > 0 {
		marker := int(pct * float64(m.sweep.Len()-1))
		b.WriteString("\n" + MetricLabel.Render("min factor over sweep") + "\n")
		b.WriteString(Sparkline(m.sweep.Factors.Min, min(m.width-8, 60), marker) + "\n")
		if best, err := m.sweep.Best(); err == nil {
			b.WriteString(Subtle.Render(fmt.Sprintf("optimum %.5g %s (min %.3f)", best.Preload, u.ForceUnit(), best.Min)) + "\n")
		}
	}

	b.WriteString("\n" + KeyHint.Render("←/→ ±1%  ↑/↓ ±10%  b optimum  r reset  q quit"))
	return Panel.Render(b.String())
}

func progressBar(percent float64, width int) string {
	filled := min(max(int(percent*float64(width)), 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case percent > 0.8:
		return SparkHigh.Render(bar)
	case percent > 0.4:
		return SparkMid.Render(bar)
	}
	return SparkLow.Render(bar)
}
