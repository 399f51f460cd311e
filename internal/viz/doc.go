// Package viz renders sweeps, evaluations and joint diagrams in the terminal.
//
//   - [PlotSweep], [PlotProofLoad]: asciigraph charts of the safety factors
//   - [RenderEvaluation]: lipgloss summary panel for one case
//   - [DiagramCanvas]: Braille rendering of the joint diagram
//   - [Explorer]: Bubble Tea model for stepping the preload interactively
//
// # Explorer Key Bindings
//
//	←/→, h/l - Step preload by 1% of the range
//	↑/↓, k/j - Step preload by 10% of the range
//	B        - Jump to the optimal preload
//	R        - Reset to the case preload
//	Q        - Quit
package viz
