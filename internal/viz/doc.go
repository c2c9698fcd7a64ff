// Package viz renders experiment reports in the terminal.
//
// It has three layers:
//
//   - [RenderReport] and [FormatValue]: styled scalar output for one run
//   - [PlotReport]: asciigraph line charts of the report series
//   - [RunExplorer]: a Bubble Tea program to pick an experiment and tune
//     its parameters while the report updates
//
// Colors come from a [Theme]; five are built in.
//
// # Explorer keys
//
//	j/k   - Move selection
//	enter - Select experiment / edit parameter
//	h/l   - Nudge parameter down/up
//	m     - Next material (photoelectric)
//	p     - Toggle plot
//	t     - Cycle theme
//	r     - Reset parameters
//	esc   - Back
//	q     - Quit
package viz
