package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/photonlab/internal/experiment"
	"github.com/san-kum/photonlab/internal/sweep"
)

var strokeColors = []string{"#00ffff", "#ff00ff", "#ffff00", "#00ff00", "#ff8800", "#8888ff"}

type bounds struct {
	minX, maxX, minY, maxY float64
}

func seriesBounds(series []sweep.Series) (bounds, bool) {
	var b bounds
	found := false
	for _, s := range series {
		for i := range s.X {
			x, y := s.X[i], s.Y[i]
			if !found {
				b = bounds{x, x, y, y}
				found = true
				continue
			}
			b.minX, b.maxX = min(b.minX, x), max(b.maxX, x)
			b.minY, b.maxY = min(b.minY, y), max(b.maxY, y)
		}
	}
	return b, found
}

// padded widens the bounds by 10% and gives a zero span a unit width.
func (b bounds) padded() bounds {
	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	return bounds{
		minX: b.minX - rangeX*0.1,
		maxX: b.maxX + rangeX*0.1,
		minY: b.minY - rangeY*0.1,
		maxY: b.maxY + rangeY*0.1,
	}
}

// ReportToSVG draws every series of a report as a path on a shared scale.
func ReportToSVG(rep *experiment.Report, width, height int) string {
	b, ok := seriesBounds(rep.Series)
	if !ok {
		return ""
	}
	b = b.padded()
	rangeX := b.maxX - b.minX
	rangeY := b.maxY - b.minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="10" y="20" fill="#ffffff" font-family="monospace" font-size="14">%s</text>
`, width, height, width, height, html.EscapeString(rep.Title)))

	for idx, s := range rep.Series {
		if len(s.X) < 2 {
			continue
		}
		color := strokeColors[idx%len(strokeColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i := range s.X {
			x := (s.X[i] - b.minX) / rangeX * float64(width)
			y := float64(height) - (s.Y[i]-b.minY)/rangeY*float64(height)

			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
		sb.WriteString(fmt.Sprintf(`<text x="10" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 40+idx*16, color, html.EscapeString(s.Name)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
