package grid

import (
	"strings"

	"github.com/kpfaulkner/asteroid-monitor/util"
)

const (
	emptyCell   = '.'
	stationCell = 'X'
)

// Render draws points back into grid text of the given dimensions.
func Render(points *util.PointSet, width int32, height int32, marker rune) string {
	return render(points, width, height, marker, nil)
}

// RenderWithStation is Render with the station drawn as X.
func RenderWithStation(points *util.PointSet, width int32, height int32, marker rune, station util.Point) string {
	return render(points, width, height, marker, &station)
}

func render(points *util.PointSet, width int32, height int32, marker rune, station *util.Point) string {
	var sb strings.Builder
	for y := int32(0); y < height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := int32(0); x < width; x++ {
			p := util.NewPoint(x, y)
			switch {
			case station != nil && *station == p:
				sb.WriteRune(stationCell)
			case points.Contains(p):
				sb.WriteRune(marker)
			default:
				sb.WriteRune(emptyCell)
			}
		}
	}
	return sb.String()
}
