package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/kpfaulkner/asteroid-monitor/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("boom")
}

func TestParse(t *testing.T) {

	for _, tc := range []struct {
		name     string
		grid     string
		marker   rune
		expected []util.Point
	}{
		{
			name:     "empty",
			grid:     "",
			marker:   '#',
			expected: []util.Point{},
		},
		{
			name:     "columns are x and rows are y",
			grid:     ".#\n#.",
			marker:   '#',
			expected: []util.Point{{X: 0, Y: 1}, {X: 1, Y: 0}},
		},
		{
			name:     "ragged rows",
			grid:     "#\n...#\n\n#.#",
			marker:   '#',
			expected: []util.Point{{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 1}},
		},
		{
			name:     "windows line endings",
			grid:     "#.\r\n.#\r\n",
			marker:   '#',
			expected: []util.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		},
		{
			name:     "custom marker",
			grid:     "*#\n#*",
			marker:   '*',
			expected: []util.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			points, err := Parse(strings.NewReader(tc.grid), tc.marker)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, points.Points())

			assert.Equal(t, tc.expected, ParseString(tc.grid, tc.marker).Points())
		})
	}
}

func TestParseReadError(t *testing.T) {
	points, err := Parse(failingReader{}, DefaultMarker)
	assert.Error(t, err)
	assert.Nil(t, points)
}

func TestRender(t *testing.T) {
	grid := ".#..#\n.....\n#####\n....#\n...##"
	points := ParseString(grid, DefaultMarker)
	width, height := points.Bounds()

	assert.Equal(t, grid, Render(points, width, height, DefaultMarker))
	assert.Equal(t, ".#..#\n.....\n#####\n....#\n...X#",
		RenderWithStation(points, width, height, DefaultMarker, util.NewPoint(3, 4)))
}
