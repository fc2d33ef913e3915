package imageformats

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kpfaulkner/asteroid-monitor/util"
)

// WritePFM writes a greyscale PFM image of the matrix, each cell scaled into
// [0, 1] against the largest value. PFM stores rows bottom up.
func WritePFM(matrix *util.Matrix[int32], output io.Writer) error {

	width := matrix.Width
	height := matrix.Height

	header := fmt.Sprintf("Pf\n%d %d\n1.0\n", width, height)
	if _, err := output.Write([]byte(header)); err != nil {
		return err
	}

	scale := float32(1)
	if largest := matrix.Max(); largest > 0 {
		scale = 1 / float32(largest)
	}

	var buf bytes.Buffer
	for y := height - 1; y >= 0; y-- {
		buf.Reset()
		for _, v := range matrix.GetRow(y) {
			if err := binary.Write(&buf, binary.BigEndian, float32(v)*scale); err != nil {
				return err
			}
		}
		if _, err := output.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
