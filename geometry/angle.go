package geometry

import (
	"math"

	"github.com/kpfaulkner/asteroid-monitor/util"
)

// Angle returns the angle in [0, 2π) swept from the ray origin->reference to
// the ray origin->target. With Y pointing down the angle grows clockwise.
// Neither reference nor target may equal origin.
//
// atan2 only depends on the ratio of its arguments so the cross and dot
// products are passed without normalising by |v1||v2|. Keeping them as exact
// integers means targets along the same ray always get identical angles.
func Angle(origin util.Point, reference util.Point, target util.Point) float64 {
	v1 := reference.Minus(origin)
	v2 := target.Minus(origin)

	return util.NormaliseAngle(math.Atan2(float64(v1.Cross(v2)), float64(v1.Dot(v2))))
}
