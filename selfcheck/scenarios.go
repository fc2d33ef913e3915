package selfcheck

const (
	SmallMap = `.#..#
.....
#####
....#
...##`

	MediumMap = `......#.#.
#..#.#....
..#######.
.#.#.###..
.#..#.....
..#....#.#
#..#....#.
.##.#..###
##...#..#.
.#....####`

	LargeMap = `.#..##.###...#######
##.############..##.
.#.######.########.#
.###.#######.####.#.
#####.##.#.##.###.##
..#####..#.#########
####################
#.####....###.#.#.##
##.#################
#####.##.###..####..
..######..##.#######
####.##.####...##..#
.#####..#.######.###
##...#.##########...
#.##########.#######
.####.#.###.###.#.##
....##.##.###..#####
.#.#.###########.###
#.#.#.#####.####.###
###.##.####.##.#..##`

	SingleMap = `#`
)

// Answer identifies which result a scenario checks.
type Answer int

const (
	VisibleCount Answer = iota
	VaporizedCode
)

func (a Answer) String() string {
	switch a {
	case VisibleCount:
		return "visible count"
	case VaporizedCode:
		return "vaporized code"
	default:
		return "unknown"
	}
}

type Scenario struct {
	Name     string
	Grid     string
	Answer   Answer
	Expected int
}

// Scenarios are run, in order, before any real input is processed.
var Scenarios = []Scenario{
	{Name: "small map station", Grid: SmallMap, Answer: VisibleCount, Expected: 8},
	{Name: "small map sweep", Grid: SmallMap, Answer: VaporizedCode, Expected: 100},
	{Name: "medium map station", Grid: MediumMap, Answer: VisibleCount, Expected: 33},
	{Name: "large map sweep", Grid: LargeMap, Answer: VaporizedCode, Expected: 802},
	{Name: "single asteroid", Grid: SingleMap, Answer: VisibleCount, Expected: 0},
}
