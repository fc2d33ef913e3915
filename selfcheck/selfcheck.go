package selfcheck

import (
	"fmt"

	"github.com/kpfaulkner/asteroid-monitor/grid"
	"github.com/kpfaulkner/asteroid-monitor/monitor"
	"github.com/kpfaulkner/asteroid-monitor/options"
	log "github.com/sirupsen/logrus"
)

// Failure describes a scenario that produced the wrong answer.
type Failure struct {
	Scenario Scenario
	Actual   int
	Err      error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("self check %q failed: %v", f.Scenario.Name, f.Err)
	}
	return fmt.Sprintf("self check %q failed: %s expected %d got %d",
		f.Scenario.Name, f.Scenario.Answer, f.Scenario.Expected, f.Actual)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Run checks the built in scenarios, stopping at the first failure.
func Run() error {
	return RunScenarios(Scenarios)
}

func RunScenarios(scenarios []Scenario) error {
	for _, s := range scenarios {
		actual, err := Evaluate(s)
		if err != nil || actual != s.Expected {
			return &Failure{Scenario: s, Actual: actual, Err: err}
		}
		log.Debugf("self check %q passed", s.Name)
	}
	return nil
}

// Evaluate computes the answer a scenario asks for.
func Evaluate(s Scenario) (int, error) {
	points := grid.ParseString(s.Grid, grid.DefaultMarker)
	switch s.Answer {
	case VisibleCount:
		return monitor.Solve1(points)
	case VaporizedCode:
		return monitor.Solve2(points, options.DefaultMaxIterations)
	default:
		return 0, fmt.Errorf("unknown answer type %d", s.Answer)
	}
}
