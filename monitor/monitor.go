package monitor

import (
	"bytes"
	"io"
	"os"

	"github.com/kpfaulkner/asteroid-monitor/grid"
	"github.com/kpfaulkner/asteroid-monitor/options"
	"github.com/kpfaulkner/asteroid-monitor/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type MonitorOption func(m *Monitor) error

func WithInputFilename(fn string) MonitorOption {
	return func(m *Monitor) error {
		if fn == "" {
			return errors.New("empty input filename")
		}
		m.filename = fn
		return nil
	}
}

func WithReader(r io.Reader) MonitorOption {
	return func(m *Monitor) error {
		m.in = r
		return nil
	}
}

func WithOptions(opts *options.MonitorOptions) MonitorOption {
	return func(m *Monitor) error {
		m.options = options.NewMonitorOptions(opts)
		return nil
	}
}

// Monitor locates the best monitoring station on an asteroid map and runs
// the laser sweep from it.
type Monitor struct {

	// input filename to read from. Ignored when a reader is supplied.
	filename string

	// input stream
	in io.Reader

	options *options.MonitorOptions
}

// Result holds both answers for a map.
type Result struct {
	Points       *util.PointSet
	Station      util.Point
	VisibleCount int
	Encoded      int
	Sweep        *SweepResult
}

func NewMonitor(opts ...MonitorOption) (*Monitor, error) {
	m := &Monitor{
		options: options.NewMonitorOptions(nil),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, errors.Wrap(err, "applying monitor option")
		}
	}

	if m.in == nil && m.filename == "" {
		return nil, errors.New("no input supplied")
	}
	return m, nil
}

// Load reads and parses the asteroid map.
func (m *Monitor) Load() (*util.PointSet, error) {
	in := m.in
	if in == nil {
		data, err := os.ReadFile(m.filename)
		if err != nil {
			return nil, errors.Wrapf(err, "reading grid %s", m.filename)
		}
		in = bytes.NewReader(data)
	}
	return grid.Parse(in, m.options.Marker)
}

func (m *Monitor) Run() (*Result, error) {
	points, err := m.Load()
	if err != nil {
		return nil, err
	}

	station, count, err := BestStation(points)
	if err != nil {
		return nil, err
	}

	if m.options.Debug {
		width, height := points.Bounds()
		log.Debugf("station %s sees %d asteroids\n%s", station, count,
			grid.RenderWithStation(points, width, height, m.options.Marker, station))
	}

	sweep := Sweep(station, points, m.options.MaxIterations)
	return &Result{
		Points:       points,
		Station:      station,
		VisibleCount: count,
		Encoded:      sweep.Encoded(),
		Sweep:        sweep,
	}, nil
}
