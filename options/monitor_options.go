package options

const (
	DefaultMarker        = '#'
	DefaultMaxIterations = 200
)

type MonitorOptions struct {
	// Marker is the grid character that denotes an asteroid.
	Marker rune

	// MaxIterations bounds the laser sweep. Revolution resets count towards it.
	MaxIterations int

	Debug bool
}

// NewMonitorOptions copies the supplied options, filling anything unset with
// defaults. options may be nil.
func NewMonitorOptions(options *MonitorOptions) *MonitorOptions {

	opt := &MonitorOptions{
		Marker:        DefaultMarker,
		MaxIterations: DefaultMaxIterations,
	}
	if options != nil {
		if options.Marker != 0 {
			opt.Marker = options.Marker
		}
		if options.MaxIterations > 0 {
			opt.MaxIterations = options.MaxIterations
		}
		opt.Debug = options.Debug
	}
	return opt
}
