package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kpfaulkner/asteroid-monitor/imageformats"
	"github.com/kpfaulkner/asteroid-monitor/monitor"
	"github.com/kpfaulkner/asteroid-monitor/options"
	"github.com/kpfaulkner/asteroid-monitor/selfcheck"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/ttacon/chalk"
)

const (
	defaultInput = "inputs/10"
)

func main() {
	infile := flag.String("i", defaultInput, "input asteroid map")
	debug := flag.Bool("debug", false, "enable debug logging")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the current directory")
	heatmap := flag.String("heatmap", "", "optional PFM file to write the visibility heatmap to")
	iterations := flag.Int("iterations", options.DefaultMaxIterations, "maximum laser sweep iterations")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if err := selfcheck.Run(); err != nil {
		fmt.Println(chalk.Red, err, chalk.Reset)
		os.Exit(1)
	}

	m, err := monitor.NewMonitor(
		monitor.WithInputFilename(*infile),
		monitor.WithOptions(&options.MonitorOptions{
			MaxIterations: *iterations,
			Debug:         *debug,
		}))
	if err != nil {
		log.Fatalf("Error creating monitor: %v", err)
	}

	res, err := m.Run()
	if err != nil {
		log.Fatalf("Error running monitor: %v", err)
	}

	fmt.Println(res.VisibleCount)
	fmt.Println(res.Encoded)

	if *heatmap != "" {
		if err := writeHeatmap(*heatmap, res); err != nil {
			log.Fatalf("Error writing heatmap: %v", err)
		}
	}
}

func writeHeatmap(filename string, res *monitor.Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	defer f.Close()

	return imageformats.WritePFM(monitor.VisibilityMap(res.Points), f)
}
