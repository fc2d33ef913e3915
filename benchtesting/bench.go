package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/kpfaulkner/asteroid-monitor/monitor"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {

	filePaths := []string{
		`testdata/large.txt`,
		`inputs/10`,
	}

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	for _, file := range filePaths {
		fmt.Printf("file %s\n", file)
		f, err := os.ReadFile(file)
		if err != nil {
			log.Errorf("Error opening file: %v\n", err)
			continue
		}

		start := time.Now()
		for count := 0; count < 10; count++ {
			m, err := monitor.NewMonitor(monitor.WithReader(bytes.NewReader(f)))
			if err != nil {
				log.Errorf("Error creating monitor: %v", err)
				return
			}
			runStart := time.Now()
			res, err := m.Run()
			if err != nil {
				fmt.Printf("Error running: %v\n", err)
				return
			}
			fmt.Printf("run took %d ms\n", time.Since(runStart).Milliseconds())
			fmt.Printf("station %s sees %d, vaporized code %d\n", res.Station, res.VisibleCount, res.Encoded)
		}
		fmt.Printf("total time %d ms\n", time.Since(start).Milliseconds())
	}
}
