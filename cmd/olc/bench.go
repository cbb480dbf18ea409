package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kass/go-olc/pkg/codeindex"
	"github.com/kass/go-olc/pkg/models"
	"github.com/kass/go-olc/pkg/olc"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	benchPoints  int
	benchWorkers int
	benchIndex   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Encode and decode random locations in parallel",
	Long: `Generate random locations, encode them, decode the codes back and check
that every location falls inside its decoded area. With --index, also load
the codes into an R-Tree and time point lookups.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchPoints, "points", "p", 0, "Number of locations (default from config)")
	benchCmd.Flags().IntVarP(&benchWorkers, "workers", "w", 0, "Number of worker goroutines (default one per CPU)")
	benchCmd.Flags().BoolVar(&benchIndex, "index", false, "Also benchmark the code index")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	numPoints := cfg.Bench.Points
	if cmd.Flags().Changed("points") {
		numPoints = benchPoints
	}
	numWorkers := cfg.Bench.Workers
	if cmd.Flags().Changed("workers") {
		numWorkers = benchWorkers
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numPoints <= 0 {
		return fmt.Errorf("points must be positive, got %d", numPoints)
	}
	length := cfg.Encode.Length

	log.Printf("Encoding %d random locations at length %d using %d workers...", numPoints, length, numWorkers)
	locations := generateRandomLocations(numPoints, numWorkers)

	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(numPoints,
			progressbar.OptionSetDescription("Round trip"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	points := make([]*models.Point, numPoints)
	var mismatches atomic.Int64

	start := time.Now()
	batchSize := (numPoints + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	for lo := 0; lo < numPoints; lo += batchSize {
		hi := min(lo+batchSize, numPoints)

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			buf := make([]byte, olc.MaxDigitCount+1)
			for i := lo; i < hi; i++ {
				n, err := olc.EncodeTo(buf, locations[i], length)
				if err != nil {
					mismatches.Add(1)
					continue
				}
				code := string(buf[:n])

				area, err := olc.Decode(code)
				if err != nil || !area.Contains(locations[i]) {
					mismatches.Add(1)
				}
				points[i] = &models.Point{
					ID:       fmt.Sprintf("point_%d", i),
					Code:     code,
					Location: &models.Location{Lat: locations[i].Lat, Lon: locations[i].Lon},
				}
			}
			if bar != nil {
				_ = bar.Add(hi - lo)
			}
		}(lo, hi)
	}
	wg.Wait()
	elapsed := time.Since(start)
	if bar != nil {
		_ = bar.Finish()
	}

	out := cmd.OutOrStdout()
	printTitle(out, "Round Trip")
	printStat(out, "Locations", numPoints)
	printStat(out, "Duration", elapsed)
	printStat(out, "Round trips/second", fmt.Sprintf("%.0f", float64(numPoints)/elapsed.Seconds()))
	printStat(out, "Mismatches", mismatches.Load())
	printStat(out, "Workers Used", numWorkers)

	if benchIndex {
		benchmarkIndex(cmd, points, locations, numWorkers)
	}

	if n := mismatches.Load(); n > 0 {
		log.Printf("%d locations did not round trip", n)
	}
	return nil
}

func benchmarkIndex(cmd *cobra.Command, points []*models.Point, locations []olc.LatLon, workers int) {
	index := codeindex.NewCodeIndexWithWorkers(workers)

	start := time.Now()
	if err := index.IndexPoints(points); err != nil {
		log.Printf("Index errors: %v", err)
	}
	loadTime := time.Since(start)

	start = time.Now()
	var hits int
	for _, loc := range locations {
		if len(index.Locate(models.Location{Lat: loc.Lat, Lon: loc.Lon})) > 0 {
			hits++
		}
	}
	queryTime := time.Since(start)

	out := cmd.OutOrStdout()
	printTitle(out, "Code Index")
	printStat(out, "Indexed", fmt.Sprintf("%d in %v", index.Count(), loadTime))
	printStat(out, "Lookups", fmt.Sprintf("%d in %v (%.0f/second)", len(locations), queryTime, float64(len(locations))/queryTime.Seconds()))
	printStat(out, "Hits", hits)
}

// generateRandomLocations concentrates most points around populated regions.
func generateRandomLocations(n, workers int) []olc.LatLon {
	locations := make([]olc.LatLon, n)

	batchSize := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += batchSize {
		hi := min(lo+batchSize, n)

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(lo)))

			for i := lo; i < hi; i++ {
				var lat, lon float64
				switch r.Intn(5) {
				case 0: // North America
					lat = r.Float64()*30 + 30
					lon = r.Float64()*60 - 120
				case 1: // Europe
					lat = r.Float64()*20 + 40
					lon = r.Float64()*40 - 10
				case 2: // Asia
					lat = r.Float64()*40 + 20
					lon = r.Float64()*80 + 60
				case 3: // South America
					lat = r.Float64()*40 - 50
					lon = r.Float64()*30 - 80
				default:
					lat = r.Float64()*180 - 90
					lon = r.Float64()*360 - 180
				}
				locations[i] = olc.LatLon{Lat: lat, Lon: lon}
			}
		}(lo, hi)
	}
	wg.Wait()
	return locations
}
