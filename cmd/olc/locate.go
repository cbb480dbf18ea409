package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kass/go-olc/pkg/codeindex"
	"github.com/kass/go-olc/pkg/models"
	"github.com/kass/go-olc/pkg/olc"
	"github.com/spf13/cobra"
)

var (
	locateFile    string
	locateLoc     olc.LatLon
	locateNearest int
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Find the known codes that cover a location",
	Long: `Load "id,code" rows from a file into an R-Tree and print the codes whose
areas contain the location, most precise first. With --nearest, print the
K codes closest to the location instead.`,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVarP(&locateFile, "codes", "f", "", "CSV file of id,code rows")
	addLocationFlags(locateCmd, &locateLoc)
	locateCmd.Flags().IntVarP(&locateNearest, "nearest", "k", 0, "Print the K nearest codes")
	_ = locateCmd.MarkFlagRequired("codes")

	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	ref, err := reference(cmd, locateLoc)
	if err != nil {
		return err
	}

	f, err := os.Open(locateFile)
	if err != nil {
		return fmt.Errorf("failed to open codes file: %w", err)
	}
	defer f.Close()

	points, err := readPoints(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", locateFile, err)
	}

	index := codeindex.NewCodeIndex()
	if err := index.IndexPoints(points); err != nil {
		log.Printf("Skipped codes: %v", err)
	}
	if verbose {
		log.Printf("Indexed %d of %d codes", index.Count(), len(points))
	}

	loc := models.Location{Lat: ref.Lat, Lon: ref.Lon}
	var found []*models.Point
	if locateNearest > 0 {
		found = index.NearestNeighbors(loc, locateNearest)
	} else {
		found = index.Locate(loc)
	}

	for _, p := range found {
		km := codeindex.Distance(ref.Lat, ref.Lon, p.Location.Lat, p.Location.Lon)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.3f km\n", p.ID, p.Code, km)
	}
	if len(found) == 0 {
		return errors.New("no code covers this location")
	}
	return nil
}

// readPoints parses "id,code" rows. A row with only a code uses the code as id.
func readPoints(r io.Reader) ([]*models.Point, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var points []*models.Point
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, err
		}

		switch len(row) {
		case 1:
			points = append(points, &models.Point{ID: row[0], Code: strings.TrimSpace(row[0])})
		case 2:
			points = append(points, &models.Point{ID: row[0], Code: strings.TrimSpace(row[1])})
		default:
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected id,code", line)
		}
	}
}
