package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kass/go-olc/pkg/olc"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// inputs returns args, or the non-empty lines of stdin when no args are
// given and stdin is not a terminal.
func inputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if f, ok := stdin.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil, errors.New("no input: pass arguments or pipe lines on stdin")
	}

	var lines []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}

// parseLatLon accepts "lat,lon" or "lat lon".
func parseLatLon(s string) (olc.LatLon, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) != 2 {
		return olc.LatLon{}, fmt.Errorf("expected \"lat,lon\", got %q", s)
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return olc.LatLon{}, fmt.Errorf("invalid latitude %q: %w", fields[0], err)
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return olc.LatLon{}, fmt.Errorf("invalid longitude %q: %w", fields[1], err)
	}
	return olc.LatLon{Lat: lat, Lon: lon}, nil
}

func addLocationFlags(cmd *cobra.Command, loc *olc.LatLon) {
	cmd.Flags().Float64Var(&loc.Lat, "lat", 0, "Latitude in degrees")
	cmd.Flags().Float64Var(&loc.Lon, "lon", 0, "Longitude in degrees")
}

// reference returns the --lat/--lon flags, falling back to the configured
// reference when neither flag is set.
func reference(cmd *cobra.Command, flags olc.LatLon) (olc.LatLon, error) {
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
		return flags, nil
	}
	if cfg.Reference != nil {
		return olc.LatLon{Lat: cfg.Reference.Lat, Lon: cfg.Reference.Lon}, nil
	}
	return olc.LatLon{}, errors.New("a reference location is required: use --lat and --lon or set reference in the config")
}
