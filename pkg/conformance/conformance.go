// Package conformance runs the CSV test files shared by Open Location Code
// implementations against this module.
//
// Three formats are understood, each with '#' comment lines:
//
//	encodingTests.csv   code,lat,lng,latLo,lngLo,latHi,lngHi
//	shortCodeTests.csv  full code,lat,lng,short code,test type (R, S or B)
//	validityTests.csv   code,isValid,isShort,isFull
package conformance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kass/go-olc/pkg/olc"
)

// Decoded centers must match the expected ones this closely, in degrees.
const centerTolerance = 1e-10

// Suite names a test file and the function that checks its rows.
type Suite struct {
	File    string
	Columns int
	check   func(row []string) ([]Result, error)
}

// Suites lists the files RunDir looks for.
var Suites = []Suite{
	{File: "encodingTests.csv", Columns: 7, check: checkEncoding},
	{File: "shortCodeTests.csv", Columns: 5, check: checkShortCode},
	{File: "validityTests.csv", Columns: 4, check: checkValidity},
}

// Result is the outcome of one check on one row.
type Result struct {
	File  string `json:"file"`
	Line  int    `json:"line"`
	Check string `json:"check"`
	Input string `json:"input"`
	Got   string `json:"got"`
	Want  string `json:"want"`
	OK    bool   `json:"ok"`
}

func (r Result) String() string {
	status := "OK"
	if !r.OK {
		status = "BAD"
	}
	return fmt.Sprintf("%-3s %s:%d %s [%s]: got %s, want %s", status, r.File, r.Line, r.Check, r.Input, r.Got, r.Want)
}

// RunDir runs every suite whose file exists in dir. onResult, if not nil,
// is called for each result as it is produced.
func RunDir(dir string, onResult func(Result)) ([]Result, error) {
	var results []Result
	found := 0
	for _, suite := range Suites {
		f, err := os.Open(filepath.Join(dir, suite.File))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return results, fmt.Errorf("failed to open %s: %w", suite.File, err)
		}
		found++

		rs, err := suite.Run(f, onResult)
		f.Close()
		results = append(results, rs...)
		if err != nil {
			return results, err
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("no test files in %s", dir)
	}
	return results, nil
}

// Run checks every row read from r.
func (s Suite) Run(r io.Reader, onResult func(Result)) ([]Result, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = s.Columns
	reader.TrimLeadingSpace = true

	var results []Result
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return results, nil
		}
		if err != nil {
			return results, fmt.Errorf("%s: %w", s.File, err)
		}
		line, _ := reader.FieldPos(0)

		rs, err := s.check(row)
		if err != nil {
			return results, fmt.Errorf("%s:%d: %w", s.File, line, err)
		}
		for _, res := range rs {
			res.File = s.File
			res.Line = line
			results = append(results, res)
			if onResult != nil {
				onResult(res)
			}
		}
	}
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.OK {
			failed = append(failed, r)
		}
	}
	return failed
}

func checkEncoding(row []string) ([]Result, error) {
	code := row[0]
	nums, err := parseFloats(row[1:])
	if err != nil {
		return nil, err
	}
	loc := olc.LatLon{Lat: nums[0], Lon: nums[1]}
	want := olc.CodeArea{
		Lo: olc.LatLon{Lat: nums[2], Lon: nums[3]},
		Hi: olc.LatLon{Lat: nums[4], Lon: nums[5]},
	}.Center()

	encoded := olc.Encode(loc, olc.CodeLength(code))
	results := []Result{{
		Check: "encode",
		Input: loc.String(),
		Got:   encoded,
		Want:  code,
		OK:    encoded == code,
	}}

	area, err := olc.Decode(code)
	if err != nil {
		return append(results, Result{Check: "decode", Input: code, Got: err.Error(), Want: want.String()}), nil
	}
	got := area.Center()
	return append(results,
		Result{
			Check: "decode.lat",
			Input: code,
			Got:   strconv.FormatFloat(got.Lat, 'f', -1, 64),
			Want:  strconv.FormatFloat(want.Lat, 'f', -1, 64),
			OK:    math.Abs(got.Lat-want.Lat) < centerTolerance,
		},
		Result{
			Check: "decode.lon",
			Input: code,
			Got:   strconv.FormatFloat(got.Lon, 'f', -1, 64),
			Want:  strconv.FormatFloat(want.Lon, 'f', -1, 64),
			OK:    math.Abs(got.Lon-want.Lon) < centerTolerance,
		},
	), nil
}

func checkShortCode(row []string) ([]Result, error) {
	full, short, kind := row[0], row[3], strings.ToUpper(row[4])
	nums, err := parseFloats(row[1:3])
	if err != nil {
		return nil, err
	}
	ref := olc.LatLon{Lat: nums[0], Lon: nums[1]}

	var results []Result
	if kind == "B" || kind == "S" {
		got, err := olc.Shorten(full, ref)
		if err != nil {
			got = err.Error()
		}
		results = append(results, Result{
			Check: "shorten",
			Input: full + " @ " + ref.String(),
			Got:   got,
			Want:  short,
			OK:    got == short,
		})
	}
	if kind == "B" || kind == "R" {
		got, err := olc.RecoverNearest(short, ref)
		if err != nil {
			got = err.Error()
		}
		results = append(results, Result{
			Check: "recover",
			Input: short + " @ " + ref.String(),
			Got:   got,
			Want:  full,
			OK:    got == full,
		})
	}
	if results == nil {
		return nil, fmt.Errorf("unknown test type %q", row[4])
	}
	return results, nil
}

func checkValidity(row []string) ([]Result, error) {
	code := row[0]
	checks := []struct {
		name string
		fn   func(string) bool
		want bool
	}{
		{"isValid", olc.IsValid, toBoolean(row[1])},
		{"isShort", olc.IsShort, toBoolean(row[2])},
		{"isFull", olc.IsFull, toBoolean(row[3])},
	}

	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		got := c.fn(code)
		results = append(results, Result{
			Check: c.name,
			Input: code,
			Got:   strconv.FormatBool(got),
			Want:  strconv.FormatBool(c.want),
			OK:    got == c.want,
		})
	}
	return results, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+2, err)
		}
		out[i] = v
	}
	return out, nil
}

// toBoolean treats empty, false, no, f, .f. and n (any case) as false and
// anything else as true.
func toBoolean(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "no", "f", ".f.", "n":
		return false
	}
	return true
}
