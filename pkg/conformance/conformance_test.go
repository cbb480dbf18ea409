package conformance

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suite(t *testing.T, file string) Suite {
	t.Helper()
	for _, s := range Suites {
		if s.File == file {
			return s
		}
	}
	t.Fatalf("no suite for %s", file)
	return Suite{}
}

func TestRunDir(t *testing.T) {
	var seen int
	results, err := RunDir("testdata", func(Result) { seen++ })
	require.NoError(t, err)

	assert.NotEmpty(t, results)
	assert.Equal(t, len(results), seen)
	for _, r := range Failed(results) {
		t.Errorf("%s", r)
	}
}

func TestRunDirEmpty(t *testing.T) {
	_, err := RunDir(t.TempDir(), nil)
	assert.Error(t, err)
}

func TestRunReportsFailures(t *testing.T) {
	input := "# header\n8FVC2222+22,true,true,false\n"

	results, err := suite(t, "validityTests.csv").Run(strings.NewReader(input), nil)
	require.NoError(t, err)

	want := []Result{
		{File: "validityTests.csv", Line: 2, Check: "isValid", Input: "8FVC2222+22", Got: "true", Want: "true", OK: true},
		{File: "validityTests.csv", Line: 2, Check: "isShort", Input: "8FVC2222+22", Got: "false", Want: "true", OK: false},
		{File: "validityTests.csv", Line: 2, Check: "isFull", Input: "8FVC2222+22", Got: "true", Want: "false", OK: false},
	}
	if diff := cmp.Diff(want, results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, Failed(results), 2)
}

func TestRunShortCodeTypes(t *testing.T) {
	s := suite(t, "shortCodeTests.csv")

	results, err := s.Run(strings.NewReader("9C3W9QCJ+2VX,51.3708675,-1.217765625,CJ+2VX,R\n"), nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "recover", results[0].Check)
	assert.True(t, results[0].OK)

	_, err = s.Run(strings.NewReader("9C3W9QCJ+2VX,51.3708675,-1.217765625,CJ+2VX,X\n"), nil)
	assert.ErrorContains(t, err, "shortCodeTests.csv:1")
}

func TestRunEncodingMismatch(t *testing.T) {
	input := "8FVC2222+22,47.0000625,8.0000625,47.0,8.0,47.000125,8.000250\n"

	results, err := suite(t, "encodingTests.csv").Run(strings.NewReader(input), nil)
	require.NoError(t, err)

	failed := Failed(results)
	require.Len(t, failed, 1)
	assert.Equal(t, "decode.lon", failed[0].Check)
}

func TestRunMalformed(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		input string
	}{
		{"short row", "validityTests.csv", "8FVC2222+22,true,false\n"},
		{"bad number", "encodingTests.csv", "8FVC2222+22,north,8,47,8,47.000125,8.000125\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := suite(t, tt.file).Run(strings.NewReader(tt.input), nil)
			assert.Error(t, err)
		})
	}
}

func TestToBoolean(t *testing.T) {
	for _, s := range []string{"", "false", "FALSE", "no", "f", ".F.", "n", " N "} {
		assert.False(t, toBoolean(s), s)
	}
	for _, s := range []string{"true", "yes", "1", "t", "y"} {
		assert.True(t, toBoolean(s), s)
	}
}
