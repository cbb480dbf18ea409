package main

import (
	"errors"
	"fmt"

	"github.com/kass/go-olc/pkg/olc"
	"github.com/mmcloughlin/geohash"
	"github.com/spf13/cobra"
)

var (
	encodeLoc    olc.LatLon
	encodeLength int
	decodeHash   uint
)

var encodeCmd = &cobra.Command{
	Use:   "encode [LAT,LON...]",
	Short: "Encode locations as full codes",
	Long: `Encode the location given by --lat/--lon, or each "lat,lon" argument, or
each "lat,lon" line read from stdin.`,
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [CODE...]",
	Short: "Decode codes to their areas",
	Long: `Print each code with its center, south-west and north-east corners and
digit count. With --geohash N, also print the N-character geohash of the
center.`,
	RunE: runDecode,
}

var checkCmd = &cobra.Command{
	Use:   "check [CODE...]",
	Short: "Report whether codes are valid, short or full",
	RunE:  runCheck,
}

func init() {
	addLocationFlags(encodeCmd, &encodeLoc)
	encodeCmd.Flags().IntVarP(&encodeLength, "length", "l", 0, "Code length in digits (default from config)")
	decodeCmd.Flags().UintVar(&decodeHash, "geohash", 0, "Also print the geohash of the center with this many characters")

	rootCmd.AddCommand(encodeCmd, decodeCmd, checkCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	length := cfg.Encode.Length
	if cmd.Flags().Changed("length") {
		length = encodeLength
	}

	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
		fmt.Fprintln(cmd.OutOrStdout(), olc.Encode(encodeLoc, length))
		return nil
	}

	lines, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	var errs []error
	for _, line := range lines {
		loc, err := parseLatLon(line)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), olc.Encode(loc, length))
	}
	return errors.Join(errs...)
}

func runDecode(cmd *cobra.Command, args []string) error {
	codes, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var errs []error
	for _, code := range codes {
		area, err := olc.Decode(code)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", code, err))
			continue
		}
		c := area.Center()
		line := fmt.Sprintf("%s\t%.10f,%.10f\t%s\t%s\t%d", code, c.Lat, c.Lon, area.Lo, area.Hi, area.Len)
		if decodeHash > 0 {
			line += "\t" + geohash.EncodeWithPrecision(c.Lat, c.Lon, decodeHash)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return errors.Join(errs...)
}

func runCheck(cmd *cobra.Command, args []string) error {
	codes, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	for _, code := range codes {
		status := "valid"
		switch {
		case olc.IsFull(code):
			status = "full"
		case olc.IsShort(code):
			status = "short"
		case !olc.IsValid(code):
			status = "invalid"
		}
		line := fmt.Sprintf("%s\t%s\t%d", code, status, olc.CodeLength(code))
		if err := olc.Check(code); err != nil && verbose {
			line += "\t" + err.Error()
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
