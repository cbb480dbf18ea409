package main

import (
	"errors"
	"fmt"

	"github.com/kass/go-olc/pkg/olc"
	"github.com/spf13/cobra"
)

var (
	shortenRef olc.LatLon
	recoverRef olc.LatLon
)

var shortenCmd = &cobra.Command{
	Use:   "shorten CODE...",
	Short: "Shorten full codes relative to a reference location",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachWithReference(cmd, args, shortenRef, olc.Shorten)
	},
}

var recoverCmd = &cobra.Command{
	Use:   "recover CODE...",
	Short: "Recover the nearest full code for short codes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachWithReference(cmd, args, recoverRef, olc.RecoverNearest)
	},
}

func init() {
	addLocationFlags(shortenCmd, &shortenRef)
	addLocationFlags(recoverCmd, &recoverRef)

	rootCmd.AddCommand(shortenCmd, recoverCmd)
}

func eachWithReference(cmd *cobra.Command, codes []string, flags olc.LatLon, fn func(string, olc.LatLon) (string, error)) error {
	ref, err := reference(cmd, flags)
	if err != nil {
		return err
	}

	var errs []error
	for _, code := range codes {
		out, err := fn(code, ref)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", code, err))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return errors.Join(errs...)
}
