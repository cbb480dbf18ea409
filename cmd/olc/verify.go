package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kass/go-olc/pkg/conformance"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var verifyDir string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the CSV conformance test files in a directory",
	Long: `Run encodingTests.csv, shortCodeTests.csv and validityTests.csv from the
given directory and report every failing check. Exits non-zero on failure.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyDir, "dir", "d", "pkg/conformance/testdata", "Directory holding the CSV files")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	var bar *progressbar.ProgressBar
	if isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Verifying "+verifyDir),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	results, err := conformance.RunDir(verifyDir, func(r conformance.Result) {
		if bar != nil {
			_ = bar.Add(1)
		} else if verbose {
			log.Printf("%s", r)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := conformance.Failed(results)
	for _, r := range failed {
		printError(out, r.String())
	}
	summary := fmt.Sprintf("%d checks, %d failed", len(results), len(failed))
	if len(failed) > 0 {
		printError(out, summary)
		return fmt.Errorf("%d conformance checks failed", len(failed))
	}
	printSuccess(out, summary)
	return nil
}
