package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kass/go-olc/pkg/config"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var (
	configFile string
	verbose    bool
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "olc",
	Short: "Encode, decode, shorten and recover Open Location Codes",
	Long: `olc converts between latitude/longitude and Open Location Codes (plus codes).

Settings are read from olc.yaml (or olc.yaml.example) in the current
directory unless --config or OLC_CONFIG names another file. Variables from
a .env file in the current directory are loaded first. Flags always win.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && verbose {
			log.Println("No .env file found (using environment variables)")
		}

		path := configFile
		if !cmd.Flags().Changed("config") {
			path = getEnv("OLC_CONFIG", path)
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		if verbose && cfg.Path != "" {
			log.Printf("Using config %s", cfg.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
