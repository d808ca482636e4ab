// Command rentroll runs the ingestion pipeline against a local workbook
// and prints the resulting document as JSON, without touching any store.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andrewbantly/leasepeek-server/internal/grid"
	"github.com/andrewbantly/leasepeek-server/internal/rentroll"
	"github.com/andrewbantly/leasepeek-server/internal/utils"
)

var (
	outputPath string
	pretty     bool
	dataOnly   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rentroll [input.xlsx]",
		Short: "Ingest a rent roll workbook and print the analysis as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&dataOnly, "data-only", false, "Print only the per-unit records")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	utils.InitLogger("rentroll-cli")
	inputPath := args[0]

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	g, err := grid.FromXLSX(file)
	if err != nil {
		return fmt.Errorf("reading workbook: %w", err)
	}

	doc, err := rentroll.Ingest(g, "cli", filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	var payload any = doc
	if dataOnly {
		payload = doc.Data
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(payload, "", "  ")
	} else {
		out, err = json.Marshal(payload)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, out, 0644)
	}
	fmt.Println(string(out))
	return nil
}
